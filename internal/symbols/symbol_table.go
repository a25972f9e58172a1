package symbols

// Symbol is a name bound in some scope. The parser only needs to know
// whether the binding came from a typedef; everything else about a name is
// semantic analysis territory.
type Symbol struct {
	Name      string
	IsTypedef bool
}

// Table is a stack of scope frames. The bottom frame is the global scope
// and is never popped. Lookup walks frames top-down so the nearest binding
// shadows outer ones.
type Table struct {
	frames []map[string]Symbol
}

func NewTable() *Table {
	return &Table{frames: []map[string]Symbol{make(map[string]Symbol)}}
}

// NewSeededTable creates a table whose global frame already binds the given
// names as typedefs (e.g. __builtin_va_list).
func NewSeededTable(typedefs []string) *Table {
	t := NewTable()
	for _, name := range typedefs {
		t.AddTypedef(name)
	}
	return t
}

func (t *Table) Push() {
	t.frames = append(t.frames, make(map[string]Symbol))
}

func (t *Table) Pop() {
	if len(t.frames) <= 1 {
		return
	}
	t.frames = t.frames[:len(t.frames)-1]
}

// Depth reports the number of live frames, the global frame included.
func (t *Table) Depth() int {
	return len(t.frames)
}

func (t *Table) AddOrdinary(name string) {
	t.frames[len(t.frames)-1][name] = Symbol{Name: name}
}

func (t *Table) AddTypedef(name string) {
	t.frames[len(t.frames)-1][name] = Symbol{Name: name, IsTypedef: true}
}

// IsTypedefInScope reports whether the nearest binding of name is a
// typedef. An unbound name is not a typedef.
func (t *Table) IsTypedefInScope(name string) bool {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if sym, ok := t.frames[i][name]; ok {
			return sym.IsTypedef
		}
	}
	return false
}
