// Package source maps byte offsets in a source buffer to line/column
// positions. Tokens store offsets only; positions are derived on demand.
package source

import (
	"fmt"
	"sort"
)

// Position is a 1-based line/column location in a file.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// File wraps a source buffer and its precomputed line starts.
type File struct {
	Name    string
	Content string

	lineStarts []int // byte offset of the first byte of each line
}

func NewFile(name, content string) *File {
	f := &File{Name: name, Content: content}
	f.lineStarts = append(f.lineStarts, 0)
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			f.lineStarts = append(f.lineStarts, i+1)
		}
	}
	return f
}

// Position resolves a byte offset to a line/column pair. Offsets past the
// end of the buffer resolve to the position just past the last byte, so
// end-of-file diagnostics stay well-formed.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Content) {
		offset = len(f.Content)
	}
	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})
	return Position{Line: line, Column: offset - f.lineStarts[line-1] + 1}
}
