// Package source loads and normalizes natrix source code and provides a
// lazily-built line index used to translate byte offsets into line/column
// positions for diagnostics.
package source

import (
	"os"
	"sort"
	"strings"
)

// Source is an immutable, normalized source buffer together with its name.
//
// Normalization guarantees that Code contains no '\r' and ends with '\n'.
// The value is safe to share and read from multiple goroutines once built;
// it is not safe to use concurrently with the very first call that triggers
// line-index construction and a later one (see lines()).
type Source struct {
	Name string
	Code string

	// lineStarts[k] is the byte offset of the first character of line k+1
	// (0-based slice, 1-based line numbers). Built lazily by lines().
	lineStarts []int
}

// Empty reports whether the source is the sentinel "failed to load" value.
func (s *Source) Empty() bool {
	return s.Name == "" && s.Code == ""
}

// LoadString builds a Source from an in-memory string, normalizing line
// endings and guaranteeing a trailing newline.
func LoadString(name, text string) *Source {
	return &Source{Name: name, Code: normalize(text)}
}

// LoadFile reads and normalizes the named file. On failure it returns the
// sentinel empty Source (Empty() reports true); it never returns an error,
// matching the boundary contract of the original source_from_file.
func LoadFile(path string) *Source {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Source{}
	}
	return &Source{Name: path, Code: normalize(string(data))}
}

// normalize replaces every "\r\n" and lone "\r" with "\n" and appends a
// trailing "\n" if the text doesn't already end with one.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 1)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\r' {
			b.WriteByte('\n')
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			continue
		}
		b.WriteByte(c)
	}
	out := b.String()
	if out == "" || out[len(out)-1] != '\n' {
		out += "\n"
	}
	return out
}

// lines materializes the line-start index on first use.
func (s *Source) lines() []int {
	if s.lineStarts == nil {
		starts := []int{0}
		for i := 0; i < len(s.Code); i++ {
			if s.Code[i] == '\n' {
				starts = append(starts, i+1)
			}
		}
		s.lineStarts = starts
	}
	return s.lineStarts
}

// LineCount returns the number of lines, i.e. the number of '\n' characters
// in Code plus one (the empty line past the final newline).
func (s *Source) LineCount() int {
	return len(s.lines())
}

// LineNumber returns the 1-based line number containing byte offset pos.
func (s *Source) LineNumber(pos int) int {
	starts := s.lines()
	// Find the last line start <= pos.
	i := sort.Search(len(starts), func(i int) bool { return starts[i] > pos })
	if i == 0 {
		i = 1
	}
	return i
}

// LineStart returns the byte offset of the first character of line k (1-based).
func (s *Source) LineStart(k int) int {
	return s.lines()[k-1]
}

// LineEnd returns the byte offset of the '\n' terminating line k (1-based),
// or the length of Code for the sentinel past-the-last-newline line.
func (s *Source) LineEnd(k int) int {
	starts := s.lines()
	if k < len(starts) {
		return starts[k] - 1
	}
	return len(s.Code)
}
