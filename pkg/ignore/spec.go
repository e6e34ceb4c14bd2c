package ignore

import (
	"strings"
)

// DefaultFileName is the name of the generated ignore file
const DefaultFileName = ".gitignore"

// DirPatterns pairs a checkout directory with patterns relative to it
type DirPatterns struct {
	Dir      string
	Patterns []string
}

// Spec accumulates ignore rules in recording order
type Spec struct {
	ExcludeAll   []string
	ExcludeByDir []DirPatterns
	IncludeByDir []DirPatterns
}

// New creates a Spec starting from the unconditional exclude lines
func New(excludeAll []string) *Spec {
	lines := make([]string, len(excludeAll))
	copy(lines, excludeAll)
	return &Spec{ExcludeAll: lines}
}

// Record adds the fragments of one checkout directory. Both lists are
// recorded even when empty: every recorded directory gets a blanket
// "/dir/*" line, re-included patterns or not.
func (s *Spec) Record(dir string, exclude, include []string) {
	s.ExcludeByDir = append(s.ExcludeByDir, DirPatterns{Dir: dir, Patterns: copyOf(exclude)})
	s.IncludeByDir = append(s.IncludeByDir, DirPatterns{Dir: dir, Patterns: copyOf(include)})
}

// Lines returns the ignore file contents, one rule per entry
func (s *Spec) Lines() []string {
	lines := make([]string, 0, len(s.ExcludeAll))
	lines = append(lines, s.ExcludeAll...)

	for _, entry := range s.ExcludeByDir {
		for _, pattern := range entry.Patterns {
			lines = append(lines, scoped(entry.Dir, pattern))
		}
	}

	for _, entry := range s.IncludeByDir {
		lines = append(lines, scoped(entry.Dir, "*"))
		for _, pattern := range entry.Patterns {
			lines = append(lines, "!"+scoped(entry.Dir, pattern))
		}
	}

	return lines
}

// Render returns the file contents with a trailing newline
func (s *Spec) Render() []byte {
	lines := s.Lines()
	if len(lines) == 0 {
		return []byte{}
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// scoped anchors pattern under dir
func scoped(dir, pattern string) string {
	return "/" + dir + "/" + pattern
}

func copyOf(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
