// Package stripper removes catalogued log statements from source text.
//
// The engine knows nothing about the rules it applies: it folds an ordered
// rule list over a single in-memory buffer, each global substitution seeing
// the output of the previous one, then collapses the blank-line runs the
// removals leave behind.
package stripper

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/voxline/delog/internal/catalogue"
)

// ErrNotUTF8 is returned when a target file's content is not valid UTF-8.
var ErrNotUTF8 = errors.New("file content is not valid UTF-8")

// blankRunPattern matches runs of three or more newlines, i.e. two or more
// consecutive blank lines.
var blankRunPattern = regexp.MustCompile(`\n\n\n+`)

// Stripper applies an ordered rule catalogue to text buffers and files.
type Stripper struct {
	rules    []catalogue.Rule
	compiled []*regexp.Regexp
}

// New compiles the given rules into a Stripper. Rules are applied in the
// order given.
func New(rules []catalogue.Rule) (*Stripper, error) {
	compiled := make([]*regexp.Regexp, len(rules))
	for i, rule := range rules {
		re, err := rule.Compile()
		if err != nil {
			return nil, err
		}
		compiled[i] = re
	}
	return &Stripper{rules: rules, compiled: compiled}, nil
}

// Rules returns the catalogue this stripper was built from, in application
// order.
func (s *Stripper) Rules() []catalogue.Rule {
	return s.rules
}

// Strip removes every rule match from the text and collapses the resulting
// blank-line runs. A rule that matches nothing is a no-op, not an error.
func (s *Stripper) Strip(text string) string {
	out, _ := s.StripCount(text)
	return out
}

// StripCount is Strip plus the number of call sites removed. The count never
// appears in the completion summary; it feeds verbose output and the watch
// loop.
func (s *Stripper) StripCount(text string) (string, int) {
	removed := 0
	for _, re := range s.compiled {
		matches := re.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}
		removed += len(matches)
		text = re.ReplaceAllString(text, "")
	}
	return CollapseBlankLines(text), removed
}

// CollapseBlankLines reduces every run of three or more consecutive newlines
// to exactly two, so at most one blank line survives between content. The
// pass is global: pre-existing runs collapse too, not only those left by
// removals.
func CollapseBlankLines(text string) string {
	return blankRunPattern.ReplaceAllString(text, "\n\n")
}

// Report summarizes one file-strip run.
type Report struct {
	Path        string `json:"path"`
	Removed     int    `json:"removed"`
	BytesBefore int    `json:"bytes_before"`
	BytesAfter  int    `json:"bytes_after"`
}

// StripFile reads the file at path, strips it, and overwrites it in place,
// preserving the file mode. The write is destructive: no backup is made and
// no atomic rename is used, so an interrupted write can leave the file
// truncated.
func (s *Stripper) StripFile(path string) (*Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotUTF8)
	}

	out, removed := s.StripCount(string(data))

	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	return &Report{
		Path:        path,
		Removed:     removed,
		BytesBefore: len(data),
		BytesAfter:  len(out),
	}, nil
}
