package settings

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/swatches/internal/colour"
	"github.com/jmylchreest/swatches/internal/swatch"
)

// Problem describes a palette entry whose configuration cannot be rendered.
type Problem struct {
	Palette string
	Entry   string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s: %s", p.Palette, p.Entry, p.Message)
}

// Validate checks every palette in s and returns the problems found, in
// palette name order. Problems never stop resolution; they are reported to
// the administrator.
func Validate(s *swatch.Settings) []Problem {
	if s == nil {
		return nil
	}

	var problems []Problem
	if _, ok := s.Palettes[GlobalPalette]; ok {
		problems = append(problems, Problem{GlobalPalette, "-",
			fmt.Sprintf("shared palette name is reserved for the global colours; listed as %q", SharedPrefix+GlobalPalette)})
	}
	for _, p := range Palettes(s) {
		problems = append(problems, ValidatePalette(p.Name, p.Palette)...)
	}
	return problems
}

// ValidatePalette checks the entries of one palette.
func ValidatePalette(name string, p swatch.Palette) []Problem {
	var problems []Problem
	seen := make(map[string]int)

	for _, e := range p {
		id := e.ID()
		if e.Scalar {
			problems = append(problems, Problem{name, id, fmt.Sprintf("entry %q is not an object and cannot be selected", e.Raw)})
			continue
		}
		if e.Label == "" {
			problems = append(problems, Problem{name, id, "missing label"})
		}
		if prev, dup := seen[e.Label]; dup {
			problems = append(problems, Problem{name, id, fmt.Sprintf("duplicate label %q (also entry %d); the later entry wins", e.Label, prev)})
		}
		seen[e.Label] = e.Position

		for i, s := range e.Color.Entries() {
			if strings.TrimSpace(s) == "" {
				problems = append(problems, Problem{name, id, fmt.Sprintf("blank color stop %d", i+1)})
			}
		}
		values := e.Color.Values()
		if len(values) == 0 {
			problems = append(problems, Problem{name, id, "missing color"})
		}
		for _, v := range values {
			if _, err := colour.Parse(v); err != nil {
				problems = append(problems, Problem{name, id, fmt.Sprintf("invalid color %q: %v", v, err)})
			}
		}
	}
	return problems
}
