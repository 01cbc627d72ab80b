// Package dice parses compact dice notation and executes rolls.
//
// Notation is [repeat#][count]d<sides>[+|-modifier], case-insensitive, with
// all whitespace ignored. "2#d20+3" rolls one d20 twice and adds 3 to each
// result; "4d6" sums four six-sided dice; "d8-1" is one d8 minus one.
package dice

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/rpg-table/internal/errors"
)

// ErrInvalidFormat is the message for any input that is not valid notation
const ErrInvalidFormat = "invalid format"

// RollSpec is a parsed roll request. Build one with Parse.
type RollSpec struct {
	RepeatCount int
	DiceCount   int
	DiceSides   int
	Modifier    int
}

// Formula renders a single repeat, e.g. "1d20+3"
func (s RollSpec) Formula() string {
	if s.Modifier != 0 {
		return fmt.Sprintf("%dd%d%+d", s.DiceCount, s.DiceSides, s.Modifier)
	}
	return fmt.Sprintf("%dd%d", s.DiceCount, s.DiceSides)
}

// String renders canonical notation. Parse(s.String()) yields s.
func (s RollSpec) String() string {
	if s.RepeatCount != 1 {
		return fmt.Sprintf("%d#%s", s.RepeatCount, s.Formula())
	}
	return s.Formula()
}

// Parse reads dice notation into a RollSpec. The whole input must match;
// anything else is an InvalidArgument error.
func Parse(input string) (*RollSpec, error) {
	sc := &scanner{src: normalize(input)}

	spec := &RollSpec{RepeatCount: 1, DiceCount: 1}

	lead, hasLead, ok := sc.number()
	if !ok {
		return nil, invalidFormat(input)
	}

	if sc.accept('#') {
		if !hasLead {
			return nil, invalidFormat(input)
		}
		spec.RepeatCount = lead

		count, hasCount, ok := sc.number()
		if !ok {
			return nil, invalidFormat(input)
		}
		if hasCount {
			spec.DiceCount = count
		}
	} else if hasLead {
		spec.DiceCount = lead
	}

	if !sc.accept('d') {
		return nil, invalidFormat(input)
	}

	sides, hasSides, ok := sc.number()
	if !ok || !hasSides {
		return nil, invalidFormat(input)
	}
	spec.DiceSides = sides

	if sign, signed := sc.sign(); signed {
		mod, hasMod, ok := sc.number()
		if !ok || !hasMod {
			return nil, invalidFormat(input)
		}
		spec.Modifier = sign * mod
	}

	if !sc.done() {
		return nil, invalidFormat(input)
	}

	if spec.RepeatCount < 1 || spec.DiceCount < 1 || spec.DiceSides < 1 {
		return nil, invalidFormat(input)
	}

	return spec, nil
}

func invalidFormat(input string) error {
	return errors.InvalidArgument(ErrInvalidFormat).WithMeta("input", input)
}

func normalize(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, input)
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) accept(c byte) bool {
	if !s.done() && s.src[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

func (s *scanner) sign() (int, bool) {
	switch {
	case s.accept('+'):
		return 1, true
	case s.accept('-'):
		return -1, true
	default:
		return 0, false
	}
}

// number consumes a run of ASCII digits. found is false when there are none;
// ok is false when the run does not fit in an int.
func (s *scanner) number() (n int, found, ok bool) {
	start := s.pos
	for !s.done() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false, true
	}
	n, err := strconv.Atoi(s.src[start:s.pos])
	if err != nil {
		return 0, true, false
	}
	return n, true, true
}
