// Package rangeset parses the human range expressions accepted by -n /
// --number ("1,3,5-8") into a membership predicate over test ordinals.
package rangeset

import (
	"strconv"
	"strings"

	"github.com/kendru/doccmd/internal/domain"
)

// Set is the parsed form of a range expression. A nil Set means "no
// filter" — every ordinal is a member.
type Set struct {
	spans []span
}

type span struct {
	lo, hi int // inclusive, lo <= hi after normalization
}

// Parse parses a range expression of the form part(,part)* where part is a
// positive integer or n-m with positive integers. An empty string or the
// literal "0" means "no filter". The token "0" anywhere in the expression
// is silently ignored (compatibility with the original tool).
func Parse(expr string) (*Set, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" || expr == "0" {
		return nil, nil
	}

	for _, c := range expr {
		if (c < '0' || c > '9') && c != ',' && c != '-' {
			return nil, invalidArg()
		}
	}

	var s Set
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, invalidArg()
		}
		if part == "0" {
			continue
		}

		if idx := strings.Index(part, "-"); idx >= 0 {
			loStr := part[:idx]
			hiStr := part[idx+1:]
			lo, err := parsePositive(loStr)
			if err != nil {
				return nil, invalidArg()
			}
			hi, err := parsePositive(hiStr)
			if err != nil {
				return nil, invalidArg()
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			s.spans = append(s.spans, span{lo: lo, hi: hi})
			continue
		}

		n, err := parsePositive(part)
		if err != nil {
			return nil, invalidArg()
		}
		s.spans = append(s.spans, span{lo: n, hi: n})
	}

	if len(s.spans) == 0 {
		return nil, nil
	}
	return &s, nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, invalidArg()
	}
	return n, nil
}

func invalidArg() error {
	return domain.NewError("range", "", 0, "invalid argument for -n or --number", nil)
}

// Member reports whether ordinal k belongs to the set. A nil Set (no
// filter) is a member for every k.
func (s *Set) Member(k int) bool {
	if s == nil {
		return true
	}
	for _, sp := range s.spans {
		if k >= sp.lo && k <= sp.hi {
			return true
		}
	}
	return false
}
