package life

import (
	"errors"
	"fmt"
	"strings"

	"github.com/randomizedcoder/axcontainers/internal/vector"
)

// Rule is one half of a B/S rulestring: the neighbour counts that make a
// cell be born, or survive.
type Rule struct {
	// Counts holds the allowed neighbour counts in ascending order. For a
	// range it holds exactly the two bounds.
	Counts []uint8
	Range  bool
}

// Match reports whether n neighbours satisfy the rule.
func (r Rule) Match(n int) bool {
	if len(r.Counts) == 0 {
		return false
	}
	if r.Range {
		return int(r.Counts[0]) <= n && n <= int(r.Counts[1])
	}
	for _, c := range r.Counts {
		if int(c) == n {
			return true
		}
	}
	return false
}

// Max returns the greatest neighbour count the rule accepts, -1 if none.
func (r Rule) Max() int {
	if len(r.Counts) == 0 {
		return -1
	}
	return int(r.Counts[len(r.Counts)-1])
}

func (r Rule) String() string {
	var b strings.Builder
	if r.Range {
		for c := r.Counts[0]; c <= r.Counts[1]; c++ {
			b.WriteByte('0' + c)
		}
		return b.String()
	}
	for _, c := range r.Counts {
		b.WriteByte('0' + c)
	}
	return b.String()
}

// Rules is a parsed B/S rulestring.
type Rules struct {
	Birth, Survival Rule
}

// Conway is B3/S23.
var Conway = Rules{
	Birth:    Rule{Counts: []uint8{3, 3}, Range: true},
	Survival: Rule{Counts: []uint8{2, 3}, Range: true},
}

func (r Rules) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survival.String()
}

var errRulestring = errors.New("life: only B/S rulestrings are supported")

// ParseRules parses a rulestring in B/S notation such as "B36/S23".
// Digits may repeat and appear in any order; 9 is ignored. An empty birth
// or survival list takes Conway's value. The empty string is Conway.
func ParseRules(s string) (Rules, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Conway, nil
	}
	if s[0] != 'B' && s[0] != 'b' {
		return Rules{}, fmt.Errorf("%w: %q", errRulestring, s)
	}

	r := Conway
	nums := vector.NewSized[uint8](10)
	defer nums.Destroy()

	s, err := pushDigits(nums, s[1:])
	if err != nil {
		return Rules{}, err
	}
	if nums.Len() > 0 {
		r.Birth = compileRule(nums)
	}

	if i := strings.IndexAny(s, "Ss"); i >= 0 {
		if s, err = pushDigits(nums, s[i+1:]); err != nil {
			return Rules{}, err
		}
		if nums.Len() > 0 {
			r.Survival = compileRule(nums)
		}
	}
	return r, nil
}

// pushDigits pushes the leading digits of s onto nums and returns the
// rest of s.
func pushDigits(nums *vector.Vector[uint8], s string) (string, error) {
	for len(s) > 0 && '0' <= s[0] && s[0] <= '9' {
		if err := nums.Push(s[0] - '0'); err != nil {
			return s, fmt.Errorf("life: rulestring: %w", err)
		}
		s = s[1:]
	}
	return s, nil
}

// compileRule consumes nums, leaving it empty.
func compileRule(nums *vector.Vector[uint8]) Rule {
	defer nums.Clear()

	dedupe(nums.Sort())
	if nums.Count(9) > 0 {
		nums.Discard(1) // sorted, so the 9 is last
	}
	if nums.Len() == 0 {
		return Rule{}
	}

	contiguous := true
	s := nums.Snapshot()
	for i := 0; i < s.Len()-1; i++ {
		if s.At(i)+1 != s.At(i+1) {
			contiguous = false
			break
		}
	}
	if contiguous {
		lo, _ := nums.At(0)
		hi, _ := nums.At(-1)
		return Rule{Counts: []uint8{lo, hi}, Range: true}
	}

	r := Rule{Counts: make([]uint8, 0, nums.Len())}
	for nums.Reverse(); nums.Len() > 0; nums.Discard(1) {
		c, _ := nums.Top()
		r.Counts = append(r.Counts, c)
	}
	return r
}

// dedupe drops repeated items from a sorted vector.
func dedupe[T any](v *vector.Vector[T]) {
	cmp := v.Comparator()
	var prev T
	first := true
	v.Filter(func(x T) bool {
		if !first && cmp(prev, x) == 0 {
			return false
		}
		prev, first = x, false
		return true
	})
}
