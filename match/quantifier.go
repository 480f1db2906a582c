package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/objmod/enum"
)

// Quantifier selects how a Matcher treats multiple targets.
type Quantifier int

const (
	// AcceptAny stops at the first matching target.
	AcceptAny Quantifier = iota
	// AcceptAll requires every target to match.
	AcceptAll
	// AcceptMany keeps every matching target.
	AcceptMany
)

var ErrBadQuantifier = errors.New("bad quantifier")

var quantifiers = enum.New(
	enum.Entry{Name: "AcceptAny", Description: "Matches any value in the list or fail", Data: "MATCH_ANY"},
	enum.Entry{Name: "AcceptAll", Description: "Matches all values in the list or fail", Data: "MATCH_ALL"},
	enum.Entry{Name: "AcceptMany", Description: "Matches as many values in the list as possible", Data: "MATCH_MANY"},
)

// ParseQuantifier accepts "AcceptAny", "any" and "MATCH_ANY" style names,
// ignoring case.
func ParseQuantifier(v string) (Quantifier, error) {
	name := v
	if len(name) > len("match_") && strings.EqualFold(name[:len("match_")], "match_") {
		name = name[len("match_"):]
	}
	i, err := quantifiers.Fold(name, "Accept")
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadQuantifier, v)
	}
	return Quantifier(i), nil
}

func (q Quantifier) String() string {
	d, err := q.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (q Quantifier) MarshalText() ([]byte, error) {
	if !quantifiers.Valid(int(q)) {
		return nil, fmt.Errorf("<err: %d is not a quantifier>", int(q))
	}
	return []byte(quantifiers.Name(int(q))), nil
}

func (q *Quantifier) UnmarshalText(d []byte) error {
	pq, err := ParseQuantifier(string(d))
	if err != nil {
		return err
	}
	*q = pq
	return nil
}

func (q Quantifier) Description() string {
	return quantifiers.Description(int(q))
}

// Quantifiers returns all quantifiers in index order.
func Quantifiers() []Quantifier {
	res := make([]Quantifier, quantifiers.Len())
	for i := range res {
		res[i] = Quantifier(i)
	}
	return res
}
