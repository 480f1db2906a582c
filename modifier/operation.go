package modifier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/objmod/enum"
)

// Operation is the edit a Modifier makes at its path. The zero Operation is
// Add.
type Operation int

const (
	Replace Operation = iota + 1
	Add
	Multiply
)

var ErrBadOperation = errors.New("bad operation")

var operations = enum.New(
	enum.Entry{Name: "Replace", Description: "Replace the value rather than modify", Data: "REPLACEMENT"},
	enum.Entry{Name: "Add", Description: "Add the value of the modifier to the target", Data: "ADDITION"},
	enum.Entry{Name: "Multiply", Description: "Multiply the value of the modifier to the target", Data: "MULTIPLICATION"},
)

// ParseOperation accepts operation names ("add") and their long forms
// ("ADDITION"), ignoring case.
func ParseOperation(v string) (Operation, error) {
	if i, err := operations.Fold(v); err == nil {
		return opAt(i), nil
	}
	for i, e := range operations.Entries() {
		if long, ok := e.Data.(string); ok && strings.EqualFold(long, v) {
			return opAt(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadOperation, v)
}

// opAt gives the operation declared at index i, Replace being 0.
func opAt(i int) Operation {
	return Operation(i + 1)
}

func (o Operation) index() int {
	if o == 0 {
		return Add.index()
	}
	return int(o) - 1
}

func (o Operation) String() string {
	d, err := o.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (o Operation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("<err: %d is not an operation>", int(o))
	}
	return []byte(strings.ToLower(operations.Name(o.index()))), nil
}

func (o *Operation) UnmarshalText(d []byte) error {
	po, err := ParseOperation(string(d))
	if err != nil {
		return err
	}
	*o = po
	return nil
}

func (o Operation) Description() string {
	return operations.Description(o.index())
}

func (o Operation) Valid() bool {
	return operations.Valid(o.index())
}

// Operations returns all operations in index order.
func Operations() []Operation {
	res := make([]Operation, operations.Len())
	for i := range res {
		res[i] = opAt(i)
	}
	return res
}
