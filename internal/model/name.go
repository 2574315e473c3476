package model

import "fmt"

// Field identifies one of the two name inputs.
type Field int

const (
	First Field = iota
	Last
)

// Fields lists every field in submit order.
var Fields = []Field{First, Last}

func (f Field) String() string {
	switch f {
	case First:
		return "first"
	case Last:
		return "last"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps the wire names "first" and "last" back to a Field.
func ParseField(s string) (Field, error) {
	switch s {
	case "first":
		return First, nil
	case "last":
		return Last, nil
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

// Touched records which fields have been blurred or forced by a submit.
type Touched struct {
	First bool `json:"first"`
	Last  bool `json:"last"`
}

// Get returns the flag for f.
func (t Touched) Get(f Field) bool {
	if f == Last {
		return t.Last
	}
	return t.First
}

// Set marks f as touched.
func (t *Touched) Set(f Field) {
	if f == Last {
		t.Last = true
		return
	}
	t.First = true
}
