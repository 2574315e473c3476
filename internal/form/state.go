package form

import "github.com/idilsaglam/nameform/internal/model"

// State is a serialisable snapshot of a Controller.
//
// Error slots are not carried: a touched field is re-validated on every
// change, so its error always equals Validate(value), and an untouched
// field's error is always empty.
type State struct {
	First    string        `json:"first"`
	Last     string        `json:"last"`
	Touched  model.Touched `json:"touched"`
	FullName string        `json:"full_name,omitempty"`
}

// State returns the current snapshot.
func (c *Controller) State() State {
	return State{
		First:    c.first,
		Last:     c.last,
		Touched:  c.touched,
		FullName: c.fullName,
	}
}

// Restore rebuilds a controller from a snapshot. A full name is kept only if
// a successful submit could have produced it: both fields touched and the
// name splitting into two trimmed, valid halves. Anything else is dropped.
// It may be stale relative to the current values, since a change after a
// submit leaves the full name alone.
func Restore(s State, opts ...Option) *Controller {
	c := New(opts...)
	c.first, c.last = s.First, s.Last
	c.touched = s.Touched
	if s.Touched.First && s.Touched.Last && submittable(s.FullName) {
		c.fullName = s.FullName
	}
	for _, f := range model.Fields {
		if c.touched.Get(f) {
			c.validateField(f, c.Value(f))
		}
	}
	return c
}

// submittable reports whether name has the form Trim(a)+" "+Trim(b) for some
// valid a and b.
func submittable(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] != ' ' {
			continue
		}
		first, last := name[:i], name[i+1:]
		if first == Trim(first) && last == Trim(last) && Validate(first).Valid && Validate(last).Valid {
			return true
		}
	}
	return false
}

// DefaultPrevented records whether PreventDefault was called. Hosts without a
// native event object pass one to Submit and inspect it afterwards.
type DefaultPrevented struct {
	Prevented bool
}

// PreventDefault implements SubmitEvent.
func (e *DefaultPrevented) PreventDefault() { e.Prevented = true }
