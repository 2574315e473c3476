// Package form holds the name form state machine: two text values, their
// touched flags and error slots, and the full name derived on submit.
//
// A Controller is driven by a host (terminal UI, prompt, HTTP page) that
// delivers change, blur and submit events one at a time. It is not safe for
// concurrent use.
package form

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/nameform/internal/model"
)

// SubmitEvent is the host's submit event. Submit always suppresses its
// default action.
type SubmitEvent interface {
	PreventDefault()
}

// Controller is the name form state.
type Controller struct {
	first, last       string
	firstErr, lastErr string
	fullName          string
	touched           model.Touched

	log *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for event tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns an empty, untouched controller.
func New(opts ...Option) *Controller {
	c := &Controller{log: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Change overwrites the value of f. A field that was already touched is
// re-validated immediately; an untouched one keeps quiet while the user types.
func (c *Controller) Change(f model.Field, value string) {
	*c.valueRef(f) = value
	if c.touched.Get(f) {
		c.validateField(f, value)
	}
	c.log.Debug("change", zap.Stringer("field", f), zap.Bool("touched", c.touched.Get(f)))
}

// Blur marks f touched and validates its current value.
func (c *Controller) Blur(f model.Field) {
	c.touched.Set(f)
	ok := c.validateField(f, c.Value(f))
	c.log.Debug("blur", zap.Stringer("field", f), zap.Bool("valid", ok))
}

// Submit suppresses ev's default action, touches both fields, validates first
// then last and derives the full name. It reports whether both fields were
// valid. A failed submit clears any previously derived full name.
func (c *Controller) Submit(ev SubmitEvent) bool {
	if ev != nil {
		ev.PreventDefault()
	}
	c.touched = model.Touched{First: true, Last: true}

	firstOK := c.validateField(model.First, c.first)
	lastOK := c.validateField(model.Last, c.last)

	if firstOK && lastOK {
		c.fullName = Trim(c.first) + " " + Trim(c.last)
	} else {
		c.fullName = ""
	}
	c.log.Debug("submit",
		zap.Bool("first_valid", firstOK),
		zap.Bool("last_valid", lastOK),
		zap.Bool("full_name", c.fullName != ""))
	return firstOK && lastOK
}

// validateField stores the outcome of Validate(value) in f's error slot.
func (c *Controller) validateField(f model.Field, value string) bool {
	r := Validate(value)
	*c.errRef(f) = r.Message
	return r.Valid
}

// Value returns the current text of f.
func (c *Controller) Value(f model.Field) string { return *c.valueRef(f) }

// Error returns the last computed error message of f, shown or not.
func (c *Controller) Error(f model.Field) string { return *c.errRef(f) }

// Touched reports whether f has been blurred or submitted.
func (c *Controller) Touched(f model.Field) bool { return c.touched.Get(f) }

// FullName returns the derived full name, empty unless the last submit passed.
func (c *Controller) FullName() string { return c.fullName }

func (c *Controller) valueRef(f model.Field) *string {
	if f == model.Last {
		return &c.last
	}
	return &c.first
}

func (c *Controller) errRef(f model.Field) *string {
	if f == model.Last {
		return &c.lastErr
	}
	return &c.firstErr
}
