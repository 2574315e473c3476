// Package prompt asks for the two names one after the other on a line-based
// terminal. Each answer is a change followed by a blur; the driver re-asks
// until the field validates, then the form is submitted.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/idilsaglam/nameform/internal/form"
	"github.com/idilsaglam/nameform/internal/model"
)

// Ask runs the prompt flow against c and returns the derived full name.
func Ask(ctx context.Context, d Driver, c *form.Controller) (string, error) {
	for _, f := range model.Fields {
		fv := c.View().Field(f)
		ans, err := d.Input(ctx, InputConfig{
			Message:   fv.Label + ":",
			Help:      "Letters, accented letters, hyphens, apostrophes and spaces.",
			Validator: fieldValidator(c, f),
		})
		if err != nil {
			return "", fmt.Errorf("%s: %w", f, err)
		}
		c.Change(f, ans)
		c.Blur(f)
	}
	ev := &form.DefaultPrevented{}
	if !c.Submit(ev) {
		// The driver returned an answer its validator would have rejected.
		return "", errors.New("prompt: submitted with invalid fields")
	}
	return c.FullName(), nil
}

// fieldValidator feeds each answer through the controller and reports the
// field's error so the driver can re-ask.
func fieldValidator(c *form.Controller, f model.Field) func(string) error {
	return func(ans string) error {
		c.Change(f, ans)
		c.Blur(f)
		if msg := c.Error(f); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}
