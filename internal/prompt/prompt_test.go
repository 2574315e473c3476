package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/nameform/internal/form"
	"github.com/idilsaglam/nameform/internal/model"
)

// fakeDriver replays scripted answers, re-asking while the validator rejects.
type fakeDriver struct {
	answers  []string
	messages []string
	rejected []string
	err      error
}

func (d *fakeDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	if d.err != nil {
		return "", d.err
	}
	for len(d.answers) > 0 {
		ans := d.answers[0]
		d.answers = d.answers[1:]
		if cfg.Validator == nil {
			return ans, nil
		}
		if err := cfg.Validator(ans); err != nil {
			d.rejected = append(d.rejected, err.Error())
			continue
		}
		return ans, nil
	}
	return "", ErrAborted
}

func TestAsk_Valid(t *testing.T) {
	d := &fakeDriver{answers: []string{"John", "Doe"}}
	name, err := Ask(context.Background(), d, form.New())
	require.NoError(t, err)
	require.Equal(t, "John Doe", name)
	require.Equal(t, []string{"First Name:", "Last Name:"}, d.messages)
	require.Empty(t, d.rejected)
}

func TestAsk_ReasksUntilValid(t *testing.T) {
	d := &fakeDriver{answers: []string{"John123", "  ", " Mary-Jane ", "O'Connor"}}
	c := form.New()
	name, err := Ask(context.Background(), d, c)
	require.NoError(t, err)
	require.Equal(t, "Mary-Jane O'Connor", name)
	require.Equal(t, []string{form.MsgInvalidCharacters, form.MsgRequired}, d.rejected)
	require.True(t, c.Touched(model.First))
	require.True(t, c.Touched(model.Last))
}

func TestAsk_Aborted(t *testing.T) {
	d := &fakeDriver{err: ErrAborted}
	_, err := Ask(context.Background(), d, form.New())
	require.ErrorIs(t, err, ErrAborted)
	require.ErrorContains(t, err, "first")
}

// skippingDriver returns its answers without consulting the validator.
type skippingDriver struct{ answers []string }

func (d *skippingDriver) Input(context.Context, InputConfig) (string, error) {
	ans := d.answers[0]
	d.answers = d.answers[1:]
	return ans, nil
}

func TestAsk_UsesReturnedAnswers(t *testing.T) {
	d := &skippingDriver{answers: []string{"John", "Doe"}}
	c := form.New()
	name, err := Ask(context.Background(), d, c)
	require.NoError(t, err)
	require.Equal(t, "John Doe", name)
	require.Equal(t, "John", c.Value(model.First))
	require.Equal(t, "Doe", c.Value(model.Last))
}

func TestAsk_DriverSkippingValidation(t *testing.T) {
	d := &skippingDriver{answers: []string{"x1", "Doe"}}
	c := form.New()
	_, err := Ask(context.Background(), d, c)
	require.Error(t, err)
	require.Empty(t, c.FullName())
	require.Equal(t, form.MsgInvalidCharacters, c.Error(model.First))
}

func TestSurveyDriver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SurveyDriver{}.Input(ctx, InputConfig{Message: "First Name:"})
	require.ErrorIs(t, err, context.Canceled)
}
