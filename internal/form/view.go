package form

import "github.com/idilsaglam/nameform/internal/model"

// FullNamePrefix precedes the full name in the display element.
const FullNamePrefix = "Full Name: "

// FieldView is what a renderer needs to draw one input.
type FieldView struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
	InputID     string `json:"input_id"`
	ErrorID     string `json:"error_id"`
	Value       string `json:"value"`
	// Invalid mirrors a non-empty error slot, touched or not.
	Invalid bool `json:"invalid"`
	// Error is the message to display; empty unless touched and invalid.
	Error string `json:"error,omitempty"`
}

// ShowError reports whether the error element is present.
func (v FieldView) ShowError() bool { return v.Error != "" }

// View is the render model for the whole form.
type View struct {
	First        FieldView `json:"first"`
	Last         FieldView `json:"last"`
	FullName     string    `json:"full_name,omitempty"`
	ShowFullName bool      `json:"show_full_name"`
}

// Field returns the view of f.
func (v View) Field(f model.Field) FieldView {
	if f == model.Last {
		return v.Last
	}
	return v.First
}

// FullNameText is the content of the full-name display element.
func (v View) FullNameText() string { return FullNamePrefix + v.FullName }

// View snapshots the controller into a render model.
func (c *Controller) View() View {
	return View{
		First:        c.fieldView(model.First),
		Last:         c.fieldView(model.Last),
		FullName:     c.fullName,
		ShowFullName: c.fullName != "",
	}
}

func (c *Controller) fieldView(f model.Field) FieldView {
	v := FieldView{
		Name:    f.String(),
		Value:   c.Value(f),
		Invalid: c.Error(f) != "",
	}
	if c.Touched(f) {
		v.Error = c.Error(f)
	}
	switch f {
	case model.First:
		v.Label, v.Placeholder = "First Name", "First Name"
		v.InputID, v.ErrorID = IDFirstNameInput, IDFirstNameError
	case model.Last:
		v.Label, v.Placeholder = "Last Name", "Last Name"
		v.InputID, v.ErrorID = IDLastNameInput, IDLastNameError
	}
	return v
}
