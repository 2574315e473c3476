package form

// Element identifiers shared by every renderer.
const (
	IDForm            = "name-form"
	IDFirstNameInput  = "first-name-input"
	IDLastNameInput   = "last-name-input"
	IDSubmitButton    = "submit-button"
	IDFirstNameError  = "first-name-error"
	IDLastNameError   = "last-name-error"
	IDFullNameDisplay = "full-name-display"
)
