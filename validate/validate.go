// Package validate produces form validation results as a mapping from field
// name to message. Placement of the messages is the rendering layer's
// concern; the mapping plus a single deterministic focus target is the whole
// contract.
package validate

import (
	"board-cli/shared"
)

type Result struct {
	// Messages holds one message per invalid field. Valid fields are absent.
	Messages map[string]string

	// Focus is the field that should receive focus: the last invalid field in
	// evaluation order. Empty when the form is valid.
	Focus string
}

func (r Result) Valid() bool {
	return len(r.Messages) == 0
}

// Required evaluates every listed field in order against values, recording a
// message for each blank (trim-based) field. When several fields are invalid,
// focus lands on whichever was evaluated last.
func Required(values map[string]string, fields ...string) Result {
	res := Result{Messages: map[string]string{}}

	for _, field := range fields {
		if shared.IsBlank(values[field]) {
			res.Messages[field] = shared.Capitalize(field) + " is required."
			res.Focus = field
		}
	}

	return res
}

// FromFieldErrors converts a server-side 422 field-error map into the same
// result shape client-side validation produces. Exactly one message per
// listed field.
func FromFieldErrors(errs map[string]shared.FieldError) Result {
	res := Result{Messages: map[string]string{}}

	for field, fieldErr := range errs {
		res.Messages[field] = fieldErr.Msg
	}

	return res
}
