// errors.go defines sentinel errors for template construction and filling.
//
// Construction failures wrap ErrConstruction plus one sub-kind so callers
// can match either the category or the exact cause with errors.Is. Detail
// (position index, offending name) is added by fmt.Errorf at the call site.

package shellcmd

import "errors"

var (
	// ErrConstruction is wrapped by every error returned from New.
	ErrConstruction = errors.New("bad command template")
	// ErrEmptyPlaceholder means a placeholder was declared with no names.
	ErrEmptyPlaceholder = errors.New("placeholder with no names")
	// ErrUnmappedValidator means a validator was registered for a name no
	// placeholder declares.
	ErrUnmappedValidator = errors.New("unmapped validator")
	// ErrMalformedValidators means the validator registry holds an entry
	// that is not a usable validator.
	ErrMalformedValidators = errors.New("malformed validators")

	// ErrInvalidReplacements is returned by Fill when the replacement set
	// fails validation.
	ErrInvalidReplacements = errors.New("bad replacements")
)
