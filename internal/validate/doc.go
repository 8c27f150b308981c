// Package validate provides the predicates that guard template slots.
//
// Each predicate decides whether one untrusted replacement value may be
// placed into a command. Predicates are plain shellcmd.Predicate values, so
// they compose with shellcmd.All and can be used directly in Go code. Rule
// is the declarative form read from a template catalog; Compile turns a list
// of rules into a shellcmd.Validator.
//
// # Design Philosophy
//
// Predicates only ever narrow what is accepted. Null bytes are rejected
// everywhere by the catalog, and size limits are applied on top of whatever
// a template declares. Nothing here quotes or rewrites a value: a value is
// either placed as given or refused.
//
// # Error Handling
//
// Compile errors wrap ErrInvalidRule. Use errors.Is() to check:
//
//	if errors.Is(err, validate.ErrInvalidRule) {
//	    // fix the catalog entry
//	}
package validate
