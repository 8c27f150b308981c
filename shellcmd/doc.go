// Package shellcmd builds command argument lists from a trusted skeleton
// and untrusted replacement values.
//
// A skeleton is an ordered list of positions. Each position is either a
// fixed token, copied verbatim, or a placeholder identified by one or more
// names. Only placeholder positions are ever written from caller input, and
// only after every replacement has passed its validator.
//
// This makes building command lines less dangerous. It does not make them
// safe: values are never quoted or escaped, so the joined form returned by
// [Template.FillCommandLine] must not be handed to a real shell when values
// may contain whitespace or metacharacters. Prefer [Template.Fill] and pass
// the tokens to a process-spawning API one argument at a time.
//
// # Validators
//
// Every placeholder name is checked by its explicit [Validator] if one was
// registered with [WithValidators], otherwise by the fallback predicate. The
// default fallback is [Token], which accepts values matching
// ^[A-Za-z0-9][A-Za-z0-9_-]*$.
//
// # Error Handling
//
// [New] fails with an error wrapping [ErrConstruction] and one of
// [ErrEmptyPlaceholder], [ErrUnmappedValidator] or [ErrMalformedValidators].
// [Template.Fill] fails with an error wrapping [ErrInvalidReplacements].
// [Template.ValidateOne] and [Template.ValidateAll] never fail; they report
// false for anything they cannot accept.
//
//	grep, err := shellcmd.New([]shellcmd.Position{
//		shellcmd.Fixed("grep"),
//		shellcmd.Placeholder("switch"),
//		shellcmd.Placeholder("pattern"),
//		shellcmd.Placeholder("file"),
//	}, shellcmd.WithValidator("switch", shellcmd.Single(isSwitch)))
//
// A Template is immutable once built and may be shared between goroutines.
package shellcmd
