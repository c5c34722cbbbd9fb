package sentinel

// Compile-time check that Error implements the error interface.
var _ error = Error("")

// Error is an error type backed by a string constant. Declaring sentinel
// errors as const Error values (instead of var + errors.New) makes them
// immutable: consumers cannot reassign them.
//
// Because Error is a comparable type, the default == comparison used by
// errors.Is matches through wrapped error chains without any extra methods.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}
