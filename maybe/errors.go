package maybe

import "fmt"

// EmptyValueAccessError is the panic value raised when a value is forced
// out of an empty Maybe. It signals misuse of the API rather than a
// recoverable failure, so it is delivered via panic, not an error return.
type EmptyValueAccessError struct {
	// TypeName is the dynamic type the caller expected to receive.
	TypeName string
}

func (e *EmptyValueAccessError) Error() string {
	return fmt.Sprintf("maybe: forced access on empty Maybe[%s]", e.TypeName)
}
