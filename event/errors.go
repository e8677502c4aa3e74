package event

import "github.com/pkg/errors"

var (
	// ErrInvalidVariant is returned when a record is viewed as, or retyped to,
	// a variant that does not accept its type.
	ErrInvalidVariant = errors.New("invalid event variant")

	// ErrDisposed is returned when user data is accessed through an owner
	// that has been disposed.
	ErrDisposed = errors.New("user data owner disposed")

	// ErrUnboundSlot is returned when a user event data slot does not carry a
	// live handle of the owner it is resolved against.
	ErrUnboundSlot = errors.New("user event slot not bound")

	// ErrUnsupportedMutation is returned by setters of fields that borrow
	// native memory. These setters never succeed.
	ErrUnsupportedMutation = errors.New("field cannot be mutated")
)

func invalidVariant(t Type, view string) error {
	return errors.Wrapf(ErrInvalidVariant, "%s does not accept %s", view, t)
}

func unsupportedMutation(view, field string) error {
	return errors.Wrapf(ErrUnsupportedMutation, "%s.%s borrows native memory, set the raw pointer instead", view, field)
}

var WaitTimeoutExceeded error = waitTimeoutError{}

type waitTimeoutError struct{}

func (waitTimeoutError) Error() string   { return "wait timeout exceeded" }
func (waitTimeoutError) Timeout() bool   { return true }
func (waitTimeoutError) Temporary() bool { return true }
