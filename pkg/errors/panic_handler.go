package errors

import (
	"fmt"

	"github.com/Knoblauchpilze/backend-toolkit/pkg/errors"
)

// SafeCall runs the function and converts a panic into an error. The zero
// value is returned alongside the error in that case.
func SafeCall[T any](fn func() T) (out T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			var zero T
			out = zero
			err = asError(recovered)
		}
	}()

	out = fn()
	return
}

func asError(recovered any) error {
	if asErr, ok := recovered.(error); ok {
		return asErr
	}
	return errors.New(fmt.Sprintf("%v", recovered))
}
