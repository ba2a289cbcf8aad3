package errs

import "errors"

// Failure categories. Usecases mark domain sentinels with one of these so
// transports can map a whole class of failures at once.
var (
	// InsufficientStock, OverReceipt
	ErrCapacity = errors.New("capacity exceeded")
	// NoPriceBook, InvalidWindow and other data-setup gaps
	ErrConfiguration = errors.New("configuration error")
	// InvalidTransition
	ErrState = errors.New("invalid state")
	// lost updates that survived the bounded retry loop
	ErrConcurrency = errors.New("concurrency conflict")

	ErrNotFound = errors.New("not found")

	ErrValidation = errors.New("validation failed")
)

func Category(err error) error {
	for _, c := range []error{ErrCapacity, ErrConfiguration, ErrState, ErrConcurrency, ErrNotFound, ErrValidation} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
