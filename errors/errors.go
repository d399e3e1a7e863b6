package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Submission rejections reported by the transfer gateway.
	ErrCapacityExceeded    = fmt.Errorf("gateway capacity exceeded")
	ErrDuplicateRequest    = fmt.Errorf("request already submitted for this correlation tag")
	ErrSystemDisabled      = fmt.Errorf("background transfers are disabled")
	ErrInsufficientStorage = fmt.Errorf("not enough free disk space")
	ErrTransport           = fmt.Errorf("transport failure")

	// ErrAlreadyCancelled is returned by Remove when the request no longer exists.
	ErrAlreadyCancelled = fmt.Errorf("request already removed")

	// ErrRequestRemoved is carried by the final status report of a transfer
	// that was removed before it could finish.
	ErrRequestRemoved = fmt.Errorf("request removed before completion")

	ErrNotFound = fmt.Errorf("not found")
)
