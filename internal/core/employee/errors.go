package employee

import "errors"

var (
	ErrInvalidID               = errors.New("employee: invalid id")
	ErrNilEmployee             = errors.New("employee: employee is required")
	ErrInvalidFirstName        = errors.New("employee: first name is required")
	ErrInvalidLastName         = errors.New("employee: last name is required")
	ErrInvalidNationalID       = errors.New("employee: national identifier is required")
	ErrEmployeeNotFound        = errors.New("employee: not found")
	ErrNationalIDAlreadyExists = errors.New("employee: national identifier already exists")
	ErrFileRequired            = errors.New("employee: an employee must be created with a personnel file")
	ErrFileIDRequired          = errors.New("employee: the attached personnel file must already exist")
	ErrMissingGeneratedID      = errors.New("employee: store did not assign an id")

	// ErrFileIntegrity reports a stored employee without a personnel file, a
	// state that is unreachable unless a prior operation broke the invariant.
	ErrFileIntegrity = errors.New("employee: stored employee has no personnel file attached")
)
