package user

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrMissingFields = errors.New("name, surname, email and dni are required")
	ErrDNITaken      = errors.New("dni already registered")
	ErrEmailTaken    = errors.New("email already registered")
	// ErrUniqueConflict reports a unique violation caught by the database
	// after the pre-checks passed; at that point the violated column is
	// unknown, so the conflict stays generic.
	ErrUniqueConflict = errors.New("unique data conflict")
)
