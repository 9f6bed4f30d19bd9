package activity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrDateTaken        = errors.New("an activity with that date already exists")
)

// UnknownUsersError aborts a linking request: every DNI must resolve within
// the activity's chapter before anything is committed.
type UnknownUsersError struct {
	DNIs []string
}

func (e *UnknownUsersError) Error() string {
	return fmt.Sprintf("users not found in this chapter: %s", strings.Join(e.DNIs, ", "))
}
