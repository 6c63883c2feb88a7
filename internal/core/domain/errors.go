package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLocationNotFound is returned when the geocoder has no match for a query.
	ErrLocationNotFound = errors.New("location not found")

	// ErrThemeNotFound is returned by theme stores for unknown theme names.
	ErrThemeNotFound = errors.New("theme not found")
)

// LookupError reports a geocoding query without any match.
type LookupError struct {
	Query string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("could not find coordinates for %s", e.Query)
}

// Is lets errors.Is(err, ErrLocationNotFound) match a LookupError.
func (e *LookupError) Is(target error) bool {
	return target == ErrLocationNotFound
}
