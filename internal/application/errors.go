package application

import "errors"

var (
	// ErrNotFound means the club search or match list came back empty.
	ErrNotFound = errors.New("not found")
	// ErrUpstream wraps a failed required fetch from the stats provider.
	ErrUpstream = errors.New("upstream failure")
	// ErrInvalidClubName is returned before any network call is made.
	ErrInvalidClubName = errors.New("invalid club name")
)
