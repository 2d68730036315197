package utils

import "errors"

var (
	ErrInvalidTripDate  = errors.New("invalid trip date")
	ErrStatusUpdate     = errors.New("post status update failed")
	ErrEmailLookup      = errors.New("email lookup failed")
	ErrDispatcherClosed = errors.New("mail dispatcher closed")
	ErrDatabaseError    = errors.New("database error")
)
