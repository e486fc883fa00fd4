package schedule

import "errors"

// ErrInvalidDay is returned when a string is not a YYYY-MM-DD day key.
var ErrInvalidDay = errors.New("invalid day key")

// ErrMalformedSchedule indicates a schedule document could not be decoded.
var ErrMalformedSchedule = errors.New("malformed schedule")
