package camp

import "errors"

var (
	ErrCampNotFound = errors.New("camp not found")
	ErrRegNotFound  = errors.New("registration not found")
	ErrCampFull     = errors.New("camp is at capacity")
	ErrBadDates     = errors.New("end date is before start date")
)
