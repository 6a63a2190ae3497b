package service

import (
	"errors"
)

// Rejections raised while collecting a reservation. Each ends the session.
var (
	ErrInvalidSelection        = errors.New("invalid room type selection")
	ErrInvalidCount            = errors.New("number of rooms must be greater than zero")
	ErrInvalidDateFormat       = errors.New("invalid date format")
	ErrInvalidDateRange        = errors.New("check-out date must be after check-in date")
	ErrInvalidServiceSelection = errors.New("invalid additional service selection")
)

// ErrInputClosed is returned when the input ends before a prompt is answered.
var ErrInputClosed = errors.New("input closed before reservation was complete")

var messages = []struct {
	err error
	msg string
}{
	{ErrInvalidSelection, "Error: Invalid room type selection."},
	{ErrInvalidCount, "Error: Number of rooms must be greater than zero."},
	{ErrInvalidDateFormat, "Error: Invalid date format."},
	{ErrInvalidDateRange, "Error: Check-out date must be after check-in date."},
	{ErrInvalidServiceSelection, "Error: Invalid additional service selection."},
}

// IsRejection reports whether err is one of the input validation failures.
func IsRejection(err error) bool {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return true
		}
	}
	return false
}

// Message returns the line shown to the guest for err.
func Message(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "Error: " + err.Error()
}
