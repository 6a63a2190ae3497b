package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muqry/hotel-reservation/internal/catalog"
	"github.com/muqry/hotel-reservation/internal/models"
)

// ParseRoomSelection converts a 1-based menu choice into a 0-based room index.
func ParseRoomSelection(raw string, c *catalog.Catalog) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, raw)
	}
	index := n - 1
	if _, ok := c.Room(index); !ok {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidSelection, n, c.RoomCount())
	}
	return index, nil
}

// ParseRoomCount parses a strictly positive number of rooms.
func ParseRoomCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidCount, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	return n, nil
}

// ParseStayDates parses both dates before comparing them, so a bad format is
// reported ahead of a bad range.
func ParseStayDates(checkInRaw, checkOutRaw string) (checkIn, checkOut models.Date, err error) {
	checkIn, err = models.ParseDate(strings.TrimSpace(checkInRaw))
	if err != nil {
		return models.Date{}, models.Date{}, fmt.Errorf("%w: check-in: %v", ErrInvalidDateFormat, err)
	}
	checkOut, err = models.ParseDate(strings.TrimSpace(checkOutRaw))
	if err != nil {
		return models.Date{}, models.Date{}, fmt.Errorf("%w: check-out: %v", ErrInvalidDateFormat, err)
	}
	if !checkOut.After(checkIn) {
		return models.Date{}, models.Date{}, fmt.Errorf("%w: %s is not after %s", ErrInvalidDateRange, checkOut, checkIn)
	}
	return checkIn, checkOut, nil
}

// ParseServiceSelection turns "1, 3" into the matching services in selection
// order. One bad token rejects the whole selection. Repeats are kept once.
func ParseServiceSelection(raw string, c *catalog.Catalog) ([]models.Service, error) {
	var selected []models.Service
	seen := make(map[int]bool)
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidServiceSelection, token)
		}
		svc, ok := c.Service(n - 1)
		if !ok {
			return nil, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidServiceSelection, n, c.ServiceCount())
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		selected = append(selected, svc)
	}
	return selected, nil
}

// IsAffirmative reports whether a yes/no answer is "yes", ignoring case.
func IsAffirmative(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "yes")
}
