package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/muqry/hotel-reservation/internal/catalog"
	"github.com/muqry/hotel-reservation/internal/models"
	hotelvalidator "github.com/muqry/hotel-reservation/internal/validator"
)

// Calculator prices reservation requests against a catalog.
type Calculator struct {
	catalog  *catalog.Catalog
	validate *validator.Validate
}

func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{
		catalog:  c,
		validate: hotelvalidator.New(),
	}
}

// Quote validates req and computes nights, subtotal, per-room service
// charges and the total. Services are charged per room, not per night.
func (c *Calculator) Quote(req models.ReservationRequest) (*models.ReservationResult, error) {
	if err := c.check(req); err != nil {
		return nil, err
	}

	room, _ := c.catalog.Room(req.RoomTypeIndex)
	nights := req.CheckIn.DaysUntil(req.CheckOut)

	result := &models.ReservationResult{
		RoomType:    room,
		TotalNights: nights,
		Charges:     make([]models.ServiceCharge, 0, len(req.Services)),
	}
	perRoom, ok := mulAmount(room.Rate, nights)
	if ok {
		result.Subtotal, ok = mulAmount(perRoom, req.NumRooms)
	}
	if !ok {
		return nil, tooLarge(req)
	}
	for _, svc := range req.Services {
		charge := models.ServiceCharge{Service: svc, Quantity: req.NumRooms}
		if charge.Amount, ok = mulAmount(svc.Cost, req.NumRooms); !ok {
			return nil, tooLarge(req)
		}
		if result.AdditionalCosts, ok = addAmount(result.AdditionalCosts, charge.Amount); !ok {
			return nil, tooLarge(req)
		}
		result.Charges = append(result.Charges, charge)
	}
	if result.TotalCost, ok = addAmount(result.Subtotal, result.AdditionalCosts); !ok {
		return nil, tooLarge(req)
	}
	return result, nil
}

func tooLarge(req models.ReservationRequest) error {
	return fmt.Errorf("%w: %d rooms cannot be priced without overflow", ErrInvalidCount, req.NumRooms)
}

// mulAmount multiplies two non-negative amounts, reporting false on overflow.
func mulAmount(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// addAmount adds two non-negative amounts, reporting false on overflow.
func addAmount(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// CalculateTotalCost returns only the grand total of a reservation.
func (c *Calculator) CalculateTotalCost(roomTypeIndex, numRooms int, checkIn, checkOut models.Date, services []models.Service) (int, error) {
	result, err := c.Quote(models.ReservationRequest{
		RoomTypeIndex: roomTypeIndex,
		NumRooms:      numRooms,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Services:      services,
	})
	if err != nil {
		return 0, err
	}
	return result.TotalCost, nil
}

func (c *Calculator) check(req models.ReservationRequest) error {
	if err := c.validate.Struct(req); err != nil {
		return classify(err)
	}
	if _, ok := c.catalog.Room(req.RoomTypeIndex); !ok {
		return fmt.Errorf("%w: index %d", ErrInvalidSelection, req.RoomTypeIndex)
	}
	offered := make(map[models.Service]bool, c.catalog.ServiceCount())
	for _, svc := range c.catalog.Services() {
		offered[svc] = true
	}
	for _, svc := range req.Services {
		if !offered[svc] {
			return fmt.Errorf("%w: %q is not offered", ErrInvalidServiceSelection, svc.Name)
		}
	}
	return nil
}

// classify maps the first validator failure onto the rejection taxonomy.
func classify(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	detail := fmt.Sprintf("%s %s", fe.Field(), hotelvalidator.ValidationMessage(fe))
	switch fe.StructField() {
	case "RoomTypeIndex":
		return fmt.Errorf("%w: %s", ErrInvalidSelection, detail)
	case "NumRooms":
		return fmt.Errorf("%w: %s", ErrInvalidCount, detail)
	case "CheckIn":
		return fmt.Errorf("%w: %s", ErrInvalidDateFormat, detail)
	case "CheckOut":
		if fe.Tag() == "after_checkin" {
			return fmt.Errorf("%w: %s", ErrInvalidDateRange, detail)
		}
		return fmt.Errorf("%w: %s", ErrInvalidDateFormat, detail)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidServiceSelection, detail)
	}
}
