// Package catalog holds the fixed room and service price lists of the hotel.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/muqry/hotel-reservation/internal/models"
	hotelvalidator "github.com/muqry/hotel-reservation/internal/validator"
)

// Definition is the editable form of a catalog, as found in a TOML file.
type Definition struct {
	HotelName string            `toml:"hotel_name" validate:"required"`
	Currency  string            `toml:"currency" validate:"required"`
	Rooms     []models.RoomType `toml:"rooms" validate:"required,min=1,unique=Name,dive"`
	Services  []models.Service  `toml:"services" validate:"unique=Name,dive"`
}

// Catalog is an immutable price list. Accessors return copies.
type Catalog struct {
	hotelName string
	currency  string
	rooms     []models.RoomType
	services  []models.Service
}

// Default returns the built-in Muqry's Hotel catalog.
func Default() *Catalog {
	c, err := New(Definition{
		HotelName: "Muqry's Hotel",
		Currency:  "RM",
		Rooms: []models.RoomType{
			{Name: "Single Room", Rate: 100},
			{Name: "Double Room", Rate: 150},
			{Name: "Suite", Rate: 250},
		},
		Services: []models.Service{
			{Name: "Breakfast", Cost: 20},
			{Name: "Wifi", Cost: 10},
			{Name: "Parking", Cost: 15},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// New validates def and freezes it into a Catalog.
func New(def Definition) (*Catalog, error) {
	if err := hotelvalidator.New().Struct(def); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", describe(err))
	}
	return &Catalog{
		hotelName: def.HotelName,
		currency:  def.Currency,
		rooms:     append([]models.RoomType(nil), def.Rooms...),
		services:  append([]models.Service(nil), def.Services...),
	}, nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s %s", strings.TrimPrefix(fe.Namespace(), "Definition."), hotelvalidator.ValidationMessage(fe)))
	}
	return errors.New(strings.Join(parts, "; "))
}

func (c *Catalog) HotelName() string { return c.hotelName }
func (c *Catalog) Currency() string  { return c.currency }
func (c *Catalog) RoomCount() int    { return len(c.rooms) }
func (c *Catalog) ServiceCount() int { return len(c.services) }

// Rooms returns a copy of the room types in menu order.
func (c *Catalog) Rooms() []models.RoomType {
	return append([]models.RoomType(nil), c.rooms...)
}

// Services returns a copy of the add-on services in menu order.
func (c *Catalog) Services() []models.Service {
	return append([]models.Service(nil), c.services...)
}

// Room returns the room type at 0-based index i.
func (c *Catalog) Room(i int) (models.RoomType, bool) {
	if i < 0 || i >= len(c.rooms) {
		return models.RoomType{}, false
	}
	return c.rooms[i], true
}

// Service returns the service at 0-based index i.
func (c *Catalog) Service(i int) (models.Service, bool) {
	if i < 0 || i >= len(c.services) {
		return models.Service{}, false
	}
	return c.services[i], true
}

// Price formats an amount with the catalog currency, e.g. RM150.
func (c *Catalog) Price(amount int) string {
	return c.currency + strconv.Itoa(amount)
}

// Definition returns an editable copy of the catalog.
func (c *Catalog) Definition() Definition {
	return Definition{
		HotelName: c.hotelName,
		Currency:  c.currency,
		Rooms:     c.Rooms(),
		Services:  c.Services(),
	}
}
