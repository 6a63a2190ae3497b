package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muqry/hotel-reservation/internal/catalog"
	"github.com/muqry/hotel-reservation/internal/models"
)

// DisplayRoomTypes prints the numbered room menu with nightly rates.
func DisplayRoomTypes(w io.Writer, c *catalog.Catalog) {
	_, _ = fmt.Fprintln(w, "\nAvailable Room Types:")
	for i, room := range c.Rooms() {
		_, _ = fmt.Fprintf(w, "%d. %s - %s per night\n", i+1, room.Name, c.Price(room.Rate))
	}
}

// DisplayServices prints the numbered add-on menu.
func DisplayServices(w io.Writer, c *catalog.Catalog) {
	_, _ = fmt.Fprintln(w, "\nAdditional Services:")
	for i, svc := range c.Services() {
		_, _ = fmt.Fprintf(w, "%d. %s - %s per %s\n", i+1, svc.Name, c.Price(svc.Cost), strings.ToLower(svc.Name))
	}
}

// DisplaySummary prints the reservation details block ending with the total.
func DisplaySummary(w io.Writer, c *catalog.Catalog, req models.ReservationRequest, result *models.ReservationResult) {
	_, _ = fmt.Fprint(w, "\nThank you for your reservation.\n\n")
	_, _ = fmt.Fprintln(w, "Reservation details:")
	_, _ = fmt.Fprintf(w, "Room Type: %s\n", result.RoomType.Name)
	_, _ = fmt.Fprintf(w, "Number of Rooms: %d\n", req.NumRooms)
	_, _ = fmt.Fprintf(w, "Check-in Date: %s\n", req.CheckIn.Format())
	_, _ = fmt.Fprintf(w, "Check-out Date: %s\n", req.CheckOut.Format())
	_, _ = fmt.Fprintln(w, "\nAdditional Services:")
	for _, charge := range result.Charges {
		_, _ = fmt.Fprintf(w, "- %s (%d %s): %s\n",
			charge.Service.Name, charge.Quantity, strings.ToLower(charge.Service.Name), c.Price(charge.Amount))
	}
	_, _ = fmt.Fprintf(w, "\nTotal cost: %s\n", c.Price(result.TotalCost))
}

// roomPrompt lists the valid choices, e.g. "(1/2/3)".
func roomPrompt(c *catalog.Catalog) string {
	choices := make([]string, c.RoomCount())
	for i := range choices {
		choices[i] = strconv.Itoa(i + 1)
	}
	return fmt.Sprintf("\nPlease select a room type (%s): ", strings.Join(choices, "/"))
}

func confirmedMessage(c *catalog.Catalog) string {
	return fmt.Sprintf("Reservation confirmed. Thank you for choosing %s. Enjoy your stay with Style.", c.HotelName())
}

const (
	roomCountPrompt     = "\nEnter the number of rooms: "
	checkInPrompt       = "\nEnter your check-in date (DD-MM-YYYY): "
	checkOutPrompt      = "Enter your check-out date (DD-MM-YYYY): "
	addServicesPrompt   = "\nWould you like to add any additional services? (Yes/No): "
	selectServicePrompt = "Please select additional services (separated by commas, e.g., 1,2): "
	confirmPrompt       = "\nWould you like to confirm your reservation? (Yes/No): "
	canceledMessage     = "Reservation canceled."
)
