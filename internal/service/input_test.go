package service

import (
	"testing"
	"time"

	"github.com/muqry/hotel-reservation/internal/catalog"
	"github.com/muqry/hotel-reservation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoomSelection(t *testing.T) {
	c := catalog.Default()
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"2", 1, false},
		{" 3 ", 2, false},
		{"0", 0, true},
		{"4", 0, true},
		{"-1", 0, true},
		{"two", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRoomSelection(tt.input, c)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRoomSelection_FollowsCatalogSize(t *testing.T) {
	c, err := catalog.New(catalog.Definition{
		HotelName: "Tiny",
		Currency:  "RM",
		Rooms:     []models.RoomType{{Name: "Only Room", Rate: 80}},
	})
	require.NoError(t, err)

	_, err = ParseRoomSelection("2", c)
	assert.ErrorIs(t, err, ErrInvalidSelection)

	got, err := ParseRoomSelection("1", c)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestParseRoomCount(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"12", 12, false},
		{" 2\t", 2, false},
		{"+3", 3, false},
		{"0", 0, true},
		{"-2", 0, true},
		{"many", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRoomCount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStayDates(t *testing.T) {
	tests := []struct {
		name    string
		in, out string
		wantIn  models.Date
		wantOut models.Date
		wantErr error
	}{
		{
			name:    "two nights",
			in:      "01-03-2024",
			out:     "03-03-2024",
			wantIn:  models.NewDate(2024, time.March, 1),
			wantOut: models.NewDate(2024, time.March, 3),
		},
		{
			name:    "surrounding whitespace",
			in:      " 31-12-2024 ",
			out:     "01-01-2025\r",
			wantIn:  models.NewDate(2024, time.December, 31),
			wantOut: models.NewDate(2025, time.January, 1),
		},
		{
			name:    "single digit day and month",
			in:      "1-3-2024",
			out:     "3-3-2024",
			wantIn:  models.NewDate(2024, time.March, 1),
			wantOut: models.NewDate(2024, time.March, 3),
		},
		{name: "year zero", in: "01-01-0000", out: "03-01-0000", wantErr: ErrInvalidDateFormat},
		{name: "bad check-in format", in: "2024/03/01", out: "03-03-2024", wantErr: ErrInvalidDateFormat},
		{name: "bad check-out format", in: "01-03-2024", out: "March 3", wantErr: ErrInvalidDateFormat},
		{name: "format checked before range", in: "05-03-2024", out: "2024/03/01", wantErr: ErrInvalidDateFormat},
		{name: "same day", in: "01-03-2024", out: "01-03-2024", wantErr: ErrInvalidDateRange},
		{name: "check-out before check-in", in: "03-03-2024", out: "01-03-2024", wantErr: ErrInvalidDateRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIn, gotOut, err := ParseStayDates(tt.in, tt.out)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, gotIn.IsZero())
				assert.True(t, gotOut.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIn, gotIn)
			assert.Equal(t, tt.wantOut, gotOut)
		})
	}
}

func TestParseServiceSelection(t *testing.T) {
	c := catalog.Default()
	breakfast := models.Service{Name: "Breakfast", Cost: 20}
	wifi := models.Service{Name: "Wifi", Cost: 10}
	parking := models.Service{Name: "Parking", Cost: 15}

	tests := []struct {
		name    string
		input   string
		want    []models.Service
		wantErr bool
	}{
		{"single", "1", []models.Service{breakfast}, false},
		{"pair", "1,2", []models.Service{breakfast, wifi}, false},
		{"spaces", " 1 , 3 ", []models.Service{breakfast, parking}, false},
		{"selection order kept", "3,1", []models.Service{parking, breakfast}, false},
		{"repeat kept once", "2,2,1", []models.Service{wifi, breakfast}, false},
		{"all", "1,2,3", []models.Service{breakfast, wifi, parking}, false},
		{"out of range", "5", nil, true},
		{"zero", "0", nil, true},
		{"one bad token rejects all", "1,5", nil, true},
		{"non numeric", "abc", nil, true},
		{"empty", "", nil, true},
		{"trailing comma", "1,", nil, true},
		{"space separated", "1 2", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseServiceSelection(tt.input, c)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidServiceSelection)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes", true},
		{"Yes", true},
		{"YES", true},
		{" yEs \n", true},
		{"no", false},
		{"y", false},
		{"yes please", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAffirmative(tt.input))
		})
	}
}
