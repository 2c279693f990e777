package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateTime accepts both RFC3339 timestamps and the shorter
// "2006-01-02T15:04" form used by reservation clients.
type DateTime struct {
	time.Time
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q", s)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.RFC3339) + `"`), nil
}

func (d *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	}
	return fmt.Errorf("cannot scan %T into DateTime", src)
}

func (d *DateTime) scanString(s string) error {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into DateTime", s)
}

func (d DateTime) Value() (driver.Value, error) {
	return d.Time, nil
}

type Owner struct {
	ID        int     `json:"id" db:"id"`
	FirstName string  `json:"first_name" db:"first_name"`
	LastName  string  `json:"last_name" db:"last_name"`
	Email     string  `json:"email" db:"email"`
	Phone     *string `json:"phone,omitempty" db:"phone"`
}

type CreateOwnerRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone"`
}

type UpdateOwnerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
}

type OwnerQuery struct {
	Email string `query:"email"`
}

type Restaurant struct {
	ID      int    `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	OwnerID int    `json:"owner_id" db:"owner_id"`
}

type CreateRestaurantRequest struct {
	Name    string                `json:"name" validate:"required"`
	OwnerID int                   `json:"owner_id" validate:"required,gt=0"`
	Address *CreateAddressPayload `json:"address" validate:"omitempty"`
}

type UpdateRestaurantRequest struct {
	Name    *string `json:"name"`
	OwnerID *int    `json:"owner_id" validate:"omitempty,gt=0"`
}

type RestaurantQuery struct {
	Name    string `query:"name"`
	OwnerID int    `query:"owner_id"`
}

type Address struct {
	ID           int    `json:"id" db:"id"`
	StreetName   string `json:"street_name" db:"street_name"`
	HouseNumber  string `json:"house_number" db:"house_number"`
	PostalCode   string `json:"postal_code" db:"postal_code"`
	City         string `json:"city" db:"city"`
	CountryCode  string `json:"country_code" db:"country_code"`
	RestaurantID int    `json:"restaurant_id" db:"restaurant_id"`
}

// CreateAddressPayload is the address body without a restaurant reference,
// used when the address rides along a restaurant create.
type CreateAddressPayload struct {
	StreetName  string `json:"street_name" validate:"required"`
	HouseNumber string `json:"house_number" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required"`
	City        string `json:"city" validate:"required"`
	CountryCode string `json:"country_code" validate:"required,len=2"`
}

type CreateAddressRequest struct {
	StreetName   string `json:"street_name" validate:"required"`
	HouseNumber  string `json:"house_number" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	City         string `json:"city" validate:"required"`
	CountryCode  string `json:"country_code" validate:"required,len=2"`
	RestaurantID int    `json:"restaurant_id" validate:"required,gt=0"`
}

type UpdateAddressRequest struct {
	StreetName  *string `json:"street_name"`
	HouseNumber *string `json:"house_number"`
	PostalCode  *string `json:"postal_code"`
	City        *string `json:"city"`
	CountryCode *string `json:"country_code" validate:"omitempty,len=2"`
}

type AddressQuery struct {
	City       string `query:"city"`
	PostalCode string `query:"postal_code"`
}

type BusinessHour struct {
	ID                      int    `json:"id" db:"id"`
	Weekday                 int    `json:"weekday" db:"weekday"`
	OpenTime                string `json:"open_time" db:"open_time"`
	OpenForReservationUntil string `json:"open_for_reservation_until" db:"open_for_reservation_until"`
	CloseTime               string `json:"close_time" db:"close_time"`
	RestaurantID            int    `json:"restaurant_id" db:"restaurant_id"`
}

type CreateBusinessHourRequest struct {
	Weekday                 int    `json:"weekday" validate:"min=0,max=6"`
	OpenTime                string `json:"open_time" validate:"required,datetime=15:04"`
	OpenForReservationUntil string `json:"open_for_reservation_until" validate:"required,datetime=15:04"`
	CloseTime               string `json:"close_time" validate:"required,datetime=15:04"`
	RestaurantID            int    `json:"restaurant_id" validate:"required,gt=0"`
}

type UpdateBusinessHourRequest struct {
	Weekday                 *int    `json:"weekday" validate:"omitempty,min=0,max=6"`
	OpenTime                *string `json:"open_time" validate:"omitempty,datetime=15:04"`
	OpenForReservationUntil *string `json:"open_for_reservation_until" validate:"omitempty,datetime=15:04"`
	CloseTime               *string `json:"close_time" validate:"omitempty,datetime=15:04"`
}

type BusinessHourQuery struct {
	RestaurantID int  `query:"restaurant_id"`
	Weekday      *int `query:"weekday"`
}

type Table struct {
	ID           int    `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Seats        int    `json:"seats" db:"seats"`
	MinGuests    int    `json:"min_guests_required_for_reservation" db:"min_guests_required_for_reservation"`
	RestaurantID int    `json:"restaurant_id" db:"restaurant_id"`
}

type CreateTableRequest struct {
	Name         string `json:"name" validate:"required"`
	Seats        int    `json:"seats" validate:"required,gt=0"`
	MinGuests    int    `json:"min_guests_required_for_reservation" validate:"min=0"`
	RestaurantID int    `json:"restaurant_id" validate:"omitempty,gt=0"`
}

type UpdateTableRequest struct {
	Name      *string `json:"name"`
	Seats     *int    `json:"seats" validate:"omitempty,gt=0"`
	MinGuests *int    `json:"min_guests_required_for_reservation" validate:"omitempty,min=0"`
}

type TableQuery struct {
	Name         string `query:"name"`
	RestaurantID int    `query:"restaurant_id"`
	MinSeats     int    `query:"min_seats"`
	MaxSeats     int    `query:"max_seats"`
}

type Reservation struct {
	ID                    int      `json:"id" db:"id"`
	CustomerName          string   `json:"customer_name" db:"customer_name"`
	CustomerEmail         string   `json:"customer_email" db:"customer_email"`
	ReservedFrom          DateTime `json:"reserved_from" db:"reserved_from"`
	ReservedUntil         DateTime `json:"reserved_until" db:"reserved_until"`
	GuestAmount           int      `json:"guest_amount" db:"guest_amount"`
	CustomerPhone         *string  `json:"customer_phone,omitempty" db:"customer_phone"`
	AdditionalInformation *string  `json:"additional_information,omitempty" db:"additional_information"`
	TableID               int      `json:"table_id" db:"table_id"`
}

type CreateReservationRequest struct {
	CustomerName          string   `json:"customer_name" validate:"required"`
	CustomerEmail         string   `json:"customer_email" validate:"required,email"`
	ReservedFrom          DateTime `json:"reserved_from" validate:"required"`
	ReservedUntil         DateTime `json:"reserved_until" validate:"required"`
	GuestAmount           int      `json:"guest_amount" validate:"required,gt=0"`
	CustomerPhone         *string  `json:"customer_phone"`
	AdditionalInformation *string  `json:"additional_information"`
}

type UpdateReservationRequest struct {
	CustomerName          *string   `json:"customer_name"`
	CustomerEmail         *string   `json:"customer_email" validate:"omitempty,email"`
	ReservedFrom          *DateTime `json:"reserved_from"`
	ReservedUntil         *DateTime `json:"reserved_until"`
	GuestAmount           *int      `json:"guest_amount" validate:"omitempty,gt=0"`
	CustomerPhone         *string   `json:"customer_phone"`
	AdditionalInformation *string   `json:"additional_information"`
}

type ReservationQuery struct {
	TableID        int       `query:"table_id"`
	CustomerName   string    `query:"customer_name"`
	CustomerEmail  string    `query:"customer_email"`
	StartingFrom   *DateTime `query:"-"`
	EndingBefore   *DateTime `query:"-"`
	MinGuestAmount int       `query:"min_guest_amount"`
	MaxGuestAmount int       `query:"max_guest_amount"`
}
