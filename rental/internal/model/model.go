package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Date is a calendar date without a time-of-day component. It travels as
// YYYY-MM-DD in JSON and maps onto a postgres date column.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return errors.Wrap(err, "date must be YYYY-MM-DD")
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Format(time.DateOnly), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case string:
		t, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return errors.Errorf("cannot scan %T into Date", src)
	}
}

// Images is a jsonb-backed list of image URLs.
type Images []string

func (im Images) Value() (driver.Value, error) {
	if im == nil {
		im = Images{}
	}
	return json.Marshal(im)
}

func (im *Images) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, im)
	case string:
		return json.Unmarshal([]byte(v), im)
	case nil:
		*im = Images{}
		return nil
	default:
		return errors.Errorf("cannot scan %T into Images", src)
	}
}

type Car struct {
	ID           int       `json:"-" db:"id"`
	CarUid       string    `json:"carUid" db:"car_uid"`
	Name         string    `json:"name" db:"name"`
	Brand        string    `json:"brand" db:"brand"`
	Model        string    `json:"model" db:"model"`
	Description  string    `json:"description" db:"description"`
	PricePerDay  float64   `json:"pricePerDay" db:"price_per_day"`
	CarType      string    `json:"carType" db:"car_type"`
	Transmission string    `json:"transmission" db:"transmission"`
	FuelType     string    `json:"fuelType" db:"fuel_type"`
	Seats        int       `json:"seats" db:"seats"`
	Mileage      int       `json:"mileage" db:"mileage"`
	HasAC        bool      `json:"hasAc" db:"has_ac"`
	ImageURL     string    `json:"imageUrl" db:"image_url"`
	Images       Images    `json:"images" db:"images"`
	Rating       float64   `json:"rating" db:"rating"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Booking struct {
	ID         int       `json:"-" db:"id"`
	BookingUid string    `json:"bookingUid" db:"booking_uid"`
	CarUid     string    `json:"carUid" db:"car_uid"`
	UserUid    string    `json:"userUid" db:"user_uid"`
	StartDate  Date      `json:"startDate" db:"start_date"`
	EndDate    Date      `json:"endDate" db:"end_date"`
	TotalPrice float64   `json:"totalPrice" db:"total_price"`
	Status     Status    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// BookingInfo is a booking joined with its car and renter for listings.
type BookingInfo struct {
	Booking
	CarName   string `json:"carName" db:"car_name"`
	CarImage  string `json:"carImage" db:"car_image"`
	UserName  string `json:"userName,omitempty" db:"user_name"`
	UserEmail string `json:"userEmail,omitempty" db:"user_email"`
}

type Profile struct {
	ID           int       `json:"-" db:"id"`
	UserUid      string    `json:"userUid" db:"user_uid"`
	Email        string    `json:"email" db:"email"`
	FullName     string    `json:"fullName" db:"full_name"`
	Role         Role      `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
