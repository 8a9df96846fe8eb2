package model

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListCars struct {
	Paging `json:",inline"`
	Items  []Car `json:"items"`
}

// CarFilter is pushed down to the store instead of filtering a fully
// fetched list client-side.
type CarFilter struct {
	PriceMin     *float64
	PriceMax     *float64
	CarType      string
	FuelType     string
	Transmission string
	Brand        string
	MinSeats     int
	Page         int
	Size         int
}

type CreateCarRequest struct {
	Name         string  `json:"name" validate:"required"`
	Brand        string  `json:"brand" validate:"required"`
	Model        string  `json:"model" validate:"required"`
	Description  string  `json:"description"`
	PricePerDay  float64 `json:"pricePerDay" validate:"required,gt=0"`
	CarType      string  `json:"carType" validate:"required"`
	Transmission string  `json:"transmission" validate:"required"`
	FuelType     string  `json:"fuelType" validate:"required"`
	Seats        int     `json:"seats" validate:"required,gt=0"`
	Mileage      int     `json:"mileage" validate:"gte=0"`
	HasAC        bool    `json:"hasAc"`
	ImageURL     string  `json:"imageUrl"`
	Images       Images  `json:"images"`
}

// UpdateCarRequest carries the allow-listed mutable car fields. Nil means
// "leave unchanged"; arbitrary column maps are rejected by construction.
type UpdateCarRequest struct {
	Name         *string  `json:"name"`
	Brand        *string  `json:"brand"`
	Model        *string  `json:"model"`
	Description  *string  `json:"description"`
	PricePerDay  *float64 `json:"pricePerDay" validate:"omitempty,gt=0"`
	CarType      *string  `json:"carType"`
	Transmission *string  `json:"transmission"`
	FuelType     *string  `json:"fuelType"`
	Seats        *int     `json:"seats" validate:"omitempty,gt=0"`
	Mileage      *int     `json:"mileage" validate:"omitempty,gte=0"`
	HasAC        *bool    `json:"hasAc"`
	ImageURL     *string  `json:"imageUrl"`
}

type CreateBookingRequest struct {
	CarUid    string `json:"carUid" validate:"required,uuid"`
	StartDate Date   `json:"startDate" validate:"required"`
	EndDate   Date   `json:"endDate" validate:"required"`
	UserUid   string `json:"-" validate:"required"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type PriceResponse struct {
	Days       int     `json:"days"`
	TotalPrice float64 `json:"totalPrice"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"required"`
}

type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=user admin"`
}

type DashboardStats struct {
	TotalCars      int           `json:"totalCars"`
	TotalBookings  int           `json:"totalBookings"`
	TotalProfiles  int           `json:"totalProfiles"`
	Revenue        float64       `json:"revenue"`
	RecentBookings []BookingInfo `json:"recentBookings"`
}
