package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hotel_booking/internal/domain"
)

// Request DTOs. Validation happens once, here, per entity kind; handlers
// never inspect payload fields themselves.
//
// `required` on the numeric fields is deliberate: it makes a zero value
// count as missing (capacity=0, pricePerNight=0, totalPrice=0 are all
// rejected). Clients depend on this presence check.

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report violations under the JSON field name, not the Go one
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type AddressInput struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country"`
}

type CreateHotel struct {
	Name        string       `json:"name" validate:"required"`
	Address     AddressInput `json:"address" validate:"required"`
	Phone       string       `json:"phone" validate:"required"`
	Email       string       `json:"email" validate:"required,email"`
	StarRating  int          `json:"starRating" validate:"required,min=1,max=5"`
	Description string       `json:"description"`
	Active      *bool        `json:"active"`
}

type CreateRoom struct {
	HotelID       string  `json:"hotelId" validate:"required"`
	RoomNumber    string  `json:"roomNumber" validate:"required"`
	RoomType      string  `json:"roomType" validate:"required,oneof=Simple Double Suite Family"`
	PricePerNight float64 `json:"pricePerNight" validate:"required,min=0"`
	Available     *bool   `json:"available"`
	Capacity      int     `json:"capacity" validate:"required,min=1"`
}

type ClientInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type CreateReservation struct {
	HotelID      string      `json:"hotelId" validate:"required"`
	RoomID       string      `json:"roomId" validate:"required"`
	Client       ClientInput `json:"client" validate:"required"`
	CheckInDate  string      `json:"checkInDate" validate:"required"`
	CheckOutDate string      `json:"checkOutDate" validate:"required"`
	TotalPrice   float64     `json:"totalPrice" validate:"required,min=0"`
	Status       string      `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// firstViolation collapses validator output to a single message; the
// first failing rule wins.
func firstViolation(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return domain.Invalid("missing required field: " + fieldPath(fe))
		case "email":
			return domain.Invalid("invalid email: " + fieldPath(fe))
		case "oneof":
			return domain.Invalid(fmt.Sprintf("invalid value for %s", fieldPath(fe)))
		case "min", "max":
			return domain.Invalid(fmt.Sprintf("%s out of range", fieldPath(fe)))
		}
		return domain.Invalid("invalid field: " + fieldPath(fe))
	}
	return domain.Invalid(err.Error())
}

// fieldPath strips the DTO type from the namespace: "client.email", not
// "CreateReservation.client.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func parseRef(field, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, domain.Invalid("malformed " + field)
	}
	return id, nil
}

func (in CreateHotel) toDomain(now time.Time) domain.Hotel {
	country := in.Address.Country
	if country == "" {
		country = "France"
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return domain.Hotel{
		Name: in.Name,
		Address: domain.Address{
			Street:     in.Address.Street,
			City:       in.Address.City,
			PostalCode: in.Address.PostalCode,
			Country:    country,
		},
		Phone:       in.Phone,
		Email:       in.Email,
		StarRating:  in.StarRating,
		Description: in.Description,
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (in CreateRoom) toDomain(hotelID primitive.ObjectID, now time.Time) domain.Room {
	available := true
	if in.Available != nil {
		available = *in.Available
	}
	return domain.Room{
		HotelID:       hotelID,
		RoomNumber:    in.RoomNumber,
		RoomType:      in.RoomType,
		PricePerNight: in.PricePerNight,
		Available:     available,
		Capacity:      in.Capacity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (in CreateReservation) toDomain(hotelID, roomID primitive.ObjectID, checkIn, checkOut time.Time, now time.Time) domain.Reservation {
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}
	return domain.Reservation{
		HotelID: hotelID,
		RoomID:  roomID,
		Client: domain.Client{
			Name:  in.Client.Name,
			Email: in.Client.Email,
			Phone: in.Client.Phone,
		},
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   in.TotalPrice,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
