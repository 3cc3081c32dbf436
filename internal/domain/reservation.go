package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type Client struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Reservation holds opaque references to its hotel and room. There is no
// overlap check between reservations for the same room and date range,
// and checkOutDate is never compared against checkInDate.
type Reservation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	HotelID      primitive.ObjectID `bson:"hotelId" json:"hotelId"`
	RoomID       primitive.ObjectID `bson:"roomId" json:"roomId"`
	Client       Client             `bson:"client" json:"client"`
	CheckInDate  time.Time          `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate time.Time          `bson:"checkOutDate" json:"checkOutDate"`
	TotalPrice   float64            `bson:"totalPrice" json:"totalPrice"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
