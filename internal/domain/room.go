package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoomSimple = "Simple"
	RoomDouble = "Double"
	RoomSuite  = "Suite"
	RoomFamily = "Family"
)

// Room references its hotel by id only; the reference is stored opaque
// and never checked against the hotels collection.
type Room struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	HotelID       primitive.ObjectID `bson:"hotelId" json:"hotelId"`
	RoomNumber    string             `bson:"roomNumber" json:"roomNumber"`
	RoomType      string             `bson:"roomType" json:"roomType"`
	PricePerNight float64            `bson:"pricePerNight" json:"pricePerNight"`
	Available     bool               `bson:"available" json:"available"`
	Capacity      int                `bson:"capacity" json:"capacity"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
