package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Read models for the aggregation reports. All of them are derived views
// computed per request; nothing here is persisted.

type StarGroup struct {
	StarRating int      `bson:"starRating" json:"starRating"`
	Count      int      `bson:"count" json:"count"`
	Hotels     []string `bson:"hotels" json:"hotels"`
}

type RoomTypeStats struct {
	RoomType string  `bson:"roomType" json:"roomType"`
	Count    int     `bson:"count" json:"count"`
	AvgPrice float64 `bson:"avgPrice" json:"avgPrice"`
}

type RoomBookingCount struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	RoomNumber       string             `bson:"roomNumber" json:"roomNumber"`
	RoomType         string             `bson:"roomType" json:"roomType"`
	PricePerNight    float64            `bson:"pricePerNight" json:"pricePerNight"`
	ReservationCount int                `bson:"reservationCount" json:"reservationCount"`
}

type StatusStats struct {
	Status  string  `bson:"status" json:"status"`
	Count   int     `bson:"count" json:"count"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

type HotelSummary struct {
	Name       string `bson:"name" json:"name"`
	StarRating int    `bson:"starRating" json:"starRating"`
}

type RoomSummary struct {
	RoomNumber string `bson:"roomNumber" json:"roomNumber"`
	RoomType   string `bson:"roomType" json:"roomType"`
}

type ClientSummary struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// ReservationDetails is the fully joined listing: reservations whose
// hotel or room no longer exists are dropped by the inner join.
type ReservationDetails struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Hotel        HotelSummary       `bson:"hotel" json:"hotel"`
	Room         RoomSummary        `bson:"room" json:"room"`
	Client       ClientSummary      `bson:"client" json:"client"`
	CheckInDate  time.Time          `bson:"checkInDate" json:"checkInDate"`
	CheckOutDate time.Time          `bson:"checkOutDate" json:"checkOutDate"`
	TotalPrice   float64            `bson:"totalPrice" json:"totalPrice"`
	Status       string             `bson:"status" json:"status"`
}
