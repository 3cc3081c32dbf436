package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"hotel_booking/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestHotelFilter_Empty(t *testing.T) {
	require.Equal(t, bson.M{}, hotelFilter(domain.HotelFilter{}))
}

func TestHotelFilter_CityRegex(t *testing.T) {
	m := hotelFilter(domain.HotelFilter{City: ptr("Mar")})
	re, ok := m["address.city"].(primitive.Regex)
	require.True(t, ok, "city filter must be a regex")
	require.Equal(t, "Mar", re.Pattern)
	require.Equal(t, "i", re.Options)
}

func TestHotelFilter_CityQuotesRegexMeta(t *testing.T) {
	m := hotelFilter(domain.HotelFilter{City: ptr("a.c")})
	re := m["address.city"].(primitive.Regex)
	require.Equal(t, `a\.c`, re.Pattern)
}

func TestHotelFilter_StarsExactAndRange(t *testing.T) {
	m := hotelFilter(domain.HotelFilter{Stars: ptr(4), Active: ptr(true)})
	require.Equal(t, 4, m["starRating"])
	require.Equal(t, true, m["active"])

	m = hotelFilter(domain.HotelFilter{StarsMin: ptr(2), StarsMax: ptr(4)})
	require.Equal(t, bson.M{"$gte": 2, "$lte": 4}, m["starRating"])

	// either bound may be given alone
	m = hotelFilter(domain.HotelFilter{StarsMin: ptr(3)})
	require.Equal(t, bson.M{"$gte": 3}, m["starRating"])
}

func TestRoomFilter(t *testing.T) {
	hotelID := primitive.NewObjectID()
	m, err := roomFilter(domain.RoomFilter{
		HotelID:   ptr(hotelID.Hex()),
		RoomType:  ptr(domain.RoomSuite),
		PriceMin:  ptr(50.0),
		PriceMax:  ptr(200.0),
		Available: ptr(true),
	})
	require.NoError(t, err)
	require.Equal(t, hotelID, m["hotelId"])
	require.Equal(t, domain.RoomSuite, m["roomType"])
	require.Equal(t, true, m["available"])
	require.Equal(t, bson.M{"$gte": 50.0, "$lte": 200.0}, m["pricePerNight"])
}

func TestRoomFilter_MalformedHotelID(t *testing.T) {
	_, err := roomFilter(domain.RoomFilter{HotelID: ptr("nope")})
	require.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestReservationFilter_DatesBoundCheckInOnly(t *testing.T) {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	m := reservationFilter(domain.ReservationFilter{
		Status: ptr(domain.StatusConfirmed),
		From:   &from,
		To:     &to,
	})
	require.Equal(t, domain.StatusConfirmed, m["status"])
	require.Equal(t, bson.M{"$gte": from, "$lte": to}, m["checkInDate"])
	require.NotContains(t, m, "checkOutDate")
}

func TestPageOpts(t *testing.T) {
	opts := pageOpts(domain.Page{Number: 3, Limit: 20})
	require.Equal(t, int64(40), *opts.Skip)
	require.Equal(t, int64(20), *opts.Limit)
}
