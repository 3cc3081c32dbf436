package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotel_booking/internal/domain"
)

// Filter builders translate the domain query types into bson documents.
// They are pure so the translation can be tested without a store.

func hotelFilter(f domain.HotelFilter) bson.M {
	m := bson.M{}
	if f.Active != nil {
		m["active"] = *f.Active
	}
	if f.City != nil {
		// substring match, case-insensitive; user input is quoted so it
		// cannot smuggle regex syntax into the store
		m["address.city"] = primitive.Regex{Pattern: regexp.QuoteMeta(*f.City), Options: "i"}
	}
	if f.Stars != nil {
		m["starRating"] = *f.Stars
	}
	if f.StarsMin != nil || f.StarsMax != nil {
		r := bson.M{}
		if f.StarsMin != nil {
			r["$gte"] = *f.StarsMin
		}
		if f.StarsMax != nil {
			r["$lte"] = *f.StarsMax
		}
		m["starRating"] = r
	}
	return m
}

func roomFilter(f domain.RoomFilter) (bson.M, error) {
	m := bson.M{}
	if f.HotelID != nil {
		oid, err := primitive.ObjectIDFromHex(*f.HotelID)
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		m["hotelId"] = oid
	}
	if f.RoomType != nil {
		m["roomType"] = *f.RoomType
	}
	if f.Available != nil {
		m["available"] = *f.Available
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		r := bson.M{}
		if f.PriceMin != nil {
			r["$gte"] = *f.PriceMin
		}
		if f.PriceMax != nil {
			r["$lte"] = *f.PriceMax
		}
		m["pricePerNight"] = r
	}
	return m, nil
}

func reservationFilter(f domain.ReservationFilter) bson.M {
	m := bson.M{}
	if f.Status != nil {
		m["status"] = *f.Status
	}
	// bounds apply to checkInDate only, both inclusive
	if f.From != nil || f.To != nil {
		r := bson.M{}
		if f.From != nil {
			r["$gte"] = *f.From
		}
		if f.To != nil {
			r["$lte"] = *f.To
		}
		m["checkInDate"] = r
	}
	return m
}

func pageOpts(p domain.Page) *options.FindOptions {
	return options.Find().SetSkip(p.Skip()).SetLimit(p.Size())
}
