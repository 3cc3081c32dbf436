package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

const (
	colHotels       = "hotels"
	colRooms        = "rooms"
	colReservations = "reservations"
)

// Connect dials the store and verifies it with a ping; callers treat a
// failure here as fatal.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}

// ---- shared plumbing ----

func insertOne[T any](ctx context.Context, c *mongo.Collection, doc T, setID func(*T, primitive.ObjectID)) (T, error) {
	res, err := c.InsertOne(ctx, doc)
	observability.ObserveStore(c.Name(), "insert", err)
	if err != nil {
		var zero T
		return zero, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		setID(&doc, oid)
	}
	return doc, nil
}

func findPage[T any](ctx context.Context, c *mongo.Collection, filter bson.M, page domain.Page) ([]T, int64, error) {
	cur, err := c.Find(ctx, filter, pageOpts(page))
	observability.ObserveStore(c.Name(), "find", err)
	if err != nil {
		return nil, 0, err
	}
	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	total, err := c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// updateByID applies a shallow $set merge and bumps updatedAt. Returns
// the post-update document.
func updateByID[T any](ctx context.Context, c *mongo.Collection, id string, fields map[string]any) (T, error) {
	var zero T
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, domain.ErrInvalidID
	}
	update := bson.M{"$currentDate": bson.M{"updatedAt": true}}
	if len(fields) > 0 {
		update["$set"] = fields
	}
	res := c.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	var out T
	err = res.Decode(&out)
	observability.ObserveStore(c.Name(), "update", err)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, domain.ErrNotFound
		}
		return zero, err
	}
	return out, nil
}

func deleteByID(ctx context.Context, c *mongo.Collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	res, err := c.DeleteOne(ctx, bson.M{"_id": oid})
	observability.ObserveStore(c.Name(), "delete", err)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func aggregate[T any](ctx context.Context, c *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cur, err := c.Aggregate(ctx, pipeline)
	observability.ObserveStore(c.Name(), "aggregate", err)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ---- hotels ----

type HotelRepo struct{ c *mongo.Collection }

func NewHotelRepo(db *mongo.Database) *HotelRepo {
	return &HotelRepo{c: db.Collection(colHotels)}
}

func (r *HotelRepo) Insert(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	return insertOne(ctx, r.c, h, func(d *domain.Hotel, id primitive.ObjectID) { d.ID = id })
}

func (r *HotelRepo) List(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, int64, error) {
	return findPage[domain.Hotel](ctx, r.c, hotelFilter(f), f.Page)
}

// Search is the advanced-search read: same filter language, no
// pagination.
func (r *HotelRepo) Search(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, error) {
	cur, err := r.c.Find(ctx, hotelFilter(f))
	observability.ObserveStore(r.c.Name(), "find", err)
	if err != nil {
		return nil, err
	}
	out := []domain.Hotel{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *HotelRepo) Update(ctx context.Context, id string, fields map[string]any) (domain.Hotel, error) {
	return updateByID[domain.Hotel](ctx, r.c, id, fields)
}

func (r *HotelRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.c, id)
}

func (r *HotelRepo) TopByStars(ctx context.Context) ([]domain.StarGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":    "$starRating",
			"count":  bson.M{"$sum": 1},
			"hotels": bson.M{"$push": "$name"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": -1}}},
		{{Key: "$limit", Value: 5}},
		{{Key: "$project", Value: bson.M{
			"starRating": "$_id",
			"count":      1,
			"hotels":     1,
			"_id":        0,
		}}},
	}
	return aggregate[domain.StarGroup](ctx, r.c, pipeline)
}

// ---- rooms ----

type RoomRepo struct{ c *mongo.Collection }

func NewRoomRepo(db *mongo.Database) *RoomRepo {
	return &RoomRepo{c: db.Collection(colRooms)}
}

func (r *RoomRepo) Insert(ctx context.Context, room domain.Room) (domain.Room, error) {
	return insertOne(ctx, r.c, room, func(d *domain.Room, id primitive.ObjectID) { d.ID = id })
}

func (r *RoomRepo) List(ctx context.Context, f domain.RoomFilter) ([]domain.Room, int64, error) {
	filter, err := roomFilter(f)
	if err != nil {
		return nil, 0, err
	}
	return findPage[domain.Room](ctx, r.c, filter, f.Page)
}

func (r *RoomRepo) Update(ctx context.Context, id string, fields map[string]any) (domain.Room, error) {
	return updateByID[domain.Room](ctx, r.c, id, fields)
}

func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.c, id)
}

func (r *RoomRepo) StatsByType(ctx context.Context) ([]domain.RoomTypeStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":      "$roomType",
			"count":    bson.M{"$sum": 1},
			"avgPrice": bson.M{"$avg": "$pricePerNight"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$project", Value: bson.M{
			"roomType": "$_id",
			"count":    1,
			"avgPrice": bson.M{"$round": bson.A{"$avgPrice", 2}},
			"_id":      0,
		}}},
	}
	return aggregate[domain.RoomTypeStats](ctx, r.c, pipeline)
}

func (r *RoomRepo) MostBooked(ctx context.Context) ([]domain.RoomBookingCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         colReservations,
			"localField":   "_id",
			"foreignField": "roomId",
			"as":           "reservations",
		}}},
		{{Key: "$project", Value: bson.M{
			"roomNumber":       1,
			"roomType":         1,
			"pricePerNight":    1,
			"reservationCount": bson.M{"$size": "$reservations"},
		}}},
		{{Key: "$sort", Value: bson.M{"reservationCount": -1}}},
		{{Key: "$limit", Value: 10}},
	}
	return aggregate[domain.RoomBookingCount](ctx, r.c, pipeline)
}

// ---- reservations ----

type ReservationRepo struct{ c *mongo.Collection }

func NewReservationRepo(db *mongo.Database) *ReservationRepo {
	return &ReservationRepo{c: db.Collection(colReservations)}
}

func (r *ReservationRepo) Insert(ctx context.Context, res domain.Reservation) (domain.Reservation, error) {
	return insertOne(ctx, r.c, res, func(d *domain.Reservation, id primitive.ObjectID) { d.ID = id })
}

func (r *ReservationRepo) List(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, int64, error) {
	return findPage[domain.Reservation](ctx, r.c, reservationFilter(f), f.Page)
}

func (r *ReservationRepo) Update(ctx context.Context, id string, fields map[string]any) (domain.Reservation, error) {
	return updateByID[domain.Reservation](ctx, r.c, id, fields)
}

func (r *ReservationRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.c, id)
}

func (r *ReservationRepo) StatsByStatus(ctx context.Context) ([]domain.StatusStats, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":     "$status",
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$totalPrice"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$project", Value: bson.M{
			"status":  "$_id",
			"count":   1,
			"revenue": bson.M{"$round": bson.A{"$revenue", 2}},
			"_id":     0,
		}}},
	}
	stats, err := aggregate[domain.StatusStats](ctx, r.c, pipeline)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return stats, total, nil
}

// ListComplete inner-joins each reservation with its hotel and room;
// reservations pointing at a deleted hotel or room drop out at the
// $unwind stages.
func (r *ReservationRepo) ListComplete(ctx context.Context) ([]domain.ReservationDetails, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         colHotels,
			"localField":   "hotelId",
			"foreignField": "_id",
			"as":           "hotel",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         colRooms,
			"localField":   "roomId",
			"foreignField": "_id",
			"as":           "room",
		}}},
		{{Key: "$unwind", Value: "$hotel"}},
		{{Key: "$unwind", Value: "$room"}},
		{{Key: "$project", Value: bson.M{
			"hotel.name":       1,
			"hotel.starRating": 1,
			"room.roomNumber":  1,
			"room.roomType":    1,
			"client.name":      1,
			"client.email":     1,
			"checkInDate":      1,
			"checkOutDate":     1,
			"totalPrice":       1,
			"status":           1,
		}}},
		{{Key: "$sort", Value: bson.M{"checkInDate": -1}}},
	}
	return aggregate[domain.ReservationDetails](ctx, r.c, pipeline)
}
