package main

// Built-in sample set. Rooms and reservations are attached to their
// hotel after creation, once the generated ids are known.

type seedRoom struct {
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
	Capacity      int     `json:"capacity"`

	reservations []seedReservation
}

type seedClient struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type seedReservation struct {
	Client       seedClient `json:"client"`
	CheckInDate  string     `json:"checkInDate"`
	CheckOutDate string     `json:"checkOutDate"`
	TotalPrice   float64    `json:"totalPrice"`
	Status       string     `json:"status,omitempty"`
}

type seedAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country,omitempty"`
}

type seedHotel struct {
	Name        string      `json:"name"`
	Address     seedAddress `json:"address"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	StarRating  int         `json:"starRating"`
	Description string      `json:"description,omitempty"`

	rooms []seedRoom
}

var sampleHotels = []seedHotel{
	{
		Name:        "Le Grand Pavois",
		Address:     seedAddress{Street: "12 quai des Belges", City: "Marseille", PostalCode: "13001"},
		Phone:       "+33 4 91 00 00 01",
		Email:       "contact@grandpavois.fr",
		StarRating:  4,
		Description: "Vue sur le Vieux-Port.",
		rooms: []seedRoom{
			{RoomNumber: "101", RoomType: "Double", PricePerNight: 120, Capacity: 2,
				reservations: []seedReservation{
					{
						Client:       seedClient{Name: "Awa Diallo", Email: "awa.diallo@example.com", Phone: "+33 6 11 22 33 44"},
						CheckInDate:  "2026-09-10",
						CheckOutDate: "2026-09-14",
						TotalPrice:   480,
						Status:       "confirmed",
					},
				}},
			{RoomNumber: "102", RoomType: "Simple", PricePerNight: 75, Capacity: 1},
			{RoomNumber: "301", RoomType: "Suite", PricePerNight: 290, Capacity: 3},
		},
	},
	{
		Name:       "Auberge des Vignes",
		Address:    seedAddress{Street: "3 rue du Pressoir", City: "Beaune", PostalCode: "21200"},
		Phone:      "+33 3 80 00 00 02",
		Email:      "reception@aubergedesvignes.fr",
		StarRating: 3,
		rooms: []seedRoom{
			{RoomNumber: "1", RoomType: "Double", PricePerNight: 95, Capacity: 2},
			{RoomNumber: "2", RoomType: "Family", PricePerNight: 140, Capacity: 5,
				reservations: []seedReservation{
					{
						Client:       seedClient{Name: "Marc Lefevre", Email: "marc.lefevre@example.com", Phone: "+33 6 55 66 77 88"},
						CheckInDate:  "2026-10-02",
						CheckOutDate: "2026-10-05",
						TotalPrice:   420,
					},
				}},
		},
	},
	{
		Name:        "Hôtel de la Gare",
		Address:     seedAddress{Street: "1 place de la Gare", City: "Lille", PostalCode: "59000"},
		Phone:       "+33 3 20 00 00 03",
		Email:       "info@hoteldelagare-lille.fr",
		StarRating:  2,
		Description: "Pratique pour une nuit.",
		rooms: []seedRoom{
			{RoomNumber: "12", RoomType: "Simple", PricePerNight: 55, Capacity: 1},
		},
	},
}
