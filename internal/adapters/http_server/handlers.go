package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

type Handlers struct {
	Cmd *app.Commands
	Q   *app.Queries
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", h.banner)
	s.mux.Route("/api", func(r chi.Router) {
		r.Route("/hotels", func(r chi.Router) {
			r.Post("/", h.createHotel)
			r.Get("/", h.listHotels)
			r.Get("/recherche/avancee", h.searchHotels)
			r.Get("/top/etoiles", h.topHotelsByStars)
			r.Put("/{id}", h.updateHotel)
			r.Delete("/{id}", h.deleteHotel)
		})
		r.Route("/rooms", func(r chi.Router) {
			r.Post("/", h.createRoom)
			r.Get("/", h.listRooms)
			r.Get("/stats/par-type", h.roomStatsByType)
			r.Get("/plus-reservees", h.mostBookedRooms)
			r.Put("/{id}", h.updateRoom)
			r.Delete("/{id}", h.deleteRoom)
		})
		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", h.createReservation)
			r.Get("/", h.listReservations)
			r.Get("/stats", h.reservationStats)
			r.Get("/completes", h.completeReservations)
			r.Put("/{id}", h.updateReservation)
			r.Delete("/{id}", h.deleteReservation)
		})
	})
}

// ---- response plumbing ----

type pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func errBody(msg string) map[string]string { return map[string]string{"error": msg} }

// respondErr is the single mapping point from the error taxonomy to
// status codes. Store failures surface once, message and all, as a 500.
func respondErr(w http.ResponseWriter, err error, entity string) {
	switch {
	case domain.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errBody(err.Error()))
	case errors.Is(err, domain.ErrInvalidID):
		writeJSON(w, http.StatusBadRequest, errBody("malformed "+entity+" id"))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errBody(entity+" not found"))
	default:
		log.Error().Err(err).Str("entity", entity).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errBody(err.Error()))
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody("invalid JSON body"))
		return false
	}
	return true
}

func (h *Handlers) banner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "hotel booking API",
		"version":     "1.0.0",
		"totalRoutes": 19,
	})
}

// ---- hotels ----

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var in app.CreateHotel
	if !decodeBody(w, r, &in) {
		return
	}
	hotel, err := h.Cmd.CreateHotel(r.Context(), in)
	if err != nil {
		respondErr(w, err, "hotel")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "hotel created", "hotel": hotel})
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := pageParam(q)
	if err != nil {
		respondErr(w, err, "hotel")
		return
	}
	stars, err := intParam(q, "etoiles")
	if err != nil {
		respondErr(w, err, "hotel")
		return
	}
	// the plain listing always pins active hotels
	active := true
	f := domain.HotelFilter{
		City:   strParam(q, "ville"),
		Stars:  stars,
		Active: &active,
		Page:   page,
	}
	hotels, total, err := h.Q.ListHotels(r.Context(), f)
	if err != nil {
		respondErr(w, err, "hotel")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"hotels":     hotels,
		"pagination": pagination{Page: page.Number, Limit: page.Limit, Total: total},
	})
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	starsMin, err := intParam(q, "etoilesMin")
	if err != nil {
		respondErr(w, err, "hotel")
		return
	}
	starsMax, err := intParam(q, "etoilesMax")
	if err != nil {
		respondErr(w, err, "hotel")
		return
	}
	f := domain.HotelFilter{
		City:     strParam(q, "ville"),
		StarsMin: starsMin,
		StarsMax: starsMax,
		Active:   searchActive(q.Get("actif")),
	}
	hotels, err := h.Q.SearchHotels(r.Context(), f)
	if err != nil {
		respondErr(w, err, "hotel")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(hotels), "hotels": hotels})
}

// searchActive: absent or "true" pins active=true, "false" pins false,
// any other explicit value drops the filter.
func searchActive(v string) *bool {
	switch v {
	case "", "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	default:
		return nil
	}
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if !decodeBody(w, r, &fields) {
		return
	}
	hotel, err := h.Cmd.UpdateHotel(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		respondErr(w, err, "hotel")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "hotel updated", "hotel": hotel})
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Cmd.DeleteHotel(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err, "hotel")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "hotel deleted"})
}

func (h *Handlers) topHotelsByStars(w http.ResponseWriter, r *http.Request) {
	top, err := h.Q.TopHotelsByStars(r.Context())
	if err != nil {
		respondErr(w, err, "hotel")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"topHotels": top})
}

// ---- rooms ----

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var in app.CreateRoom
	if !decodeBody(w, r, &in) {
		return
	}
	room, err := h.Cmd.CreateRoom(r.Context(), in)
	if err != nil {
		respondErr(w, err, "room")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "room created", "room": room})
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := pageParam(q)
	if err != nil {
		respondErr(w, err, "room")
		return
	}
	priceMin, err := floatParam(q, "prixMin")
	if err != nil {
		respondErr(w, err, "room")
		return
	}
	priceMax, err := floatParam(q, "prixMax")
	if err != nil {
		respondErr(w, err, "room")
		return
	}
	f := domain.RoomFilter{
		HotelID:   strParam(q, "hotelId"),
		RoomType:  strParam(q, "type"),
		PriceMin:  priceMin,
		PriceMax:  priceMax,
		Available: boolParam(q, "disponible"),
		Page:      page,
	}
	rooms, total, err := h.Q.ListRooms(r.Context(), f)
	if err != nil {
		respondErr(w, err, "room")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"rooms":      rooms,
		"pagination": pagination{Page: page.Number, Limit: page.Limit, Total: total},
	})
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if !decodeBody(w, r, &fields) {
		return
	}
	room, err := h.Cmd.UpdateRoom(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		respondErr(w, err, "room")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "room updated", "room": room})
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.Cmd.DeleteRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err, "room")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "room deleted"})
}

func (h *Handlers) roomStatsByType(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Q.RoomStatsByType(r.Context())
	if err != nil {
		respondErr(w, err, "room")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"statistics": stats})
}

func (h *Handlers) mostBookedRooms(w http.ResponseWriter, r *http.Request) {
	top, err := h.Q.MostBookedRooms(r.Context())
	if err != nil {
		respondErr(w, err, "room")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"topRooms": top})
}

// ---- reservations ----

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	var in app.CreateReservation
	if !decodeBody(w, r, &in) {
		return
	}
	res, err := h.Cmd.CreateReservation(r.Context(), in)
	if err != nil {
		respondErr(w, err, "reservation")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "reservation created", "reservation": res})
}

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := pageParam(q)
	if err != nil {
		respondErr(w, err, "reservation")
		return
	}
	from, err := dateParam(q, "dateDebut")
	if err != nil {
		respondErr(w, err, "reservation")
		return
	}
	to, err := dateParam(q, "dateFin")
	if err != nil {
		respondErr(w, err, "reservation")
		return
	}
	f := domain.ReservationFilter{
		Status: strParam(q, "statut"),
		From:   from,
		To:     to,
		Page:   page,
	}
	res, total, err := h.Q.ListReservations(r.Context(), f)
	if err != nil {
		respondErr(w, err, "reservation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reservations": res,
		"pagination":   pagination{Page: page.Number, Limit: page.Limit, Total: total},
	})
}

func (h *Handlers) updateReservation(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if !decodeBody(w, r, &fields) {
		return
	}
	res, err := h.Cmd.UpdateReservation(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		respondErr(w, err, "reservation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "reservation updated", "reservation": res})
}

func (h *Handlers) deleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Cmd.DeleteReservation(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondErr(w, err, "reservation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "reservation deleted"})
}

func (h *Handlers) reservationStats(w http.ResponseWriter, r *http.Request) {
	stats, total, err := h.Q.ReservationStats(r.Context())
	if err != nil {
		respondErr(w, err, "reservation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": stats, "total": total})
}

func (h *Handlers) completeReservations(w http.ResponseWriter, r *http.Request) {
	res, err := h.Q.CompleteReservations(r.Context())
	if err != nil {
		respondErr(w, err, "reservation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"reservations": res, "count": len(res)})
}
