package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ammulu15/transport-food-data-collection/internal/auth"
	"github.com/Ammulu15/transport-food-data-collection/internal/emissions"
	"github.com/Ammulu15/transport-food-data-collection/internal/storage"
)

type SubmitRequest struct {
	Mode      string  `json:"mode"`
	Quantity  float64 `json:"quantity"`
	Kind      string  `json:"kind"`
	Frequency int     `json:"frequency"`
}

type SubmitResponse struct {
	ID        int64   `json:"id"`
	Mode      string  `json:"mode"`
	Distance  float64 `json:"distance"`
	Emissions float64 `json:"emissions"`
}

// Handler serves transport submissions (POST) and the caller's saved entries
// (GET).
func Handler(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			submit(store, w, r)
		case http.MethodGet:
			list(store, w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func submit(store *storage.Store, w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if req.Kind == "" {
		req.Kind = emissions.KindDistance
	}
	if req.Kind != emissions.KindDistance && req.Kind != emissions.KindTime {
		http.Error(w, "kind must be Distance or Time", http.StatusBadRequest)
		return
	}
	if req.Quantity <= 0 {
		http.Error(w, "quantity must be positive", http.StatusBadRequest)
		return
	}
	if req.Frequency < 0 {
		http.Error(w, "frequency must be positive", http.StatusBadRequest)
		return
	}
	if req.Frequency == 0 {
		req.Frequency = 1
	}

	estimate, err := emissions.Estimate(req.Mode, req.Quantity, req.Kind, req.Frequency)
	if err != nil {
		if errors.Is(err, emissions.ErrUnknownMode) {
			http.Error(w, "invalid transport mode selection", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	distance := emissions.DistanceKm(req.Quantity, req.Kind)
	id, err := store.InsertTransportEntry(r.Context(), owner, req.Mode, distance, estimate)
	if err != nil {
		http.Error(w, "failed to save transport entry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SubmitResponse{
		ID:        id,
		Mode:      req.Mode,
		Distance:  distance,
		Emissions: estimate,
	})
}

func list(store *storage.Store, w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	entries, err := store.TransportEntriesByOwner(r.Context(), owner)
	if err != nil {
		http.Error(w, "failed to load transport entries", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// ModesHandler lists the transport modes the estimator recognizes, for form
// rendering.
func ModesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(emissions.Modes())
	}
}
