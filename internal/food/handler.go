package food

import (
	"encoding/json"
	"net/http"

	"github.com/Ammulu15/transport-food-data-collection/internal/auth"
	"github.com/Ammulu15/transport-food-data-collection/internal/storage"
)

type SubmitRequest struct {
	DietaryPattern string   `json:"dietary_pattern"`
	MealCategory   string   `json:"meal_category"`
	Items          []string `json:"items"`
}

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
	if req.DietaryPattern == "" {
		http.Error(w, "dietary pattern required", http.StatusBadRequest)
		return
	}
	label := req.DietaryPattern
	if req.MealCategory != "" {
		label = req.DietaryPattern + " - " + req.MealCategory
	}
	if err := store.InsertFoodEntries(r.Context(), owner, label, req.Items); err != nil {
		http.Error(w, "failed to save food choices", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"inserted": len(req.Items)})
}

func list(store *storage.Store, w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	entries, err := store.FoodEntriesByOwner(r.Context(), owner)
	if err != nil {
		http.Error(w, "failed to load food choices", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
