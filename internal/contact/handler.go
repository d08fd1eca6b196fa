package contact

import (
	"encoding/json"
	"net/http"

	"github.com/Ammulu15/transport-food-data-collection/internal/storage"
)

type SubmitRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func SubmitHandler(store *storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Message == "" {
			http.Error(w, "name and message required", http.StatusBadRequest)
			return
		}
		if _, err := store.InsertContactMessage(r.Context(), req.Name, req.Message); err != nil {
			http.Error(w, "failed to save message", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"message":"Message received"}`))
	}
}
