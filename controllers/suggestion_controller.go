package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/CodeMyMobile/ttp-play-dates-sub001/services"

	"github.com/gorilla/mux"
)

// SuggestionController handles recent-partner suggestion requests
type SuggestionController struct {
	SuggestionService *services.SuggestionService
}

// GetRecentPartnersHandler returns the player's recently-played partners,
// ranked by most recent shared match
func (c *SuggestionController) GetRecentPartnersHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	partners, err := c.SuggestionService.GetRecentPartners(context.Background(), userID, limit)
	if err != nil {
		log.Printf("Failed to build partner suggestions for %s: %v", userID, err)
		http.Error(w, "Failed to build suggestions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"partners": partners})
}
