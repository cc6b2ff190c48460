package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/CodeMyMobile/ttp-play-dates-sub001/models"
	"github.com/CodeMyMobile/ttp-play-dates-sub001/services"

	"github.com/gorilla/mux"
)

// PlayerProfileController handles requests related to player profiles
type PlayerProfileController struct {
	PlayerProfileService *services.PlayerProfileService
}

// CreatePlayerProfileHandler stores a new player profile
func (c *PlayerProfileController) CreatePlayerProfileHandler(w http.ResponseWriter, r *http.Request) {
	var profile models.PlayerProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	created, err := c.PlayerProfileService.AddPlayerProfile(context.Background(), profile)
	if err != nil {
		log.Printf("Failed to add profile: %v", err)
		http.Error(w, "Failed to create profile", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetPlayerProfileHandler retrieves a player profile by ID
func (c *PlayerProfileController) GetPlayerProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.PlayerProfileService.GetPlayerProfile(context.Background(), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch profile %s: %v", userID, err)
		http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpdatePlayerProfileHandler applies a partial update to a player profile
func (c *PlayerProfileController) UpdatePlayerProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	delete(updates, "userId") // the key is immutable

	profile, err := c.PlayerProfileService.UpdatePlayerProfile(context.Background(), userID, updates)
	if err != nil {
		log.Printf("Failed to update profile %s: %v", userID, err)
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
