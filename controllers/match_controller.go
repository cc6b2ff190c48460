package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/CodeMyMobile/ttp-play-dates-sub001/services"

	"github.com/gorilla/mux"
)

// MatchController handles requests related to matches
type MatchController struct {
	MatchService *services.MatchService
}

// CreateMatchHandler creates a new match hosted by the requester
func (c *MatchController) CreateMatchHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateMatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	match, err := c.MatchService.CreateMatch(context.Background(), input)
	if err != nil {
		log.Printf("Failed to create match: %v", err)
		http.Error(w, "Failed to create match", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(match)
}

// GetMatchDetailHandler returns a match with its occupancy view. The
// optional viewerId query parameter adds joined/host flags for that player.
func (c *MatchController) GetMatchDetailHandler(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	viewerID := r.URL.Query().Get("viewerId")

	detail, err := c.MatchService.GetMatchDetail(context.Background(), matchID, viewerID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			http.Error(w, "Match not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to load match %s: %v", matchID, err)
		http.Error(w, "Failed to load match", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detail)
}

// ListUpcomingMatchesHandler returns upcoming matches with occupancy
// summaries and low-occupancy alerts
func (c *MatchController) ListUpcomingMatchesHandler(w http.ResponseWriter, r *http.Request) {
	viewerID := r.URL.Query().Get("viewerId")

	matches, err := c.MatchService.ListUpcomingMatches(context.Background(), viewerID)
	if err != nil {
		log.Printf("Failed to list upcoming matches: %v", err)
		http.Error(w, "Failed to list matches", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"matches": matches})
}

// JoinMatchHandler seats a player in the match
func (c *MatchController) JoinMatchHandler(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	var request struct {
		PlayerID string `json:"playerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := c.MatchService.JoinMatch(context.Background(), matchID, request.PlayerID); err != nil {
		log.Printf("Failed to join match %s: %v", matchID, err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Joined match successfully"})
}

// LeaveMatchHandler marks a player as having left the match
func (c *MatchController) LeaveMatchHandler(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	var request struct {
		PlayerID string `json:"playerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := c.MatchService.LeaveMatch(context.Background(), matchID, request.PlayerID); err != nil {
		log.Printf("Failed to leave match %s: %v", matchID, err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Left match successfully"})
}

// CancelMatchHandler cancels the match on the host's request
func (c *MatchController) CancelMatchHandler(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]
	var request struct {
		RequesterID string `json:"requesterId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := c.MatchService.CancelMatch(context.Background(), matchID, request.RequesterID); err != nil {
		log.Printf("Failed to cancel match %s: %v", matchID, err)
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Match cancelled"})
}
