package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/CodeMyMobile/ttp-play-dates-sub001/services"

	"github.com/gorilla/mux"
)

// InviteController handles requests related to match invites
type InviteController struct {
	InviteService *services.InviteService
}

// CreateInviteHandler creates a pending invite for a player
func (c *InviteController) CreateInviteHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID   string `json:"matchId"`
		InviterID string `json:"inviterId"`
		InviteeID string `json:"inviteeId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	invite, err := c.InviteService.CreateInvite(context.Background(), request.MatchID, request.InviterID, request.InviteeID)
	if err != nil {
		log.Printf("Failed to create invite: %v", err)
		http.Error(w, "Failed to create invite", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(invite)
}

// UpdateInviteStatusHandler confirms or declines an invite
func (c *InviteController) UpdateInviteStatusHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID   string `json:"matchId"`
		CreatedAt string `json:"createdAt"`
		Status    string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := c.InviteService.UpdateInviteStatus(context.Background(), request.MatchID, request.CreatedAt, request.Status); err != nil {
		log.Printf("Failed to update invite: %v", err)
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Invite status updated successfully"})
}

// GetMatchInvitesHandler lists every invite attached to a match
func (c *InviteController) GetMatchInvitesHandler(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	invites, err := c.InviteService.GetInvitesForMatch(context.Background(), matchID)
	if err != nil {
		log.Printf("Failed to fetch invites for match %s: %v", matchID, err)
		http.Error(w, "Failed to fetch invites", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"invites": invites})
}

// GetPendingInvitesHandler lists a player's open invites
func (c *InviteController) GetPendingInvitesHandler(w http.ResponseWriter, r *http.Request) {
	inviteeID := mux.Vars(r)["inviteeId"]

	invites, err := c.InviteService.GetPendingInvitesForPlayer(context.Background(), inviteeID)
	if err != nil {
		log.Printf("Failed to fetch pending invites for %s: %v", inviteeID, err)
		http.Error(w, "Failed to fetch pending invites", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"invites": invites})
}

// ExpireInvitesHandler flips a match's overdue pending invites to expired
func (c *InviteController) ExpireInvitesHandler(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	expired, err := c.InviteService.ExpireOverdueInvites(context.Background(), matchID)
	if err != nil {
		log.Printf("Failed to expire invites for match %s: %v", matchID, err)
		http.Error(w, "Failed to expire invites", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]int{"expired": expired})
}
