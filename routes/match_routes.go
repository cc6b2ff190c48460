package routes

import (
	"github.com/CodeMyMobile/ttp-play-dates-sub001/controllers"
	"github.com/CodeMyMobile/ttp-play-dates-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes registers all match-related routes under `/api/matches`
func RegisterMatchRoutes(router *mux.Router, matchService *services.MatchService) {
	controller := &controllers.MatchController{MatchService: matchService}

	matchRouter := router.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("", controller.CreateMatchHandler).Methods("POST")                   // Create a match
	matchRouter.HandleFunc("/upcoming", controller.ListUpcomingMatchesHandler).Methods("GET")   // List upcoming matches
	matchRouter.HandleFunc("/{matchId}", controller.GetMatchDetailHandler).Methods("GET")       // Get match detail with roster
	matchRouter.HandleFunc("/{matchId}/join", controller.JoinMatchHandler).Methods("POST")      // Join a match
	matchRouter.HandleFunc("/{matchId}/leave", controller.LeaveMatchHandler).Methods("POST")    // Leave a match
	matchRouter.HandleFunc("/{matchId}/cancel", controller.CancelMatchHandler).Methods("POST")  // Cancel a match (host only)
}
