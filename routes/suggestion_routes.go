package routes

import (
	"github.com/CodeMyMobile/ttp-play-dates-sub001/controllers"
	"github.com/CodeMyMobile/ttp-play-dates-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterSuggestionRoutes registers partner suggestion routes under `/api/players`
func RegisterSuggestionRoutes(router *mux.Router, suggestionService *services.SuggestionService) {
	controller := &controllers.SuggestionController{SuggestionService: suggestionService}

	suggestionRouter := router.PathPrefix("/api/players").Subrouter()
	suggestionRouter.HandleFunc("/{userId}/partners", controller.GetRecentPartnersHandler).Methods("GET") // Recent partner suggestions
}
