package routes

import (
	"github.com/CodeMyMobile/ttp-play-dates-sub001/controllers"
	"github.com/CodeMyMobile/ttp-play-dates-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterPlayerProfileRoutes registers profile routes under `/api/profiles`
func RegisterPlayerProfileRoutes(router *mux.Router, profileService *services.PlayerProfileService) {
	controller := &controllers.PlayerProfileController{PlayerProfileService: profileService}

	profileRouter := router.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.CreatePlayerProfileHandler).Methods("POST")
	profileRouter.HandleFunc("/{userId}", controller.GetPlayerProfileHandler).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.UpdatePlayerProfileHandler).Methods("PATCH")
}
