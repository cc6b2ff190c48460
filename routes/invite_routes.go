package routes

import (
	"github.com/CodeMyMobile/ttp-play-dates-sub001/controllers"
	"github.com/CodeMyMobile/ttp-play-dates-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterInviteRoutes registers all invite-related routes under `/api/invites`
func RegisterInviteRoutes(router *mux.Router, inviteService *services.InviteService) {
	controller := &controllers.InviteController{InviteService: inviteService}

	inviteRouter := router.PathPrefix("/api/invites").Subrouter()
	inviteRouter.HandleFunc("", controller.CreateInviteHandler).Methods("POST")                         // Create an invite
	inviteRouter.HandleFunc("/update", controller.UpdateInviteStatusHandler).Methods("PUT")             // Confirm or decline an invite
	inviteRouter.HandleFunc("/match/{matchId}", controller.GetMatchInvitesHandler).Methods("GET")       // Invites for a match
	inviteRouter.HandleFunc("/pending/{inviteeId}", controller.GetPendingInvitesHandler).Methods("GET") // Pending invites for a player
	inviteRouter.HandleFunc("/match/{matchId}/expire", controller.ExpireInvitesHandler).Methods("POST") // Expire overdue invites
}
