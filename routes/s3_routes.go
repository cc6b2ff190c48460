package routes

import (
	"github.com/CodeMyMobile/ttp-play-dates-sub001/controllers"

	"github.com/gorilla/mux"
)

// RegisterS3Routes sets up routes for avatar upload operations
func RegisterS3Routes(router *mux.Router) {
	s3Router := router.PathPrefix("/api/s3").Subrouter()
	s3Router.HandleFunc("/generate-presigned-url", controllers.GenerateAvatarUploadURL).Methods("POST")
	s3Router.HandleFunc("/get-presigned-read-url", controllers.GetAvatarReadURL).Methods("POST")
}
