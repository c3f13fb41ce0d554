package routes

import (
	"travelbuddy_server/controllers"
	"travelbuddy_server/services"

	"github.com/gorilla/mux"
)

// RegisterPhotoRoutes sets up routes for profile photo URLs under /api/photos
func RegisterPhotoRoutes(r *mux.Router, photoService *services.PhotoService) {
	controller := controllers.NewPhotoController(photoService)

	photoRouter := r.PathPrefix("/api/photos").Subrouter()
	photoRouter.HandleFunc("/upload-url", controller.GetUploadURL).Methods("GET")
	photoRouter.HandleFunc("/read-url", controller.GetReadURL).Methods("GET")
}
