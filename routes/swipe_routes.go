package routes

import (
	"travelbuddy_server/controllers"
	"travelbuddy_server/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up routes for swipe recording under /api/swipes
func RegisterSwipeRoutes(r *mux.Router, swipeService *services.SwipeService) {
	controller := controllers.NewSwipeController(swipeService)

	swipeRouter := r.PathPrefix("/api/swipes").Subrouter()
	swipeRouter.HandleFunc("", controller.RecordSwipe).Methods("POST")
}
