package routes

import (
	"travelbuddy_server/controllers"
	"travelbuddy_server/services"

	"github.com/gorilla/mux"
)

// RegisterBuddyRoutes sets up routes for the swipe deck under /api/buddies
func RegisterBuddyRoutes(r *mux.Router, candidateService *services.CandidateService) {
	controller := controllers.NewBuddyController(candidateService)

	buddyRouter := r.PathPrefix("/api/buddies").Subrouter()
	buddyRouter.HandleFunc("", controller.GetPotentialTravelBuddies).Methods("GET")
}
