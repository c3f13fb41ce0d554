package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"travelbuddy_server/routes"
	"travelbuddy_server/services"
	"travelbuddy_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	var (
		profileStore services.ProfileStore
		swipeStore   services.SwipeStore
		matchStore   services.MatchStore
	)

	if os.Getenv("STORAGE") == "memory" {
		log.Println("Using in-memory storage (STORAGE=memory).")
		store := services.NewMemoryStore()
		profileStore = store
		swipeStore = store
		matchStore = store
	} else {
		log.Println("Initializing DynamoDB client...")
		dynamoClient := services.InitializeDynamoDBClient()
		dynamoService := &services.DynamoService{Client: dynamoClient}
		profileStore = &services.DynamoProfileStore{Dynamo: dynamoService}
		swipeStore = &services.DynamoSwipeStore{Dynamo: dynamoService}
		matchStore = &services.DynamoMatchStore{Dynamo: dynamoService}
		log.Println("DynamoDB client initialized.")
	}

	// Socket server for realtime match notifications
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Printf("❌ Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize Services
	profileService := &services.ProfileService{Profiles: profileStore}
	candidateService := &services.CandidateService{Profiles: profileStore, Swipes: swipeStore}
	matchService := &services.MatchService{
		Profiles: profileStore,
		Swipes:   swipeStore,
		Matches:  matchStore,
		Notifier: &socket.MatchNotifier{Server: socketServer},
	}
	swipeService := &services.SwipeService{
		Profiles: profileStore,
		Swipes:   swipeStore,
		Matches:  matchStore,
		Detector: matchService,
	}
	photoService := services.NewPhotoService()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Travel Buddy")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterBuddyRoutes(r, candidateService)
	routes.RegisterSwipeRoutes(r, swipeService)
	routes.RegisterMatchRoutes(r, matchService)
	routes.RegisterPhotoRoutes(r, photoService)

	// Mount the socket server
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
