package controllers

import (
	"log"
	"net/http"

	"travelbuddy_server/services"
)

// PhotoController hands out presigned S3 URLs for profile photos
type PhotoController struct {
	PhotoService *services.PhotoService
}

// NewPhotoController creates a new PhotoController instance
func NewPhotoController(photoService *services.PhotoService) *PhotoController {
	return &PhotoController{PhotoService: photoService}
}

// GetUploadURL generates a presigned URL for uploading a profile photo
func (pc *PhotoController) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()
	fileName := queryParams.Get("fileName")
	fileType := queryParams.Get("fileType")
	if fileName == "" || fileType == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "fileName and fileType are required"})
		return
	}

	url, key, err := pc.PhotoService.GenerateUploadURL(r.Context(), fileName, fileType)
	if err != nil {
		log.Printf("❌ Failed to generate upload URL: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate upload URL"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GetReadURL generates a presigned URL for reading a profile photo
func (pc *PhotoController) GetReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "key is required"})
		return
	}

	url, err := pc.PhotoService.GenerateReadURL(r.Context(), key)
	if err != nil {
		log.Printf("❌ Failed to generate read URL: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate read URL"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
