package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/devmukh/lost_found_system/backend/models"
	"github.com/devmukh/lost_found_system/backend/storage"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxMediaUploadBytes = 10 << 20

func UploadItemMedia(redisClient *redis.Client, media *storage.MediaStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		itemID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(itemID)
		if err != nil {
			log.Printf("Invalid listing ID %s: %v", itemID, err)
			http.Error(w, "Invalid listing ID", http.StatusBadRequest)
			return
		}

		if err := r.ParseMultipartForm(maxMediaUploadBytes); err != nil {
			log.Printf("Invalid multipart form: %v", err)
			http.Error(w, "Invalid multipart form", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			log.Printf("Missing file in upload request: %v", err)
			http.Error(w, "File is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			log.Printf("Failed to read uploaded file: %v", err)
			http.Error(w, "Failed to read file", http.StatusInternalServerError)
			return
		}

		url, err := media.Upload(r.Context(), header.Filename, data)
		if err != nil {
			log.Printf("Media upload failed for listing %s: %v", itemID, err)
			http.Error(w, "Failed to store media", http.StatusInternalServerError)
			return
		}

		if err := AppendItemMedia(r.Context(), objID, userID, url); err != nil {
			if err == ErrNotOwned {
				log.Printf("No listing with ID %s owned by %s, or unauthorized to attach media.", itemID, userID)
				http.Error(w, "No listing found or unauthorized", http.StatusForbidden)
				return
			}
			log.Printf("Failed to attach media URL to listing %s: %v", itemID, err)
			http.Error(w, "Failed to attach media", http.StatusInternalServerError)
			return
		}

		go func() {
			DeleteItemCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Media uploaded",
			Data:    map[string]string{"url": url},
		})
	}
}
