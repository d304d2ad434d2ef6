package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/devmukh/lost_found_system/backend/models"
	"github.com/gorilla/mux"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContextKey string

const UserIDKey = ContextKey("userID")

// prepareNewItem stamps the server-assigned fields on a listing being
// created. createdAt always comes from the server clock so a client
// cannot reorder the newest-first index with its own timestamp.
func prepareNewItem(item *models.Listing, ownerID string) {
	item.ID = primitive.NewObjectID()
	item.OwnerID = ownerID
	item.Views = 0
	item.CreatedAt = time.Now()
	if item.MediaURLs == nil {
		item.MediaURLs = []string{}
	}
}

func CreateItem(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		var item models.Listing
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if item.Title == "" {
			http.Error(w, "Title is required", http.StatusBadRequest)
			return
		}
		if !models.ValidKind(item.Kind) {
			log.Printf("Invalid listing kind: %s", item.Kind)
			http.Error(w, "Kind must be 'lost' or 'found'", http.StatusBadRequest)
			return
		}
		if item.Status == "" {
			item.Status = models.StatusActive
		}
		if !models.ValidStatus(item.Status) {
			log.Printf("Invalid listing status: %s", item.Status)
			http.Error(w, "Invalid listing status", http.StatusBadRequest)
			return
		}

		prepareNewItem(&item, userID)

		if err := InsertItem(r.Context(), &item); err != nil {
			log.Printf("Insert failed: %v", err)
			http.Error(w, "Failed to create listing", http.StatusInternalServerError)
			return
		}

		go func() {
			DeleteItemCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Listing created",
			Data:    item,
		})
	}
}

func GetMyItems(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context for GetMyItems")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		status := r.URL.Query().Get("status")
		if status == "" {
			status = models.StatusActive
		}
		if !models.ValidStatus(status) {
			http.Error(w, "Invalid status filter", http.StatusBadRequest)
			return
		}

		cacheKey := generateListingCacheKey(userID, status)

		cachedData, err := redisClient.Get(r.Context(), cacheKey).Result()
		if err == nil {
			log.Printf("Cache Hit for key: %s", cacheKey)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cachedData))
			return
		}
		if err != redis.Nil {
			log.Printf("Redis GET error for key %s: %v", cacheKey, err)
		}

		log.Printf("Cache Miss for key: %s", cacheKey)

		items, err := FetchOwnerItems(r.Context(), userID, status)
		if err != nil {
			log.Printf("Error fetching listings for owner %s: %v", userID, err)
			http.Error(w, "Error fetching listings", http.StatusInternalServerError)
			return
		}
		if items == nil {
			items = []models.ListingView{}
		}

		resultBytes, err := json.Marshal(items)
		if err != nil {
			log.Printf("Failed to serialize listings: %v", err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}

		if err := redisClient.Set(r.Context(), cacheKey, resultBytes, 10*time.Minute).Err(); err != nil {
			log.Printf("Failed to cache response for key %s: %v", cacheKey, err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

func GetItemByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(itemID)
		if err != nil {
			log.Printf("Invalid listing ID %s: %v", itemID, err)
			http.Error(w, "Invalid listing ID", http.StatusBadRequest)
			return
		}

		item, err := FetchItem(r.Context(), objID)
		if err != nil {
			if err == ErrItemNotFound {
				http.Error(w, "Listing not found", http.StatusNotFound)
				return
			}
			log.Printf("Error fetching listing %s: %v", itemID, err)
			http.Error(w, "Error fetching listing", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Fetched listing",
			Data:    item,
		})
	}
}

func UpdateItemStatus(redisClient *redis.Client) http.HandlerFunc {
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

		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			log.Printf("Invalid status payload: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if !models.ValidStatus(body.Status) {
			http.Error(w, "Invalid listing status", http.StatusBadRequest)
			return
		}

		if err := SetItemStatus(r.Context(), objID, userID, body.Status); err != nil {
			if err == ErrNotOwned {
				log.Printf("No listing with ID %s owned by %s, or unauthorized to update.", itemID, userID)
				http.Error(w, "No listing found or unauthorized", http.StatusForbidden)
				return
			}
			log.Printf("Status update failed for listing %s: %v", itemID, err)
			http.Error(w, "Update failed", http.StatusInternalServerError)
			return
		}

		go func() {
			DeleteItemCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Listing status updated",
		})
	}
}

func DeleteItem(redisClient *redis.Client) http.HandlerFunc {
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

		if err := DeleteOwnerItem(r.Context(), objID, userID); err != nil {
			if err == ErrNotOwned {
				log.Printf("No listing with ID %s owned by %s, or unauthorized to delete.", itemID, userID)
				http.Error(w, "No listing found or unauthorized", http.StatusForbidden)
				return
			}
			log.Printf("Delete failed for listing %s: %v", itemID, err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}

		go func() {
			DeleteItemCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Listing deleted successfully",
		})
	}
}
