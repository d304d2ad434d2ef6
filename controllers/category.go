package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/devmukh/lost_found_system/backend/config"
	"github.com/devmukh/lost_found_system/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchCategories returns all categories sorted by name.
func FetchCategories(ctx context.Context) ([]models.Category, error) {
	findOptions := options.Find().SetSort(bson.M{"name": 1})

	cursor, err := config.CategoryCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func GetCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := FetchCategories(r.Context())
		if err != nil {
			log.Printf("Error fetching categories: %v", err)
			http.Error(w, "Error fetching categories", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Fetched categories",
			Data:    categories,
		})
	}
}
