package routes

import (
	"github.com/devmukh/lost_found_system/backend/controllers"
	"github.com/devmukh/lost_found_system/backend/middleware"
	"github.com/devmukh/lost_found_system/backend/storage"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func Routes(router *mux.Router, client *mongo.Client, redisClient *redis.Client, media *storage.MediaStorage) {
	// Auth routes
	router.HandleFunc("/register", controllers.RegisterUser(client)).Methods("POST")
	router.HandleFunc("/login", controllers.LoginUser(client)).Methods("POST")

	// Public reads
	router.HandleFunc("/categories", controllers.GetCategories()).Methods("GET")
	router.HandleFunc("/items/{id}", controllers.GetItemByID()).Methods("GET")

	// Routes that require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.AuthMiddleware)

	// Listing routes
	authenticated.HandleFunc("/items", controllers.CreateItem(redisClient)).Methods("POST")
	authenticated.HandleFunc("/items/mine", controllers.GetMyItems(redisClient)).Methods("GET")
	authenticated.HandleFunc("/items/{id}/status", controllers.UpdateItemStatus(redisClient)).Methods("PATCH")
	authenticated.HandleFunc("/items/{id}/media", controllers.UploadItemMedia(redisClient, media)).Methods("POST")
	authenticated.HandleFunc("/items/{id}", controllers.DeleteItem(redisClient)).Methods("DELETE")
}
