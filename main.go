package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/devmukh/lost_found_system/backend/config"
	"github.com/devmukh/lost_found_system/backend/routes"
	"github.com/devmukh/lost_found_system/backend/storage"
	"github.com/devmukh/lost_found_system/backend/web"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
}

func setupRouter(client *mongo.Client, redisClient *redis.Client, media *storage.MediaStorage) (*mux.Router, error) {
	router := mux.NewRouter()
	routes.Routes(router, client, redisClient, media)

	pages, err := web.NewServer(web.NewMongoSource(redisClient))
	if err != nil {
		return nil, err
	}
	pages.Register(router)

	return router, nil
}

func mediaStorageFromEnv() (*storage.MediaStorage, error) {
	useSSL, err := strconv.ParseBool(os.Getenv("MINIO_USE_SSL"))
	if err != nil {
		useSSL = false
	}
	return storage.NewMediaStorage(
		os.Getenv("MINIO_ENDPOINT"),
		os.Getenv("MINIO_ACCESS_KEY"),
		os.Getenv("MINIO_SECRET_KEY"),
		os.Getenv("MINIO_BUCKET"),
		useSSL,
	)
}

func main() {
	loadEnv()

	client, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			log.Fatalf("Error closing MongoDB connection: %v", err)
		}
		log.Println("MongoDB connection closed")
	}()

	config.InitCollections(client)
	config.SeedCategories(client)

	redisClient := config.InitRedis()

	media, err := mediaStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	router, err := setupRouter(client, redisClient, media)
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	signal.Notify(sigCh, os.Kill)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
