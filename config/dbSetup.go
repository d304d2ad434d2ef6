package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection     *mongo.Collection
	ItemCollection     *mongo.Collection
	CategoryCollection *mongo.Collection
)

func ConnectDB() (*mongo.Client, error) {
	MONGO_URI := os.Getenv("MONGOURI")
	if MONGO_URI == "" {
		return nil, fmt.Errorf("MONGOURI not set in environment")
	}

	clientOptions := options.Client().ApplyURI(MONGO_URI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	log.Println("Connected to MongoDB")
	return client, nil
}

func InitCollections(client *mongo.Client) {
	dbName := os.Getenv("DB")
	UserCollection = client.Database(dbName).Collection("users")
	ItemCollection = client.Database(dbName).Collection("items")
	CategoryCollection = client.Database(dbName).Collection("categories")
}

// SeedCategories inserts the default category names once.
func SeedCategories(client *mongo.Client) {
	defaults := []struct{ name, slug string }{
		{"Documents", "documents"},
		{"Electronics", "electronics"},
		{"Keys", "keys"},
		{"Bags & Wallets", "bags-wallets"},
		{"Pets", "pets"},
		{"Jewelry", "jewelry"},
		{"Clothing", "clothing"},
		{"Other", "other"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, c := range defaults {
		filter := bson.M{"slug": c.slug}
		update := bson.M{"$setOnInsert": bson.M{"name": c.name, "slug": c.slug}}
		opts := options.Update().SetUpsert(true)
		if _, err := CategoryCollection.UpdateOne(ctx, filter, update, opts); err != nil {
			log.Printf("Error seeding category %s: %v", c.slug, err)
		}
	}
}

func CloseDBConnection(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Fatalf("Error closing database connection: %v", err)
	}
	log.Println("MongoDB connection closed")
}
