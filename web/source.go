package web

import (
	"context"

	"github.com/devmukh/lost_found_system/backend/controllers"
	"github.com/devmukh/lost_found_system/backend/models"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListingSource is what the pages need from the listing store.
// Implementations report missing or foreign rows with
// controllers.ErrItemNotFound and controllers.ErrNotOwned.
type ListingSource interface {
	ListByOwner(ctx context.Context, ownerID, status string) ([]models.ListingView, error)
	Get(ctx context.Context, id string) (*models.ListingView, error)
	Create(ctx context.Context, item *models.Listing) error
	SetStatus(ctx context.Context, id, ownerID, status string) error
	Delete(ctx context.Context, id, ownerID string) error
	Categories(ctx context.Context) ([]models.Category, error)
}

// mongoSource serves the pages from the same Mongo collections the API
// uses, invalidating the Redis listing cache after writes.
type mongoSource struct {
	redis *redis.Client
}

func NewMongoSource(redisClient *redis.Client) ListingSource {
	return &mongoSource{redis: redisClient}
}

func (m *mongoSource) ListByOwner(ctx context.Context, ownerID, status string) ([]models.ListingView, error) {
	return controllers.FetchOwnerItems(ctx, ownerID, status)
}

func (m *mongoSource) Get(ctx context.Context, id string) (*models.ListingView, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, controllers.ErrItemNotFound
	}
	return controllers.FetchItem(ctx, objID)
}

func (m *mongoSource) Create(ctx context.Context, item *models.Listing) error {
	if err := controllers.InsertItem(ctx, item); err != nil {
		return err
	}
	go controllers.DeleteItemCache(m.redis)
	return nil
}

func (m *mongoSource) SetStatus(ctx context.Context, id, ownerID, status string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return controllers.ErrItemNotFound
	}
	if err := controllers.SetItemStatus(ctx, objID, ownerID, status); err != nil {
		return err
	}
	go controllers.DeleteItemCache(m.redis)
	return nil
}

func (m *mongoSource) Categories(ctx context.Context) ([]models.Category, error) {
	return controllers.FetchCategories(ctx)
}

func (m *mongoSource) Delete(ctx context.Context, id, ownerID string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return controllers.ErrItemNotFound
	}
	if err := controllers.DeleteOwnerItem(ctx, objID, ownerID); err != nil {
		return err
	}
	go controllers.DeleteItemCache(m.redis)
	return nil
}
