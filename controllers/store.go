package controllers

import (
	"context"
	"errors"

	"github.com/devmukh/lost_found_system/backend/config"
	"github.com/devmukh/lost_found_system/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrItemNotFound = errors.New("listing not found")
	ErrNotOwned     = errors.New("listing not found or not owned by user")
)

// FetchOwnerItems returns the owner's listings with the given status,
// newest first, with the category name joined in.
func FetchOwnerItems(ctx context.Context, ownerID, status string) ([]models.ListingView, error) {
	pipeline := mongo.Pipeline{
		{
			{Key: "$match", Value: bson.M{"ownerId": ownerID, "status": status}},
		},
		{
			{Key: "$sort", Value: bson.M{"createdAt": -1}},
		},
		{
			{Key: "$lookup", Value: bson.M{
				"from":         "categories",
				"localField":   "categoryId",
				"foreignField": "_id",
				"as":           "category",
			}},
		},
		{
			{Key: "$addFields", Value: bson.M{
				"categoryName": bson.M{"$first": "$category.name"},
			}},
		},
		{
			{Key: "$project", Value: bson.M{"category": 0}},
		},
	}

	cursor, err := config.ItemCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.ListingView
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchItem loads one listing by id, bumping its view count.
func FetchItem(ctx context.Context, id primitive.ObjectID) (*models.ListingView, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.Listing
	err := config.ItemCollection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	view := models.ListingView{Listing: item}
	if !item.CategoryID.IsZero() {
		var category models.Category
		err := config.CategoryCollection.FindOne(ctx, bson.M{"_id": item.CategoryID}).Decode(&category)
		if err == nil {
			view.CategoryName = category.Name
		} else if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}
	return &view, nil
}

func InsertItem(ctx context.Context, item *models.Listing) error {
	_, err := config.ItemCollection.InsertOne(ctx, item)
	return err
}

// SetItemStatus updates the lifecycle status of a listing owned by ownerID.
func SetItemStatus(ctx context.Context, id primitive.ObjectID, ownerID, status string) error {
	filter := bson.M{"_id": id, "ownerId": ownerID}
	update := bson.M{"$set": bson.M{"status": status}}

	res, err := config.ItemCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotOwned
	}
	return nil
}

// DeleteOwnerItem deletes a listing scoped by both id and owner, so one
// user cannot remove another user's row.
func DeleteOwnerItem(ctx context.Context, id primitive.ObjectID, ownerID string) error {
	filter := bson.M{"_id": id, "ownerId": ownerID}

	res, err := config.ItemCollection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotOwned
	}
	return nil
}

// AppendItemMedia pushes a media URL onto a listing owned by ownerID.
func AppendItemMedia(ctx context.Context, id primitive.ObjectID, ownerID, url string) error {
	filter := bson.M{"_id": id, "ownerId": ownerID}
	update := bson.M{"$push": bson.M{"mediaUrls": url}}

	res, err := config.ItemCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotOwned
	}
	return nil
}
