package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	KindLost  = "lost"
	KindFound = "found"
)

const (
	StatusActive   = "active"
	StatusClosed   = "closed"
	StatusArchived = "archived"
)

// Location is free-text place information; every field is optional.
type Location struct {
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
	District string `bson:"district,omitempty" json:"district,omitempty"`
	Province string `bson:"province,omitempty" json:"province,omitempty"`
}

// Display joins the present location fields with commas, falling back
// to a fixed label when nothing is set.
func (l Location) Display() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Address, l.District, l.Province} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	if len(parts) == 0 {
		return "Unknown location"
	}
	return strings.Join(parts, ", ")
}

type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Kind        string             `bson:"kind" json:"kind"`
	Status      string             `bson:"status" json:"status"`
	CategoryID  primitive.ObjectID `bson:"categoryId,omitempty" json:"categoryId,omitempty"`
	Location    Location           `bson:"location" json:"location"`
	MediaURLs   []string           `bson:"mediaUrls" json:"mediaUrls"`
	Views       int64              `bson:"views" json:"views"`
	OwnerID     string             `bson:"ownerId" json:"ownerId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ListingView is the read shape returned by list and detail queries:
// a Listing with its category name joined in.
type ListingView struct {
	Listing      `bson:",inline"`
	CategoryName string `bson:"categoryName,omitempty" json:"categoryName,omitempty"`
}

func ValidKind(kind string) bool {
	return kind == KindLost || kind == KindFound
}

func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusClosed || status == StatusArchived
}
