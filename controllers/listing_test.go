package controllers

import (
	"testing"
	"time"

	"github.com/devmukh/lost_found_system/backend/models"
	"github.com/stretchr/testify/assert"
)

func TestPrepareNewItemOverridesClientFields(t *testing.T) {
	backdated := time.Now().Add(-72 * time.Hour)
	item := models.Listing{
		Title:     "Black wallet",
		Kind:      models.KindLost,
		Status:    models.StatusActive,
		OwnerID:   "someone-else",
		Views:     999,
		CreatedAt: backdated,
	}

	before := time.Now()
	prepareNewItem(&item, "owner-1")

	assert.False(t, item.ID.IsZero())
	assert.Equal(t, "owner-1", item.OwnerID)
	assert.Equal(t, int64(0), item.Views)
	assert.NotNil(t, item.MediaURLs)

	// createdAt is stamped by the server, never taken from the payload.
	assert.False(t, item.CreatedAt.Before(before))
	assert.NotEqual(t, backdated, item.CreatedAt)
}
