package controllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateListingCacheKey(t *testing.T) {
	key := generateListingCacheKey("user-1", "active")

	assert.True(t, strings.HasPrefix(key, "items:"))
	assert.Equal(t, key, generateListingCacheKey("user-1", "active"))

	assert.NotEqual(t, key, generateListingCacheKey("user-2", "active"))
	assert.NotEqual(t, key, generateListingCacheKey("user-1", "closed"))
}
