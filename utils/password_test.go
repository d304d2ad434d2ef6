package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-phrase")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-phrase", hash)

	assert.True(t, CheckPasswordHash("s3cret-phrase", hash))
	assert.False(t, CheckPasswordHash("wrong-phrase", hash))
	assert.False(t, CheckPasswordHash("s3cret-phrase", "not-a-hash"))
}
