package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationDisplay(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		want     string
	}{
		{"address only", Location{Address: "12 Main St"}, "12 Main St"},
		{"district and province", Location{District: "Chatuchak", Province: "Bangkok"}, "Chatuchak, Bangkok"},
		{"all fields", Location{Address: "12 Main St", District: "Chatuchak", Province: "Bangkok"}, "12 Main St, Chatuchak, Bangkok"},
		{"empty", Location{}, "Unknown location"},
		{"whitespace only", Location{Address: "   ", District: "\t"}, "Unknown location"},
		{"trims fields", Location{Address: " 12 Main St ", Province: " Bangkok"}, "12 Main St, Bangkok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.location.Display())
		})
	}
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindLost))
	assert.True(t, ValidKind(KindFound))
	assert.False(t, ValidKind(""))
	assert.False(t, ValidKind("stolen"))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusActive))
	assert.True(t, ValidStatus(StatusClosed))
	assert.True(t, ValidStatus(StatusArchived))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("deleted"))
}
