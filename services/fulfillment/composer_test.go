package fulfillment

import (
	"testing"

	"dinebot/models"

	"github.com/stretchr/testify/assert"
)

func TestComposeSuggestion(t *testing.T) {
	msg := models.QueueMessage{
		Location: "New York",
		Time:     "19:00",
		Cuisine:  "Italian",
		People:   "4",
		Phone:    "+15551234567",
	}
	picks := []*models.Restaurant{
		{Name: "Trattoria Uno", Address: "12 Mulberry St"},
		{Name: "Osteria Due", Address: "48 Carmine St"},
	}

	text := ComposeSuggestion(msg, picks)
	assert.Equal(t,
		"Hello! Here are my Italian restaurant suggestions in New York for 4 people, at 19:00: "+
			"\n1. Trattoria Uno, located at 12 Mulberry St. "+
			"\n2. Osteria Due, located at 48 Carmine St. "+
			"Enjoy your meal!!",
		text)
}

func TestComposeSuggestionNoPicks(t *testing.T) {
	text := ComposeSuggestion(models.QueueMessage{Cuisine: "Thai", Location: "New York"}, nil)
	assert.NotContains(t, text, "1. ")
	assert.Contains(t, text, "Enjoy your meal!!")
}
