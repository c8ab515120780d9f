package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationSlotsComplete(t *testing.T) {
	slots := ReservationSlots{
		Location:   "New York",
		Cuisine:    "Thai",
		DiningTime: "18:30",
		NumPeople:  "2",
		PhoneNum:   "5551234567",
	}
	assert.True(t, slots.Complete())

	slots.Cuisine = ""
	assert.False(t, slots.Complete())
	assert.False(t, slots.Empty())

	assert.True(t, ReservationSlots{}.Empty())
}

func TestReservationSlotsClear(t *testing.T) {
	slots := ReservationSlots{Location: "New York", Cuisine: "Thai"}
	slots.Clear(SlotCuisine)
	assert.Empty(t, slots.Cuisine)
	assert.Equal(t, "New York", slots.Location)
}

func TestReservationSerializesWithSlotCasing(t *testing.T) {
	res := NewDiningReservation(ReservationSlots{Location: "New York", NumPeople: "4"})
	b, err := json.Marshal(res)
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "Dining", m["SuggestionType"])
	assert.Equal(t, "New York", m["Location"])
	assert.Equal(t, "4", m["NumPeople"])
}
