package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEventRoundTrip(t *testing.T) {
	event := NewCreateEvent(Task{
		ID:       "t1",
		Name:     "Buy milk",
		Date:     "2099-01-01",
		Time:     "10:00",
		Priority: false,
	})
	b, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := DecodeEvent(b)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
	assert.Equal(t, "Buy milk", decoded.Task().Name)
	assert.NotEmpty(t, decoded.CreatedAt)
}

func TestDecodeEventRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":       `garbage`,
		"truncated":      `{"type":"create","id":"t1","na`,
		"unknown type":   `{"type":"archive","id":"t1"}`,
		"missing type":   `{"id":"t1","name":"x"}`,
		"missing id":     `{"type":"create","name":"x"}`,
		"wrong shape":    `[1,2,3]`,
		"empty document": ``,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeEvent([]byte(raw))
			assert.ErrorIs(t, err, ErrMalformedEvent)
		})
	}
}

func TestNewDeleteEventShape(t *testing.T) {
	event := NewDeleteEvent("t9")
	assert.Equal(t, TypeDelete, event.Type)
	assert.Equal(t, "t9", event.ID)
	assert.NotEmpty(t, event.DeletedAt)
	assert.Empty(t, event.Name)
}
