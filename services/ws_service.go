package services

import (
	"encoding/json"
	"time"

	"taprobane/utils"

	"github.com/olahol/melody"
)

// Event is the payload pushed to connected admin dashboards.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
	Time time.Time   `json:"time"`
}

const (
	EventBookingCreated   = "booking_created"
	EventBookingUpdated   = "booking_updated"
	EventContactReceived  = "contact_received"
	EventBookingCompleted = "booking_completed"
)

// Broadcast pushes an event to every connected dashboard. Failures are
// logged, never returned: a dead socket must not fail the request.
func Broadcast(m *melody.Melody, eventType string, data interface{}) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(Event{Type: eventType, Data: data, Time: time.Now()})
	if err != nil {
		utils.LogError("marshal ws event %s: %v", eventType, err)
		return
	}

	if err := m.Broadcast(payload); err != nil {
		utils.LogError("broadcast ws event %s: %v", eventType, err)
	}
}
