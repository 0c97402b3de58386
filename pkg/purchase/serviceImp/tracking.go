package serviceImp

import (
	"math/rand/v2"
	"time"

	"agrow/entities"
)

const trackingAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newTrackingID returns "AG-" and eight upper-case base-36 characters.
func newTrackingID() string {
	b := []byte("AG-")
	for range 8 {
		b = append(b, trackingAlphabet[rand.IntN(len(trackingAlphabet))])
	}
	return string(b)
}

// initialLog is the shipment log every new purchase starts with. Only the
// first stage is complete; nothing advances it afterwards.
func initialLog(now time.Time) []entities.ShipmentEvent {
	ts := now.UTC().Format(time.RFC3339)
	return []entities.ShipmentEvent{
		{Event: "Order Secured", Location: "System Origin", Timestamp: ts, Status: entities.EventCompleted},
		{Event: "Awaiting Hub Intake", Location: "Agrow Central Hub", Timestamp: ts, Status: entities.EventCurrent},
		{Event: "Neural Safety Validation", Location: "Biometric Checkpoint", Timestamp: "Upcoming", Status: entities.EventUpcoming},
		{Event: "Drone Fleet Dispatch", Location: "Transit Stratosphere", Timestamp: "Upcoming", Status: entities.EventUpcoming},
	}
}
