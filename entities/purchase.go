package entities

import "time"

type PurchaseStatus string

const (
	PurchaseOrdered        PurchaseStatus = "ordered"
	PurchaseProcessing     PurchaseStatus = "processing"
	PurchaseShipped        PurchaseStatus = "shipped"
	PurchaseInTransit      PurchaseStatus = "in-transit"
	PurchaseOutForDelivery PurchaseStatus = "out-for-delivery"
	PurchaseDelivered      PurchaseStatus = "delivered"
)

type EventState string

const (
	EventCompleted EventState = "completed"
	EventCurrent   EventState = "current"
	EventUpcoming  EventState = "upcoming"
)

// ShipmentEvent.Timestamp is RFC 3339 for reached stages and "Upcoming" otherwise.
type ShipmentEvent struct {
	Event     string     `json:"event"`
	Location  string     `json:"location"`
	Timestamp string     `json:"timestamp"`
	Status    EventState `json:"status"`
}

type Purchase struct {
	ID               string          `gorm:"primaryKey" json:"id"`
	UserID           string          `gorm:"index" json:"userId"`
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	Price            float64         `json:"price"`
	CreatedAt        time.Time       `json:"createdAt"`
	Status           PurchaseStatus  `json:"status"`
	TrackingID       string          `json:"trackingId,omitempty"`
	EstimatedArrival *time.Time      `json:"estimatedArrival,omitempty"`
	Logs             []ShipmentEvent `gorm:"serializer:json" json:"logs,omitempty"`
}
