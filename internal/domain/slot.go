package domain

import "context"

// Fixed slot keys
const (
	SlotExpenses           = "trip_expenses"
	SlotItineraryOverrides = "itinerary_overrides"
)

// SlotStore is a string-valued key-value persistence slot. Get returns
// ErrSlotNotFound for a key that was never written or has been deleted.
type SlotStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
