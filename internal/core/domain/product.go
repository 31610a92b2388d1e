package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimestampLayout renders product timestamps in a human-readable local form,
// e.g. "3/14/2026, 9:05:00 AM".
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// Product is a catalogue item managed from the admin panel.
// AddedOn is stamped once at creation; UpdatedOn on every mutation.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	AddedOn   string  `json:"addedOn,omitempty"`
	UpdatedOn string  `json:"updatedOn,omitempty"`
}

// FormatTimestamp renders t in the local time zone using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// ValidID reports whether id is a syntactically valid document identifier.
func ValidID(id string) bool {
	return id != "" && primitive.IsValidObjectID(id)
}
