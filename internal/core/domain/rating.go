package domain

import (
	"errors"
	"time"
)

const (
	MinScore = 1
	MaxScore = 5
)

var ErrInvalidScore = errors.New("rating must be between 1 and 5")
var ErrDuplicateRating = errors.New("store already rated by this user")

// Rating is a single (store, user) score. Ratings are never updated in
// place: re-rating a store is rejected, not replaced.
type Rating struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"store_id"`
	UserID    int64     `json:"user_id"`
	Score     int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Denormalized fields populated by listing queries.
	UserName     string `json:"user_name,omitempty"`
	UserEmail    string `json:"user_email,omitempty"`
	StoreName    string `json:"store_name,omitempty"`
	StoreAddress string `json:"store_address,omitempty"`
}

// ValidScore reports whether s is an integer in [MinScore, MaxScore].
func ValidScore(s int) bool {
	return s >= MinScore && s <= MaxScore
}

// RatingSummary is the derived aggregate for one store, computed on read.
// Mean is nil when the store has no ratings; it is never a numeric zero.
type RatingSummary struct {
	Count int64    `json:"count"`
	Mean  *float64 `json:"mean_score,omitempty"`
}
