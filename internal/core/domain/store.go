package domain

import (
	"errors"
	"time"
)

var ErrStoreNotFound = errors.New("store not found")
var ErrOwnerHasStore = errors.New("owner already has a store")

// Store is owned by exactly one store_owner user. The owner reference is
// unique: an owner holds at most one store.
type Store struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// StoreListing is a store joined with its owner and rating aggregate, the
// shape served by catalog and admin listings.
type StoreListing struct {
	Store
	OwnerName    string   `json:"owner_name"`
	OwnerEmail   string   `json:"owner_email,omitempty"`
	TotalRatings int64    `json:"total_ratings"`
	AverageScore *float64 `json:"average_rating,omitempty"`
}
