package domain

import "time"

// Property is a listing row as the store holds it. The catalog only reads it.
type Property struct {
	ID          int64
	Address     string
	Price       float64
	Description string
	OwnerID     *int64
	Owner       *User // joined owner record, nil when the listing has no owner
}

// CatalogEntry is the public projection of a Property.
type CatalogEntry struct {
	PropertyID  int64
	Address     string
	Price       float64
	Description string
	Seller      *Seller
}

// Seller is the public part of the owning user embedded in a CatalogEntry.
type Seller struct {
	UserID      int64
	Username    string
	Name        string
	Email       string
	PhoneNumber string
	Role        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
