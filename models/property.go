package models

import "time"

// Property is a real-estate listing owned by a user.
//
// New properties are inactive and unverified until reviewed by an administrator.
type Property struct {
	PropertyID  int64     `json:"id"`
	Owner       int64     `json:"owner"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Street      string    `json:"street"`
	Zipcode     string    `json:"zipcode"`
	Type        string    `json:"type"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Kitchen     int       `json:"kitchen"`
	Size        float64   `json:"size"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"lat"`
	Longitude   float64   `json:"long"`
	Reasons     []string  `json:"reasons"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	Active      bool      `json:"active"`
	Verified    bool      `json:"verified"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Property model.
func (p Property) TableName() string {
	return "properties"
}

// PropertyFilter narrows a property listing. Empty fields are ignored.
type PropertyFilter struct {
	Owner   int64
	City    string
	Country string
	Type    string
}
