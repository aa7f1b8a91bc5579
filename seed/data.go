// Package seed loads the reference dataset into the database.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFS embed.FS

type RawPropertyType struct {
	PropertyType string `json:"property_type"`
	Description  string `json:"description"`
}

type RawUser struct {
	FirstName   string `json:"first_name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	IsHost      bool   `json:"is_host"`
	Avatar      string `json:"avatar"`
}

type RawProperty struct {
	Name          string  `json:"name"`
	PropertyType  string  `json:"property_type"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"price_per_night"`
	Description   string  `json:"description"`
	HostName      string  `json:"host_name"`
}

type RawReview struct {
	GuestName    string  `json:"guest_name"`
	PropertyName string  `json:"property_name"`
	Rating       int     `json:"rating"`
	Comment      *string `json:"comment"`
	CreatedAt    string  `json:"created_at"`
}

type RawImage struct {
	PropertyName string `json:"property_name"`
	ImageURL     string `json:"image_url"`
	AltTag       string `json:"alt_tag"`
}

type RawFavourite struct {
	GuestName    string `json:"guest_name"`
	PropertyName string `json:"property_name"`
}

// Data is the dataset as authored: rows refer to each other by name.
type Data struct {
	PropertyTypes []RawPropertyType
	Users         []RawUser
	Properties    []RawProperty
	Reviews       []RawReview
	Images        []RawImage
	Favourites    []RawFavourite
}

// LoadData reads the embedded dataset.
func LoadData() (*Data, error) {
	var d Data
	files := []struct {
		name string
		dst  interface{}
	}{
		{"property_types.json", &d.PropertyTypes},
		{"users.json", &d.Users},
		{"properties.json", &d.Properties},
		{"reviews.json", &d.Reviews},
		{"images.json", &d.Images},
		{"favourites.json", &d.Favourites},
	}
	for _, f := range files {
		raw, err := dataFS.ReadFile("data/" + f.name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.name, err)
		}
	}
	return &d, nil
}
