package seed

import (
	"fmt"
	"time"

	"rental-server/entities"
)

// UserRef maps each user's full name to their id.
func UserRef(users []entities.User) map[string]uint {
	ref := make(map[string]uint, len(users))
	for _, u := range users {
		ref[u.FullName()] = u.UserID
	}
	return ref
}

// PropertyRef maps each property's name to its id.
func PropertyRef(properties []entities.Property) map[string]uint {
	ref := make(map[string]uint, len(properties))
	for _, p := range properties {
		ref[p.Name] = p.PropertyID
	}
	return ref
}

func lookup(ref map[string]uint, kind, name string) (uint, error) {
	id, ok := ref[name]
	if !ok {
		return 0, fmt.Errorf("unknown %s %q", kind, name)
	}
	return id, nil
}

// FormatProperties swaps host names for host ids.
func FormatProperties(raw []RawProperty, users map[string]uint) ([]entities.Property, error) {
	out := make([]entities.Property, 0, len(raw))
	for _, p := range raw {
		hostID, err := lookup(users, "host", p.HostName)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.Property{
			HostID:        hostID,
			Name:          p.Name,
			Location:      p.Location,
			PropertyType:  p.PropertyType,
			PricePerNight: p.PricePerNight,
			Description:   p.Description,
		})
	}
	return out, nil
}

// FormatReviews swaps guest and property names for ids. A missing
// created_at falls back to now.
func FormatReviews(raw []RawReview, users, properties map[string]uint) ([]entities.Review, error) {
	out := make([]entities.Review, 0, len(raw))
	for _, r := range raw {
		propertyID, err := lookup(properties, "property", r.PropertyName)
		if err != nil {
			return nil, err
		}
		guestID, err := lookup(users, "guest", r.GuestName)
		if err != nil {
			return nil, err
		}
		createdAt := time.Now().UTC()
		if r.CreatedAt != "" {
			if createdAt, err = time.Parse(time.RFC3339, r.CreatedAt); err != nil {
				return nil, fmt.Errorf("review of %q: %w", r.PropertyName, err)
			}
		}
		out = append(out, entities.Review{
			PropertyID: propertyID,
			GuestID:    guestID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  createdAt,
		})
	}
	return out, nil
}

func FormatImages(raw []RawImage, properties map[string]uint) ([]entities.Image, error) {
	out := make([]entities.Image, 0, len(raw))
	for _, img := range raw {
		propertyID, err := lookup(properties, "property", img.PropertyName)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.Image{
			PropertyID: propertyID,
			ImageURL:   img.ImageURL,
			AltText:    img.AltTag,
		})
	}
	return out, nil
}

func FormatFavourites(raw []RawFavourite, users, properties map[string]uint) ([]entities.Favourite, error) {
	out := make([]entities.Favourite, 0, len(raw))
	for _, f := range raw {
		guestID, err := lookup(users, "guest", f.GuestName)
		if err != nil {
			return nil, err
		}
		propertyID, err := lookup(properties, "property", f.PropertyName)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.Favourite{GuestID: guestID, PropertyID: propertyID})
	}
	return out, nil
}
