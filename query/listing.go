// Package query builds the parameterised filter and ordering clauses used
// by the property listing.
package query

import "strings"

type SortKey int

const (
	SortPopularity SortKey = iota
	SortCostPerNight
)

// ParseSortKey maps the sort query value to a key. Unknown or empty values
// fall back to popularity.
func ParseSortKey(raw string) SortKey {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "cost_per_night":
		return SortCostPerNight
	default:
		return SortPopularity
	}
}

func (k SortKey) String() string {
	if k == SortCostPerNight {
		return "cost_per_night"
	}
	return "popularity"
}

type Direction int

const (
	DirectionDefault Direction = iota
	Ascending
	Descending
)

// ParseDirection maps the order query value to a direction. Unknown or
// empty values leave the sort key's own default in place.
func ParseDirection(raw string) Direction {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ascending", "asc":
		return Ascending
	case "descending", "desc":
		return Descending
	default:
		return DirectionDefault
	}
}

// Predicate is one parameterised condition. Values travel in Args, never in SQL.
type Predicate struct {
	SQL  string
	Args []interface{}
}

// Listing describes a filtered, sorted property listing request.
type Listing struct {
	Types    []string
	MinPrice *float64
	MaxPrice *float64
	Sort     SortKey
	Order    Direction
}

// Predicates returns the conditions to AND together, in a stable order.
func (l Listing) Predicates() []Predicate {
	var preds []Predicate
	if len(l.Types) > 0 {
		preds = append(preds, Predicate{SQL: "properties.property_type IN ?", Args: []interface{}{l.Types}})
	}
	if l.MinPrice != nil {
		preds = append(preds, Predicate{SQL: "properties.price_per_night >= ?", Args: []interface{}{*l.MinPrice}})
	}
	if l.MaxPrice != nil {
		preds = append(preds, Predicate{SQL: "properties.price_per_night <= ?", Args: []interface{}{*l.MaxPrice}})
	}
	return preds
}

// Direction resolves the effective direction: popularity defaults to
// descending and cost per night to ascending.
func (l Listing) Direction() Direction {
	if l.Order != DirectionDefault {
		return l.Order
	}
	if l.Sort == SortCostPerNight {
		return Ascending
	}
	return Descending
}

// OrderBy returns the ORDER BY clause. Property id breaks ties so equal
// keys always come back in the same order.
func (l Listing) OrderBy() string {
	column := "favourite_count"
	if l.Sort == SortCostPerNight {
		column = "properties.price_per_night"
	}
	dir := "DESC"
	if l.Direction() == Ascending {
		dir = "ASC"
	}
	return column + " " + dir + ", properties.property_id ASC"
}
