package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortCostPerNight, ParseSortKey("cost_per_night"))
	assert.Equal(t, SortPopularity, ParseSortKey("popularity"))
	assert.Equal(t, SortPopularity, ParseSortKey(""))
	assert.Equal(t, SortPopularity, ParseSortKey("rating"))
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Ascending, ParseDirection("ascending"))
	assert.Equal(t, Descending, ParseDirection("descending"))
	assert.Equal(t, DirectionDefault, ParseDirection(""))
	assert.Equal(t, DirectionDefault, ParseDirection("sideways"))
}

func TestPredicatesEmpty(t *testing.T) {
	assert.Empty(t, Listing{}.Predicates())
}

func TestPredicatesKeepInputOutOfSQL(t *testing.T) {
	lo, hi := 80.0, 150.0
	hostile := "House'); DROP TABLE properties; --"
	l := Listing{Types: []string{"Studio", hostile}, MinPrice: &lo, MaxPrice: &hi}

	preds := l.Predicates()
	require.Len(t, preds, 3)

	assert.Equal(t, "properties.property_type IN ?", preds[0].SQL)
	assert.Equal(t, []interface{}{[]string{"Studio", hostile}}, preds[0].Args)
	assert.Equal(t, "properties.price_per_night >= ?", preds[1].SQL)
	assert.Equal(t, []interface{}{80.0}, preds[1].Args)
	assert.Equal(t, "properties.price_per_night <= ?", preds[2].SQL)
	assert.Equal(t, []interface{}{150.0}, preds[2].Args)

	for _, p := range preds {
		assert.NotContains(t, p.SQL, "DROP")
	}
}

func TestPredicatesSingleBound(t *testing.T) {
	hi := 100.0
	preds := Listing{MaxPrice: &hi}.Predicates()
	require.Len(t, preds, 1)
	assert.Equal(t, "properties.price_per_night <= ?", preds[0].SQL)
}

func TestOrderBy(t *testing.T) {
	cases := []struct {
		name  string
		l     Listing
		order string
	}{
		{"default", Listing{}, "favourite_count DESC, properties.property_id ASC"},
		{"popularity ascending", Listing{Order: Ascending}, "favourite_count ASC, properties.property_id ASC"},
		{"cost default", Listing{Sort: SortCostPerNight}, "properties.price_per_night ASC, properties.property_id ASC"},
		{"cost descending", Listing{Sort: SortCostPerNight, Order: Descending}, "properties.price_per_night DESC, properties.property_id ASC"},
		{"unknown values", Listing{Sort: ParseSortKey("stars"), Order: ParseDirection("up")}, "favourite_count DESC, properties.property_id ASC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.order, tc.l.OrderBy())
		})
	}
}
