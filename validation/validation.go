package validation

import (
	"math"
	"strconv"
	"strings"

	"rental-server/apperrors"
)

const (
	msgBadRequest           = "Bad Request"
	msgPropertyTypeNotFound = "Property type does not exist"
)

// ParseID parses a path or query identifier. Anything that is not a
// base-10 unsigned integer is rejected before storage is touched.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id > math.MaxInt32 {
		return 0, apperrors.BadRequest(msgBadRequest)
	}
	return uint(id), nil
}

// ParseOptionalID returns nil when raw is empty.
func ParseOptionalID(raw string) (*uint, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := ParseID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParsePrice parses an optional price bound. An empty value means no bound.
func ParsePrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, apperrors.BadRequest(msgBadRequest)
	}
	return &price, nil
}

// CheckPropertyTypes fails when any requested type is missing from valid.
func CheckPropertyTypes(requested, valid []string) error {
	known := make(map[string]struct{}, len(valid))
	for _, v := range valid {
		known[v] = struct{}{}
	}
	for _, r := range requested {
		if _, ok := known[r]; !ok {
			return apperrors.NotFound(msgPropertyTypeNotFound)
		}
	}
	return nil
}
