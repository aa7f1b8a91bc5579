package repositories

import (
	"context"
	"errors"

	"rental-server/entities"
	"rental-server/query"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrReferenceMissing = errors.New("referenced record missing")
)

type PropertyTypeRepository interface {
	ListNames(ctx context.Context) ([]string, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*entities.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*entities.User, error)
}

type PropertyRepository interface {
	List(ctx context.Context, listing query.Listing) ([]entities.PropertySummary, error)
	GetDetail(ctx context.Context, id uint) (*entities.PropertyDetail, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListImages(ctx context.Context, propertyID uint) ([]entities.ImageSummary, error)
}

type ReviewRepository interface {
	ListByProperty(ctx context.Context, propertyID uint) ([]entities.ReviewSummary, error)
	GetByID(ctx context.Context, id uint) (*entities.Review, error)
	Create(ctx context.Context, review *entities.Review) error
	Delete(ctx context.Context, id uint) error
}

type FavouriteRepository interface {
	Exists(ctx context.Context, guestID, propertyID uint) (bool, error)
	Create(ctx context.Context, favourite *entities.Favourite) error
	Delete(ctx context.Context, guestID, propertyID uint) (bool, error)
}

// AggregateRepository computes per-property derived values.
type AggregateRepository interface {
	FavouriteCount(ctx context.Context, propertyID uint) (int64, error)
	RatingSummary(ctx context.Context, propertyID uint) (entities.RatingSummary, error)
}
