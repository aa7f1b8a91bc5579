package usecases

import (
	"context"
	"errors"

	"rental-server/apperrors"
	"rental-server/entities"
	"rental-server/query"
	"rental-server/repositories"
	"rental-server/validation"
)

type PropertyUseCase struct {
	PropertyRepo     repositories.PropertyRepository
	PropertyTypeRepo repositories.PropertyTypeRepository
	FavouriteRepo    repositories.FavouriteRepository
	UserRepo         repositories.UserRepository
}

func NewPropertyUseCase(propertyRepo repositories.PropertyRepository, propertyTypeRepo repositories.PropertyTypeRepository, favouriteRepo repositories.FavouriteRepository, userRepo repositories.UserRepository) *PropertyUseCase {
	return &PropertyUseCase{
		PropertyRepo:     propertyRepo,
		PropertyTypeRepo: propertyTypeRepo,
		FavouriteRepo:    favouriteRepo,
		UserRepo:         userRepo,
	}
}

// ListProperties returns the properties matching the listing filters.
// An empty match is an empty slice; only an unknown property type fails.
func (uc *PropertyUseCase) ListProperties(ctx context.Context, listing query.Listing) ([]entities.PropertySummary, error) {
	if len(listing.Types) > 0 {
		valid, err := uc.PropertyTypeRepo.ListNames(ctx)
		if err != nil {
			return nil, err
		}
		if err := validation.CheckPropertyTypes(listing.Types, valid); err != nil {
			return nil, err
		}
	}

	properties, err := uc.PropertyRepo.List(ctx, listing)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []entities.PropertySummary{}
	}
	return properties, nil
}

// GetProperty returns a property with its images. When userID is given the
// result says whether that user favourited it; the user is only looked up
// when no favourite was found.
func (uc *PropertyUseCase) GetProperty(ctx context.Context, id uint, userID *uint) (*entities.PropertyDetail, error) {
	detail, err := uc.PropertyRepo.GetDetail(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound(msgPropertyNotFound)
	}
	if err != nil {
		return nil, err
	}

	if userID != nil {
		favourited, err := uc.FavouriteRepo.Exists(ctx, *userID, id)
		if err != nil {
			return nil, err
		}
		if !favourited {
			exists, err := uc.UserRepo.Exists(ctx, *userID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, apperrors.NotFound(msgUserNotFound)
			}
		}
		detail.Favourited = &favourited
	}

	images, err := uc.PropertyRepo.ListImages(ctx, id)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = []entities.ImageSummary{}
	}
	detail.Images = images
	return detail, nil
}
