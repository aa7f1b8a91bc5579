package usecases

import (
	"context"
	"errors"

	"rental-server/apperrors"
	"rental-server/entities"
	"rental-server/repositories"
)

type FavouriteUseCase struct {
	FavouriteRepo repositories.FavouriteRepository
	UserRepo      repositories.UserRepository
	PropertyRepo  repositories.PropertyRepository
	AggregateRepo repositories.AggregateRepository
	Events        EventPublisher
}

func NewFavouriteUseCase(favouriteRepo repositories.FavouriteRepository, userRepo repositories.UserRepository, propertyRepo repositories.PropertyRepository, aggregateRepo repositories.AggregateRepository, events EventPublisher) *FavouriteUseCase {
	return &FavouriteUseCase{
		FavouriteRepo: favouriteRepo,
		UserRepo:      userRepo,
		PropertyRepo:  propertyRepo,
		AggregateRepo: aggregateRepo,
		Events:        events,
	}
}

// AddFavourite records that a guest favourited a property. Checks run in a
// fixed order: duplicate pair, then guest, then property.
func (uc *FavouriteUseCase) AddFavourite(ctx context.Context, propertyID, guestID uint) (*entities.Favourite, error) {
	exists, err := uc.FavouriteRepo.Exists(ctx, guestID, propertyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict(msgAlreadyFavourited)
	}

	exists, err = uc.UserRepo.Exists(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound(msgGuestNotFound)
	}

	exists, err = uc.PropertyRepo.Exists(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound(msgPropertyNotFound)
	}

	favourite := &entities.Favourite{GuestID: guestID, PropertyID: propertyID}
	if err := uc.FavouriteRepo.Create(ctx, favourite); err != nil {
		// Another request may have inserted the pair after the check above.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Wrap(apperrors.Conflict(msgAlreadyFavourited), err)
		}
		return nil, err
	}

	uc.publishCount(ctx, entities.EventFavouriteAdded, propertyID, guestID)
	return favourite, nil
}

// RemoveFavourite deletes the guest's favourite of a property. Removing a
// favourite that does not exist succeeds.
func (uc *FavouriteUseCase) RemoveFavourite(ctx context.Context, guestID, propertyID uint) error {
	removed, err := uc.FavouriteRepo.Delete(ctx, guestID, propertyID)
	if err != nil {
		return err
	}
	if removed {
		uc.publishCount(ctx, entities.EventFavouriteRemoved, propertyID, guestID)
	}
	return nil
}

func (uc *FavouriteUseCase) publishCount(ctx context.Context, kind entities.EventType, propertyID, guestID uint) {
	if uc.Events == nil {
		return
	}
	event := newEvent(kind, propertyID, guestID)
	if count, err := uc.AggregateRepo.FavouriteCount(ctx, propertyID); err == nil {
		event.FavouriteCount = &count
	}
	publish(uc.Events, event)
}
