package usecases

import (
	"context"
	"errors"

	"rental-server/apperrors"
	"rental-server/entities"
	"rental-server/repositories"
)

type ReviewUseCase struct {
	ReviewRepo    repositories.ReviewRepository
	PropertyRepo  repositories.PropertyRepository
	UserRepo      repositories.UserRepository
	AggregateRepo repositories.AggregateRepository
	Events        EventPublisher
}

func NewReviewUseCase(reviewRepo repositories.ReviewRepository, propertyRepo repositories.PropertyRepository, userRepo repositories.UserRepository, aggregateRepo repositories.AggregateRepository, events EventPublisher) *ReviewUseCase {
	return &ReviewUseCase{
		ReviewRepo:    reviewRepo,
		PropertyRepo:  propertyRepo,
		UserRepo:      userRepo,
		AggregateRepo: aggregateRepo,
		Events:        events,
	}
}

// ListReviews returns a property's reviews newest first with their average.
func (uc *ReviewUseCase) ListReviews(ctx context.Context, propertyID uint) (*entities.PropertyReviews, error) {
	reviews, err := uc.ReviewRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	// No reviews could mean no property: only then is existence checked.
	if len(reviews) == 0 {
		exists, err := uc.PropertyRepo.Exists(ctx, propertyID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NotFound(msgPropertyNotFound)
		}
		return &entities.PropertyReviews{Reviews: []entities.ReviewSummary{}}, nil
	}

	summary, err := uc.AggregateRepo.RatingSummary(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return &entities.PropertyReviews{Reviews: reviews, AverageRating: summary.Average}, nil
}

// CreateReview stores a review for a property and returns the inserted row.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, propertyID uint, input entities.NewReview) (*entities.Review, error) {
	if input.GuestID == nil || input.Rating == nil || *input.GuestID <= 0 {
		return nil, apperrors.BadRequest(msgBadRequest)
	}

	exists, err := uc.PropertyRepo.Exists(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound(msgPropertyNotFound)
	}

	guestID := uint(*input.GuestID)
	exists, err = uc.UserRepo.Exists(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound(msgGuestNotFound)
	}

	review := &entities.Review{
		PropertyID: propertyID,
		GuestID:    guestID,
		Rating:     *input.Rating,
		Comment:    input.Comment,
	}
	if err := uc.ReviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repositories.ErrReferenceMissing) {
			return nil, apperrors.Wrap(apperrors.NotFound(msgGuestNotFound), err)
		}
		return nil, err
	}

	uc.publishRating(ctx, entities.EventReviewAdded, propertyID, guestID)
	return review, nil
}

// DeleteReview removes a review by id.
func (uc *ReviewUseCase) DeleteReview(ctx context.Context, reviewID uint) error {
	review, err := uc.ReviewRepo.GetByID(ctx, reviewID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound(msgReviewNotFound)
	}
	if err != nil {
		return err
	}

	if err := uc.ReviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound(msgReviewNotFound)
		}
		return err
	}

	uc.publishRating(ctx, entities.EventReviewDeleted, review.PropertyID, review.GuestID)
	return nil
}

func (uc *ReviewUseCase) publishRating(ctx context.Context, kind entities.EventType, propertyID, guestID uint) {
	if uc.Events == nil {
		return
	}
	event := newEvent(kind, propertyID, guestID)
	if summary, err := uc.AggregateRepo.RatingSummary(ctx, propertyID); err == nil {
		event.AverageRating = &summary.Average
	}
	publish(uc.Events, event)
}
