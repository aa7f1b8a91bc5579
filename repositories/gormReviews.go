package repositories

import (
	"context"

	"rental-server/db"
	"rental-server/entities"

	"gorm.io/gorm/clause"
)

type reviewGormRepository struct {
	db db.Database
}

func NewReviewGormRepository(database db.Database) ReviewRepository {
	return &reviewGormRepository{db: database}
}

// ListByProperty returns a property's reviews, newest first.
func (r *reviewGormRepository) ListByProperty(ctx context.Context, propertyID uint) ([]entities.ReviewSummary, error) {
	reviews := []entities.ReviewSummary{}
	err := r.db.GetDB().WithContext(ctx).
		Table("reviews").
		Select(`reviews.review_id, reviews.comment, reviews.rating, reviews.created_at,
			users.first_name AS guest_first_name, users.surname AS guest_surname, users.avatar AS guest_avatar`).
		Joins("JOIN users ON users.user_id = reviews.guest_id").
		Where("reviews.property_id = ?", propertyID).
		Order("reviews.created_at DESC, reviews.review_id DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		reviews[i].Guest = entities.FullName(reviews[i].GuestFirstName, reviews[i].GuestSurname)
	}
	return reviews, nil
}

func (r *reviewGormRepository) GetByID(ctx context.Context, id uint) (*entities.Review, error) {
	var review entities.Review
	err := r.db.GetDB().WithContext(ctx).Where("review_id = ?", id).First(&review).Error
	if err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (r *reviewGormRepository) Create(ctx context.Context, review *entities.Review) error {
	return translate(r.db.GetDB().WithContext(ctx).Omit(clause.Associations).Create(review).Error)
}

func (r *reviewGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.GetDB().WithContext(ctx).Where("review_id = ?", id).Delete(&entities.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
