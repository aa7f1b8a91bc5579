package repositories

import (
	"context"

	"rental-server/db"
	"rental-server/entities"

	"gorm.io/gorm/clause"
)

type favouriteGormRepository struct {
	db db.Database
}

func NewFavouriteGormRepository(database db.Database) FavouriteRepository {
	return &favouriteGormRepository{db: database}
}

func (r *favouriteGormRepository) Exists(ctx context.Context, guestID, propertyID uint) (bool, error) {
	var count int64
	err := r.db.GetDB().WithContext(ctx).
		Model(&entities.Favourite{}).
		Where("guest_id = ? AND property_id = ?", guestID, propertyID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a favourite. The unique (guest_id, property_id) index
// surfaces a concurrent duplicate as ErrDuplicate.
func (r *favouriteGormRepository) Create(ctx context.Context, favourite *entities.Favourite) error {
	return translate(r.db.GetDB().WithContext(ctx).Omit(clause.Associations).Create(favourite).Error)
}

// Delete reports whether a row was removed.
func (r *favouriteGormRepository) Delete(ctx context.Context, guestID, propertyID uint) (bool, error) {
	res := r.db.GetDB().WithContext(ctx).
		Where("guest_id = ? AND property_id = ?", guestID, propertyID).
		Delete(&entities.Favourite{})
	return res.RowsAffected > 0, res.Error
}
