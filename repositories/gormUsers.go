package repositories

import (
	"context"

	"rental-server/db"
	"rental-server/entities"
)

type userGormRepository struct {
	db db.Database
}

func NewUserGormRepository(database db.Database) UserRepository {
	return &userGormRepository{db: database}
}

func (r *userGormRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().WithContext(ctx).Where("user_id = ?", id).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userGormRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.GetDB().WithContext(ctx).Model(&entities.User{}).Where("user_id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update sets only the given columns and returns the stored row afterwards.
func (r *userGormRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*entities.User, error) {
	tx := r.db.GetDB().WithContext(ctx)

	var user entities.User
	if err := tx.Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	if err := tx.Model(&user).Updates(fields).Error; err != nil {
		return nil, translate(err)
	}
	if err := tx.Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
