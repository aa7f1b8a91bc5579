package repositories

import (
	"context"

	"rental-server/db"
	"rental-server/entities"
)

type propertyTypeGormRepository struct {
	db db.Database
}

func NewPropertyTypeGormRepository(database db.Database) PropertyTypeRepository {
	return &propertyTypeGormRepository{db: database}
}

func (r *propertyTypeGormRepository) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.GetDB().WithContext(ctx).
		Model(&entities.PropertyType{}).
		Order("property_type").
		Pluck("property_type", &names).Error
	return names, err
}
