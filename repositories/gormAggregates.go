package repositories

import (
	"context"

	"rental-server/db"
	"rental-server/entities"
)

type aggregateGormRepository struct {
	db db.Database
}

func NewAggregateGormRepository(database db.Database) AggregateRepository {
	return &aggregateGormRepository{db: database}
}

func (r *aggregateGormRepository) FavouriteCount(ctx context.Context, propertyID uint) (int64, error) {
	var count int64
	err := r.db.GetDB().WithContext(ctx).
		Model(&entities.Favourite{}).
		Where("property_id = ?", propertyID).
		Count(&count).Error
	return count, err
}

// RatingSummary averages every stored rating for the property. The average
// is invalid when there is nothing to average.
func (r *aggregateGormRepository) RatingSummary(ctx context.Context, propertyID uint) (entities.RatingSummary, error) {
	var row struct {
		Count   int64
		Average *float64
	}
	err := r.db.GetDB().WithContext(ctx).
		Table("reviews").
		Select("COUNT(*) AS count, AVG(rating) AS average").
		Where("property_id = ?", propertyID).
		Scan(&row).Error
	if err != nil {
		return entities.RatingSummary{}, err
	}

	summary := entities.RatingSummary{PropertyID: propertyID, Count: row.Count}
	if row.Count > 0 && row.Average != nil {
		summary.Average = entities.AverageRating{Value: *row.Average, Valid: true}
	}
	return summary, nil
}
