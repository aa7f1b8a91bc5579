package repositories

import (
	"context"

	"rental-server/db"
	"rental-server/entities"
	"rental-server/query"

	"gorm.io/gorm"
)

const (
	listingColumns = `properties.property_id, properties.name AS property_name, properties.location,
		properties.price_per_night, users.first_name AS host_first_name, users.surname AS host_surname,
		COUNT(favourites.favourite_id) AS favourite_count,
		(SELECT images.image_url FROM images WHERE images.property_id = properties.property_id
			ORDER BY images.image_id LIMIT 1) AS image`

	detailColumns = `properties.property_id, properties.name AS property_name, properties.location,
		properties.property_type, properties.price_per_night, properties.description,
		users.first_name AS host_first_name, users.surname AS host_surname, users.avatar AS host_avatar,
		COUNT(favourites.favourite_id) AS favourite_count`
)

type propertyGormRepository struct {
	db db.Database
}

func NewPropertyGormRepository(database db.Database) PropertyRepository {
	return &propertyGormRepository{db: database}
}

// withFavourites joins hosts and outer-joins favourites so properties
// nobody favourited still appear with a zero count.
func (r *propertyGormRepository) withFavourites(ctx context.Context, columns string) *gorm.DB {
	return r.db.GetDB().WithContext(ctx).
		Table("properties").
		Select(columns).
		Joins("JOIN users ON users.user_id = properties.host_id").
		Joins("LEFT JOIN favourites ON favourites.property_id = properties.property_id").
		Group("properties.property_id, users.user_id")
}

func (r *propertyGormRepository) List(ctx context.Context, listing query.Listing) ([]entities.PropertySummary, error) {
	tx := r.withFavourites(ctx, listingColumns)
	for _, p := range listing.Predicates() {
		tx = tx.Where(p.SQL, p.Args...)
	}

	properties := []entities.PropertySummary{}
	if err := tx.Order(listing.OrderBy()).Scan(&properties).Error; err != nil {
		return nil, err
	}
	for i := range properties {
		properties[i].Host = entities.FullName(properties[i].HostFirstName, properties[i].HostSurname)
	}
	return properties, nil
}

func (r *propertyGormRepository) GetDetail(ctx context.Context, id uint) (*entities.PropertyDetail, error) {
	var detail entities.PropertyDetail
	res := r.withFavourites(ctx, detailColumns).
		Where("properties.property_id = ?", id).
		Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	detail.Host = entities.FullName(detail.HostFirstName, detail.HostSurname)
	return &detail, nil
}

func (r *propertyGormRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.GetDB().WithContext(ctx).Model(&entities.Property{}).Where("property_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *propertyGormRepository) ListImages(ctx context.Context, propertyID uint) ([]entities.ImageSummary, error) {
	images := []entities.ImageSummary{}
	err := r.db.GetDB().WithContext(ctx).
		Model(&entities.Image{}).
		Select("image_id, image_url, alt_text").
		Where("property_id = ?", propertyID).
		Order("image_id").
		Scan(&images).Error
	return images, err
}
