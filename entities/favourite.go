package entities

type Favourite struct {
	FavouriteID uint `gorm:"primaryKey;column:favourite_id" json:"favourite_id"`
	GuestID     uint `gorm:"not null;uniqueIndex:idx_favourites_guest_property,priority:1" json:"guest_id"`
	PropertyID  uint `gorm:"not null;uniqueIndex:idx_favourites_guest_property,priority:2;index" json:"property_id"`

	Guest    User     `gorm:"foreignKey:GuestID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Property Property `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Favourite) TableName() string { return "favourites" }
