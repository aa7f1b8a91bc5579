package entities

// PropertyType is an entry of the static property category set.
type PropertyType struct {
	Name        string `gorm:"primaryKey;type:varchar(40);column:property_type" json:"property_type"`
	Description string `gorm:"type:text" json:"description"`
}

func (PropertyType) TableName() string { return "property_types" }

type Property struct {
	PropertyID    uint    `gorm:"primaryKey;column:property_id" json:"property_id"`
	HostID        uint    `gorm:"not null;index" json:"host_id"`
	Name          string  `gorm:"type:varchar(255);not null" json:"name"`
	Location      string  `gorm:"type:varchar(255);not null" json:"location"`
	PropertyType  string  `gorm:"type:varchar(40);not null;column:property_type" json:"property_type"`
	PricePerNight float64 `gorm:"type:decimal(10,2);not null" json:"price_per_night"`
	Description   string  `gorm:"type:text" json:"description"`

	Host User         `gorm:"foreignKey:HostID;references:UserID" json:"-"`
	Type PropertyType `gorm:"foreignKey:PropertyType;references:Name" json:"-"`
}

func (Property) TableName() string { return "properties" }

type Image struct {
	ImageID    uint   `gorm:"primaryKey;column:image_id" json:"image_id"`
	PropertyID uint   `gorm:"not null;index" json:"property_id"`
	ImageURL   string `gorm:"column:image_url;type:varchar(255);not null" json:"image_url"`
	AltText    string `gorm:"type:varchar(255)" json:"alt_text"`

	Property Property `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Image) TableName() string { return "images" }

// PropertySummary is one row of the listing view.
type PropertySummary struct {
	PropertyID     uint    `gorm:"column:property_id" json:"property_id"`
	PropertyName   string  `gorm:"column:property_name" json:"property_name"`
	Location       string  `gorm:"column:location" json:"location"`
	PricePerNight  float64 `gorm:"column:price_per_night" json:"price_per_night"`
	HostFirstName  string  `gorm:"column:host_first_name" json:"-"`
	HostSurname    string  `gorm:"column:host_surname" json:"-"`
	Image          *string `gorm:"column:image" json:"image"`
	FavouriteCount int64   `gorm:"column:favourite_count" json:"-"`
	Host           string  `gorm:"-" json:"host"`
}

// ImageSummary is an image as embedded in a property detail.
type ImageSummary struct {
	ImageID  uint   `gorm:"column:image_id" json:"image_id"`
	ImageURL string `gorm:"column:image_url" json:"image_url"`
	AltText  string `gorm:"column:alt_text" json:"alt_text"`
}

// PropertyDetail is the full view of a single property.
type PropertyDetail struct {
	PropertyID     uint           `gorm:"column:property_id" json:"property_id"`
	PropertyName   string         `gorm:"column:property_name" json:"property_name"`
	Location       string         `gorm:"column:location" json:"location"`
	PropertyType   string         `gorm:"column:property_type" json:"property_type"`
	PricePerNight  float64        `gorm:"column:price_per_night" json:"price_per_night"`
	Description    string         `gorm:"column:description" json:"description"`
	HostFirstName  string         `gorm:"column:host_first_name" json:"-"`
	HostSurname    string         `gorm:"column:host_surname" json:"-"`
	HostAvatar     string         `gorm:"column:host_avatar" json:"host_avatar"`
	FavouriteCount int64          `gorm:"column:favourite_count" json:"favourite_count"`
	Host           string         `gorm:"-" json:"host"`
	Favourited     *bool          `gorm:"-" json:"favourited,omitempty"`
	Images         []ImageSummary `gorm:"-" json:"images"`
}
