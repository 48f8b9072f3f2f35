package sqlstore

import "time"

type placeRow struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Name      string    `gorm:"type:varchar(200);not null;index"`
	Address   string    `gorm:"type:varchar(300);not null"`
	Category  string    `gorm:"type:varchar(100)"`
	Latitude  float64   `gorm:"not null;index:place_location,priority:1"`
	Longitude float64   `gorm:"not null;index:place_location,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
}

func (placeRow) TableName() string { return "places" }

type reviewRow struct {
	ID           string    `gorm:"primaryKey;type:varchar(64)"`
	PlaceID      string    `gorm:"type:varchar(64);not null;index:review_place_created,priority:1"`
	Place        placeRow  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorName   string    `gorm:"type:varchar(20);not null"`
	Rating       int       `gorm:"not null"`
	Content      string    `gorm:"type:varchar(2000);not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	CreatedAt    time.Time `gorm:"not null;index:review_place_created,priority:2"`
}

func (reviewRow) TableName() string { return "reviews" }
