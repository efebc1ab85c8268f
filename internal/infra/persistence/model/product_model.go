package model

import (
	"time"

	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table of store-managed products.
type ProductModel struct {
	ID                 string                       `gorm:"type:varchar(36);primaryKey"`
	Title              string                       `gorm:"type:varchar(255);not null"`
	Description        string                       `gorm:"type:text"`
	Category           string                       `gorm:"type:varchar(100);index"`
	Brand              string                       `gorm:"type:varchar(100)"`
	Price              float64                      `gorm:"type:double precision;not null"`
	DiscountPercentage float64                      `gorm:"type:double precision;not null;default:0"`
	Rating             float64                      `gorm:"type:double precision;not null;default:0"`
	Stock              int                          `gorm:"not null;default:0"`
	Thumbnail          string                       `gorm:"type:text"`
	Images             datatypes.JSONType[[]string] `gorm:"type:jsonb"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
