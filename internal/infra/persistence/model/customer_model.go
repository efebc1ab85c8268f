package model

import (
	"time"

	"gorm.io/datatypes"
)

// CustomerModel mirrors the 'customers' table, the relational twin of users/{uid}.
// The aggregate columns are maintained by order creation.
type CustomerModel struct {
	UID            string                                   `gorm:"type:varchar(128);primaryKey"`
	Email          string                                   `gorm:"type:varchar(255);index"`
	DisplayName    string                                   `gorm:"type:varchar(255)"`
	IsAdmin        bool                                     `gorm:"not null;default:false"`
	DefaultAddress *datatypes.JSONType[ShippingAddressModel] `gorm:"type:jsonb"`
	OrderCount     int64                                    `gorm:"not null;default:0"`
	TotalSpent     float64                                  `gorm:"type:double precision;not null;default:0"`
	LastOrderAt    *time.Time                               `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
