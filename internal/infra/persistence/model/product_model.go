package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID                int64               `gorm:"primaryKey;autoIncrement"`
	Name              string              `gorm:"type:varchar(255);not null"`
	Slug              string              `gorm:"type:varchar(255);not null;uniqueIndex"`
	Price             decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	DiscountKind      *string             `gorm:"type:varchar(20)"`
	DiscountAmount    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Status            string              `gorm:"type:varchar(20);not null;default:active"`
	CategoryID        *int64              `gorm:"index"`
	BrandID           *int64              `gorm:"index"`
	VariantsAggregate datatypes.JSON
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductRequiredAttributeModel is the GORM-specific struct for the 'product_required_attributes' table.
type ProductRequiredAttributeModel struct {
	ProductID    int64           `gorm:"primaryKey;autoIncrement:false"`
	AttributeID  int64           `gorm:"primaryKey;autoIncrement:false;index"`
	DefaultValue *string         `gorm:"type:varchar(255)"`
	Product      *ProductModel   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Attribute    *AttributeModel `gorm:"foreignKey:AttributeID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductRequiredAttributeModel) TableName() string {
	return "product_required_attributes"
}

// RequiredAttributeRow is the scan target for required attributes joined with their names.
type RequiredAttributeRow struct {
	ProductID     int64
	AttributeID   int64
	AttributeName string
	DefaultValue  *string
}
