package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductVariantModel is the GORM-specific struct for the 'product_variants' table.
type ProductVariantModel struct {
	ID        int64             `gorm:"primaryKey;autoIncrement"`
	ProductID int64             `gorm:"not null;index"`
	Product   *ProductModel     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Name      string            `gorm:"type:varchar(255);not null"`
	SKU       string            `gorm:"column:sku;type:varchar(100);not null;uniqueIndex"`
	Price     decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Stock     int               `gorm:"not null;check:chk_product_variants_stock,stock >= 0"`
	Image     string            `gorm:"type:varchar(512)"`
	IsDefault bool              `gorm:"not null;index"`
	Status    string            `gorm:"type:varchar(20);not null"`
	Metadata  datatypes.JSONMap
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ProductVariantValueModel is the GORM-specific struct for the 'product_variant_values' join table.
type ProductVariantValueModel struct {
	VariantID        int64                `gorm:"primaryKey;autoIncrement:false"`
	AttributeValueID int64                `gorm:"primaryKey;autoIncrement:false;index"`
	Variant          *ProductVariantModel `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	AttributeValue   *AttributeValueModel `gorm:"foreignKey:AttributeValueID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantValueModel) TableName() string {
	return "product_variant_values"
}

// VariantAttributeRow is the scan target for the variant attribute join query.
type VariantAttributeRow struct {
	VariantID        int64
	AttributeID      int64
	AttributeName    string
	AttributeValueID int64
	Value            string
}

// Catalog lists every catalog model in dependency order for migrations.
func Catalog() []any {
	return []any{
		&ProductModel{},
		&AttributeModel{},
		&AttributeValueModel{},
		&ProductRequiredAttributeModel{},
		&ProductVariantModel{},
		&ProductVariantValueModel{},
	}
}
