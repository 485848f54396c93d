package model

import "time"

// AttributeModel is the GORM-specific struct for the 'attributes' table.
type AttributeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null;uniqueIndex"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttributeModel) TableName() string {
	return "attributes"
}

// AttributeValueModel is the GORM-specific struct for the 'attribute_values' table.
// The composite unique index is what keeps find-or-create race free.
type AttributeValueModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	AttributeID int64           `gorm:"not null;uniqueIndex:idx_attribute_values_attribute_value,priority:1"`
	Value       string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_attribute_values_attribute_value,priority:2"`
	Attribute   *AttributeModel `gorm:"foreignKey:AttributeID;constraint:OnDelete:RESTRICT"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttributeValueModel) TableName() string {
	return "attribute_values"
}
