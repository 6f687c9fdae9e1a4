package model

import "voyage/shared/model"

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID       = "id"
	FieldName     = "name"
	FieldIcon     = "icon"
	FieldCategory = "category"

	ConstraintName = "amenities_name_key"
)

type Amenity struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Icon     string `db:"icon"`
	Category string `db:"category"`
	model.Metadata
}

func (Amenity) GetDefaultOrder() string {
	return "amenities.category ASC, amenities.name ASC"
}
