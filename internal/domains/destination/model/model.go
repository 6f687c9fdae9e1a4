package model

import "voyage/shared/model"

const (
	TableName  = "destinations"
	EntityName = "destination"

	FieldID          = "id"
	FieldName        = "name"
	FieldCountry     = "country"
	FieldCity        = "city"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldIsFeatured  = "is_featured"
)

type Destination struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Country     string `db:"country"`
	City        string `db:"city"`
	Description string `db:"description"`
	Image       string `db:"image"`
	IsFeatured  bool   `db:"is_featured"`
	model.Metadata
}

func (Destination) GetDefaultOrder() string {
	return "destinations.is_featured DESC, destinations.name ASC"
}
