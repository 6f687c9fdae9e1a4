package dto

import (
	"voyage/internal/domains/amenity/model"
	"voyage/shared"
	gModel "voyage/shared/model"
	"voyage/shared/timezone"

	"github.com/google/uuid"
)

type CreateAmenityRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Icon     string `json:"icon"     validate:"omitempty,max=50"`
	Category string `json:"category" validate:"required,max=50"`
}

func (c *CreateAmenityRequest) ToModel(user string) model.Amenity {
	return model.Amenity{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Icon:     c.Icon,
		Category: c.Category,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateAmenityRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Icon     string `db:"icon"     json:"icon"     validate:"omitempty,max=50"`
	Category string `db:"category" json:"category" validate:"omitempty,max=50"`
}

type AmenityResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

func (r *AmenityResponse) FromModel(model model.Amenity) {
	r.ID = model.ID
	r.Name = model.Name
	r.Icon = model.Icon
	r.Category = model.Category
}

type GetAmenitiesResponse struct {
	Amenities []AmenityResponse `json:"amenities"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetAmenitiesResponse) FromModels(models []model.Amenity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Amenities = FromModels(models)
}

// FromModels converts an unpaginated amenity list, such as the amenities of a hotel.
func FromModels(models []model.Amenity) []AmenityResponse {
	res := make([]AmenityResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// LinkRequest attaches an existing amenity to a hotel or a room type.
type LinkRequest struct {
	AmenityID string `json:"amenity_id" validate:"required,uuid"`
}
