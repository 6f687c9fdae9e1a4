package dto

import (
	"voyage/internal/domains/destination/model"
	"voyage/shared"
	gDto "voyage/shared/dto"
	gModel "voyage/shared/model"
	"voyage/shared/timezone"

	"github.com/google/uuid"
)

type CreateDestinationRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Country     string `json:"country"     validate:"required,max=100"`
	City        string `json:"city"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty"`
	Image       string `json:"image"       validate:"omitempty,url,max=500"`
	IsFeatured  bool   `json:"is_featured"`
}

func (c *CreateDestinationRequest) ToModel(user string) model.Destination {
	return model.Destination{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Country:     c.Country,
		City:        c.City,
		Description: c.Description,
		Image:       c.Image,
		IsFeatured:  c.IsFeatured,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateDestinationRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=200"`
	Country     string `db:"country"     json:"country"     validate:"omitempty,max=100"`
	City        string `db:"city"        json:"city"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,url,max=500"`
	IsFeatured  *bool  `db:"is_featured" json:"is_featured" validate:"omitempty"`
}

type DestinationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsFeatured  bool   `json:"is_featured"`
	gDto.Metadata
}

func (r *DestinationResponse) FromModel(model model.Destination) {
	r.ID = model.ID
	r.Name = model.Name
	r.Country = model.Country
	r.City = model.City
	r.Description = model.Description
	r.Image = model.Image
	r.IsFeatured = model.IsFeatured
	r.Metadata.FromModel(model.Metadata)
}

type GetDestinationsResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetDestinationsResponse) FromModels(models []model.Destination, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Destinations = make([]DestinationResponse, len(models))
	for i, mod := range models {
		r.Destinations[i].FromModel(mod)
	}
}
