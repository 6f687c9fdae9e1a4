package dto

import (
	"voyage/internal/domains/review/model"
	"voyage/shared"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	gModel "voyage/shared/model"
	"voyage/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	HotelID           string  `json:"hotel_id"           validate:"required,uuid"`
	BookingID         *string `json:"booking_id"         validate:"omitempty,uuid"`
	OverallRating     int     `json:"overall_rating"     validate:"required,gte=1,lte=5"`
	CleanlinessRating int     `json:"cleanliness_rating" validate:"required,gte=1,lte=5"`
	LocationRating    int     `json:"location_rating"    validate:"required,gte=1,lte=5"`
	ServiceRating     int     `json:"service_rating"     validate:"required,gte=1,lte=5"`
	ValueRating       int     `json:"value_rating"       validate:"required,gte=1,lte=5"`
	Title             string  `json:"title"              validate:"omitempty,max=200"`
	Content           string  `json:"content"            validate:"required"`
}

// ToModel marks the review verified exactly when it is tied to a booking.
func (c *CreateReviewRequest) ToModel(user string) model.Review {
	return model.Review{
		ID:                uuid.NewString(),
		HotelID:           c.HotelID,
		UserID:            user,
		BookingID:         c.BookingID,
		OverallRating:     c.OverallRating,
		CleanlinessRating: c.CleanlinessRating,
		LocationRating:    c.LocationRating,
		ServiceRating:     c.ServiceRating,
		ValueRating:       c.ValueRating,
		Title:             c.Title,
		Content:           c.Content,
		IsVerified:        c.BookingID != nil,
		Metadata:          gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateReviewRequest carries no verification or counter columns; those never change through an edit.
type UpdateReviewRequest struct {
	OverallRating     int    `db:"overall_rating"     json:"overall_rating"     validate:"omitempty,gte=1,lte=5"`
	CleanlinessRating int    `db:"cleanliness_rating" json:"cleanliness_rating" validate:"omitempty,gte=1,lte=5"`
	LocationRating    int    `db:"location_rating"    json:"location_rating"    validate:"omitempty,gte=1,lte=5"`
	ServiceRating     int    `db:"service_rating"     json:"service_rating"     validate:"omitempty,gte=1,lte=5"`
	ValueRating       int    `db:"value_rating"       json:"value_rating"       validate:"omitempty,gte=1,lte=5"`
	Title             string `db:"title"              json:"title"              validate:"omitempty,max=200"`
	Content           string `db:"content"            json:"content"`
}

type VoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=helpful not_helpful"`
}

func (v *VoteRequest) ToModel(reviewID, user string) model.Vote {
	return model.Vote{
		ID:        uuid.NewString(),
		ReviewID:  reviewID,
		UserID:    user,
		VoteType:  v.VoteType,
		CreatedAt: timezone.Now(),
	}
}

type AddPhotoRequest struct {
	Image   string `json:"image"   validate:"required,url,max=500"`
	Caption string `json:"caption" validate:"omitempty,max=200"`
}

func (a *AddPhotoRequest) ToModel(reviewID string) model.Photo {
	return model.Photo{
		ID:         uuid.NewString(),
		ReviewID:   reviewID,
		Image:      a.Image,
		Caption:    a.Caption,
		UploadedAt: timezone.Now(),
	}
}

type PhotoResponse struct {
	ID         string `json:"id"`
	ReviewID   string `json:"review_id"`
	Image      string `json:"image"`
	Caption    string `json:"caption"`
	UploadedAt string `json:"uploaded_at"`
}

func (r *PhotoResponse) FromModel(model model.Photo) {
	r.ID = model.ID
	r.ReviewID = model.ReviewID
	r.Image = model.Image
	r.Caption = model.Caption
	r.UploadedAt = model.UploadedAt.Format(constant.DateFormat)
}

func PhotosFromModels(models []model.Photo) []PhotoResponse {
	res := make([]PhotoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type ReviewResponse struct {
	ID                string  `json:"id"`
	HotelID           string  `json:"hotel_id"`
	UserID            string  `json:"user_id"`
	BookingID         *string `json:"booking_id"`
	OverallRating     int     `json:"overall_rating"`
	CleanlinessRating int     `json:"cleanliness_rating"`
	LocationRating    int     `json:"location_rating"`
	ServiceRating     int     `json:"service_rating"`
	ValueRating       int     `json:"value_rating"`
	Title             string  `json:"title"`
	Content           string  `json:"content"`
	IsVerified        bool    `json:"is_verified"`
	HelpfulCount      int     `json:"helpful_count"`
	NotHelpfulCount   int     `json:"not_helpful_count"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.UserID = model.UserID
	r.BookingID = model.BookingID
	r.OverallRating = model.OverallRating
	r.CleanlinessRating = model.CleanlinessRating
	r.LocationRating = model.LocationRating
	r.ServiceRating = model.ServiceRating
	r.ValueRating = model.ValueRating
	r.Title = model.Title
	r.Content = model.Content
	r.IsVerified = model.IsVerified
	r.HelpfulCount = model.HelpfulCount
	r.NotHelpfulCount = model.NotHelpfulCount
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}

// SummaryResponse carries unrounded means, 0 for a hotel without reviews.
type SummaryResponse struct {
	HotelID           string  `json:"hotel_id"`
	AverageRating     float64 `json:"average_rating"`
	CleanlinessRating float64 `json:"cleanliness_rating"`
	LocationRating    float64 `json:"location_rating"`
	ServiceRating     float64 `json:"service_rating"`
	ValueRating       float64 `json:"value_rating"`
	ReviewCount       int64   `json:"review_count"`
}

func (r *SummaryResponse) FromModel(hotelID string, summary model.Summary) {
	r.HotelID = hotelID
	r.AverageRating = summary.AverageRating
	r.CleanlinessRating = summary.CleanlinessRating
	r.LocationRating = summary.LocationRating
	r.ServiceRating = summary.ServiceRating
	r.ValueRating = summary.ValueRating
	r.ReviewCount = summary.ReviewCount
}
