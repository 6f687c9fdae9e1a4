package model

import (
	"time"

	"voyage/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID              = "id"
	FieldHotelID         = "hotel_id"
	FieldUserID          = "user_id"
	FieldBookingID       = "booking_id"
	FieldIsVerified      = "is_verified"
	FieldHelpfulCount    = "helpful_count"
	FieldNotHelpfulCount = "not_helpful_count"

	ConstraintBookingID = "reviews_booking_id_key"
)

const (
	VoteTableName  = "review_votes"
	VoteEntityName = "review_vote"

	FieldVoteReviewID = "review_id"
	FieldVoteUserID   = "user_id"

	ConstraintVote = "review_votes_review_id_user_id_key"
)

const (
	PhotoTableName  = "review_photos"
	PhotoEntityName = "review_photo"

	FieldPhotoReviewID = "review_id"
)

const (
	VoteHelpful    = "helpful"
	VoteNotHelpful = "not_helpful"
)

type Review struct {
	ID                string  `db:"id"`
	HotelID           string  `db:"hotel_id"`
	UserID            string  `db:"user_id"`
	BookingID         *string `db:"booking_id"`
	OverallRating     int     `db:"overall_rating"`
	CleanlinessRating int     `db:"cleanliness_rating"`
	LocationRating    int     `db:"location_rating"`
	ServiceRating     int     `db:"service_rating"`
	ValueRating       int     `db:"value_rating"`
	Title             string  `db:"title"`
	Content           string  `db:"content"`
	IsVerified        bool    `db:"is_verified"`
	HelpfulCount      int     `db:"helpful_count"`
	NotHelpfulCount   int     `db:"not_helpful_count"`
	model.Metadata
}

func (Review) GetDefaultOrder() string {
	return "reviews.created_at DESC"
}

type Vote struct {
	ID        string    `db:"id"`
	ReviewID  string    `db:"review_id"`
	UserID    string    `db:"user_id"`
	VoteType  string    `db:"vote_type"`
	CreatedAt time.Time `db:"created_at"`
}

// Photo is an image URL attached to a review, listed oldest first.
type Photo struct {
	ID         string    `db:"id"`
	ReviewID   string    `db:"review_id"`
	Image      string    `db:"image"`
	Caption    string    `db:"caption"`
	UploadedAt time.Time `db:"uploaded_at"`
}

func (Photo) GetDefaultOrder() string {
	return "review_photos.uploaded_at ASC"
}

// CounterField is the review column a vote of this type increments.
func (v Vote) CounterField() string {
	if v.VoteType == VoteHelpful {
		return FieldHelpfulCount
	}

	return FieldNotHelpfulCount
}

// Totals is the per-hotel aggregate read at query time.
type Totals struct {
	ReviewCount    int64 `db:"review_count"`
	OverallSum     int64 `db:"overall_sum"`
	CleanlinessSum int64 `db:"cleanliness_sum"`
	LocationSum    int64 `db:"location_sum"`
	ServiceSum     int64 `db:"service_sum"`
	ValueSum       int64 `db:"value_sum"`
}

type Summary struct {
	AverageRating     float64
	CleanlinessRating float64
	LocationRating    float64
	ServiceRating     float64
	ValueRating       float64
	ReviewCount       int64
}

// Summary averages each rating. A hotel without reviews averages exactly zero.
func (t Totals) Summary() Summary {
	return Summary{
		AverageRating:     t.mean(t.OverallSum),
		CleanlinessRating: t.mean(t.CleanlinessSum),
		LocationRating:    t.mean(t.LocationSum),
		ServiceRating:     t.mean(t.ServiceSum),
		ValueRating:       t.mean(t.ValueSum),
		ReviewCount:       t.ReviewCount,
	}
}

func (t Totals) mean(sum int64) float64 {
	if t.ReviewCount == 0 {
		return 0
	}

	return float64(sum) / float64(t.ReviewCount)
}
