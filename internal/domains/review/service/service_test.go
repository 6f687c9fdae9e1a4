package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"voyage/config"
	otelMocks "voyage/infras/otel/mocks"
	bookingMocks "voyage/internal/domains/booking/mocks"
	bookingModel "voyage/internal/domains/booking/model"
	hotelMocks "voyage/internal/domains/hotel/mocks"
	reviewMocks "voyage/internal/domains/review/mocks"
	"voyage/internal/domains/review/model"
	"voyage/internal/domains/review/model/dto"
	"voyage/internal/domains/review/service"
	roomTypeMocks "voyage/internal/domains/roomtype/mocks"
	rtModel "voyage/internal/domains/roomtype/model"
	cacheMocks "voyage/shared/cache/mocks"
	"voyage/shared/constant"
	"voyage/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	authorID  = "c0ffee00-0000-4000-8000-000000000001"
	hotelID   = "c0ffee00-0000-4000-8000-000000000002"
	bookingID = "c0ffee00-0000-4000-8000-000000000003"
	reviewID  = "c0ffee00-0000-4000-8000-000000000004"
	roomType  = "c0ffee00-0000-4000-8000-000000000005"
)

type deps struct {
	repo      *reviewMocks.MockReview
	hotels    *hotelMocks.MockHotel
	bookings  *bookingMocks.MockBooking
	roomTypes *roomTypeMocks.MockRoomType
	cache     *cacheMocks.MockRedisCache
	svc       service.Review
}

func newDeps(t *testing.T) *deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	d := &deps{
		repo:      reviewMocks.NewMockReview(ctrl),
		hotels:    hotelMocks.NewMockHotel(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		roomTypes: roomTypeMocks.NewMockRoomType(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d.svc = service.New(d.repo, d.hotels, d.bookings, d.roomTypes, cfg, d.cache, otelMocks.NewOtel())

	return d
}

func runInTx(_ context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}

func as(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func createRequest(booking *string) dto.CreateReviewRequest {
	return dto.CreateReviewRequest{
		HotelID:           hotelID,
		BookingID:         booking,
		OverallRating:     5,
		CleanlinessRating: 4,
		LocationRating:    5,
		ServiceRating:     4,
		ValueRating:       3,
		Title:             "Lovely stay",
		Content:           "Quiet rooms and a great breakfast.",
	}
}

func TestReviewService_Create(t *testing.T) {
	booking := bookingID
	ownBooking := bookingModel.Booking{ID: bookingID, UserID: authorID, RoomTypeID: roomType}

	tests := []struct {
		name         string
		req          dto.CreateReviewRequest
		setupMock    func(d *deps)
		wantVerified bool
		wantCode     int
		wantReason   string
	}{
		{
			name: "unverified review",
			req:  createRequest(nil),
			setupMock: func(d *deps) {
				d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "verified by the guest's own booking",
			req:  createRequest(&booking),
			setupMock: func(d *deps) {
				d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownBooking, nil)
				d.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rtModel.RoomType{ID: roomType, HotelID: hotelID}, nil)
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantVerified: true,
		},
		{
			name: "hotel missing",
			req:  createRequest(nil),
			setupMock: func(d *deps) {
				d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking of another guest",
			req:  createRequest(&booking),
			setupMock: func(d *deps) {
				d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(bookingModel.Booking{ID: bookingID, UserID: "someone-else", RoomTypeID: roomType}, nil)
			},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "booking at another hotel",
			req:  createRequest(&booking),
			setupMock: func(d *deps) {
				d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownBooking, nil)
				d.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rtModel.RoomType{ID: roomType, HotelID: "elsewhere"}, nil)
			},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "booking already reviewed",
			req:  createRequest(&booking),
			setupMock: func(d *deps) {
				d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownBooking, nil)
				d.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rtModel.RoomType{ID: roomType, HotelID: hotelID}, nil)
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantReason: failure.ReasonUniquenessConflict,
		},
		{
			name: "concurrent review of the same booking",
			req:  createRequest(&booking),
			setupMock: func(d *deps) {
				d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownBooking, nil)
				d.roomTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(rtModel.RoomType{ID: roomType, HotelID: hotelID}, nil)
				d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation, Constraint: model.ConstraintBookingID})
			},
			wantReason: failure.ReasonUniquenessConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.setupMock(d)

			res, err := d.svc.Create(as(authorID, constant.RoleUser), tt.req)

			switch {
			case tt.wantReason != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))
			case tt.wantCode != 0:
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantVerified, res.IsVerified)
				assert.Equal(t, authorID, res.UserID)
			}
		})
	}
}

func TestReviewService_UpdateAndDelete(t *testing.T) {
	stored := model.Review{ID: reviewID, HotelID: hotelID, UserID: authorID, OverallRating: 3}

	t.Run("author edits", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := d.svc.Update(as(authorID, constant.RoleUser), dto.UpdateReviewRequest{OverallRating: 4}, reviewID)

		assert.NoError(t, err)
	})

	t.Run("empty edit", func(t *testing.T) {
		d := newDeps(t)

		err := d.svc.Update(as(authorID, constant.RoleUser), dto.UpdateReviewRequest{}, reviewID)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("stranger edits", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		err := d.svc.Update(as("stranger", constant.RoleUser), dto.UpdateReviewRequest{Title: "fake"}, reviewID)

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("admin deletes votes, photos and review together", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		d.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
		gomock.InOrder(
			d.repo.EXPECT().DeleteVotesTx(gomock.Any(), gomock.Any(), reviewID).Return(nil),
			d.repo.EXPECT().DeletePhotosTx(gomock.Any(), gomock.Any(), reviewID).Return(nil),
			d.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		err := d.svc.Delete(as("moderator", constant.RoleAdmin), reviewID)

		assert.NoError(t, err)
	})

	t.Run("delete missing review", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Review{}, nil)

		err := d.svc.Delete(as(authorID, constant.RoleUser), reviewID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestReviewService_Vote(t *testing.T) {
	stored := model.Review{ID: reviewID, HotelID: hotelID, UserID: authorID}

	t.Run("helpful vote bumps the helpful counter", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		d.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
		d.repo.EXPECT().InsertVoteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.repo.EXPECT().IncrementCounterTx(gomock.Any(), gomock.Any(), reviewID, model.FieldHelpfulCount).Return(nil)

		err := d.svc.Vote(as("reader", constant.RoleUser), dto.VoteRequest{VoteType: model.VoteHelpful}, reviewID)

		assert.NoError(t, err)
	})

	t.Run("second vote by the same user", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		d.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
		d.repo.EXPECT().InsertVoteTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation, Constraint: model.ConstraintVote})

		err := d.svc.Vote(as("reader", constant.RoleUser), dto.VoteRequest{VoteType: model.VoteNotHelpful}, reviewID)

		require.Error(t, err)
		assert.ErrorIs(t, err, failure.ErrUniquenessConflict)
	})
}

func TestReviewService_Photos(t *testing.T) {
	stored := model.Review{ID: reviewID, HotelID: hotelID, UserID: authorID}
	req := dto.AddPhotoRequest{Image: "https://cdn.example.com/reviews/pool.jpg", Caption: "The pool at dusk"}

	t.Run("author adds a photo", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		d.repo.EXPECT().InsertPhoto(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, photo model.Photo) error {
				assert.Equal(t, reviewID, photo.ReviewID)
				assert.Equal(t, req.Image, photo.Image)
				assert.NotEmpty(t, photo.ID)

				return nil
			})

		res, err := d.svc.AddPhoto(as(authorID, constant.RoleUser), req, reviewID)

		require.NoError(t, err)
		assert.Equal(t, reviewID, res.ReviewID)
		assert.Equal(t, "The pool at dusk", res.Caption)
		assert.NotEmpty(t, res.UploadedAt)
	})

	t.Run("another guest cannot add a photo", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		_, err := d.svc.AddPhoto(as("stranger", constant.RoleUser), req, reviewID)

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("photo for a missing review", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Review{}, nil)

		_, err := d.svc.AddPhoto(as(authorID, constant.RoleUser), req, reviewID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("lists photos oldest first", func(t *testing.T) {
		d := newDeps(t)

		uploaded := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		d.repo.EXPECT().GetPhotos(gomock.Any(), reviewID).Return([]model.Photo{
			{ID: "p1", ReviewID: reviewID, Image: "https://cdn.example.com/a.jpg", UploadedAt: uploaded},
			{ID: "p2", ReviewID: reviewID, Image: "https://cdn.example.com/b.jpg", UploadedAt: uploaded.Add(time.Hour)},
		}, nil)

		res, err := d.svc.GetPhotos(context.Background(), reviewID)

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "p1", res[0].ID)
		assert.Equal(t, "p2", res[1].ID)
	})

	t.Run("repository error", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		d.repo.EXPECT().GetPhotos(gomock.Any(), reviewID).Return(nil, errors.New("connection reset"))

		_, err := d.svc.GetPhotos(context.Background(), reviewID)

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestReviewService_Summary(t *testing.T) {
	tests := []struct {
		name      string
		totals    model.Totals
		wantAvg   float64
		wantCount int64
	}{
		{
			name:    "no reviews",
			totals:  model.Totals{},
			wantAvg: 0,
		},
		{
			name: "three reviews",
			totals: model.Totals{
				ReviewCount:    3,
				OverallSum:     13,
				CleanlinessSum: 12,
				LocationSum:    15,
				ServiceSum:     11,
				ValueSum:       10,
			},
			wantAvg:   13.0 / 3,
			wantCount: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)

			d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
			d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			d.repo.EXPECT().Totals(gomock.Any(), hotelID).Return(tt.totals, nil)

			res, err := d.svc.Summary(context.Background(), hotelID)

			time.Sleep(10 * time.Millisecond)

			require.NoError(t, err)
			assert.Equal(t, hotelID, res.HotelID)
			assert.InDelta(t, tt.wantAvg, res.AverageRating, 1e-9)
			assert.Equal(t, tt.wantCount, res.ReviewCount)
		})
	}

	t.Run("unknown hotel", func(t *testing.T) {
		d := newDeps(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := d.svc.Summary(context.Background(), hotelID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
