package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"voyage/config"
	otelMocks "voyage/infras/otel/mocks"
	amenityMocks "voyage/internal/domains/amenity/mocks"
	amenityModel "voyage/internal/domains/amenity/model"
	amenityDto "voyage/internal/domains/amenity/model/dto"
	destinationMocks "voyage/internal/domains/destination/mocks"
	hotelMocks "voyage/internal/domains/hotel/mocks"
	"voyage/internal/domains/hotel/model"
	"voyage/internal/domains/hotel/model/dto"
	"voyage/internal/domains/hotel/service"
	reviewMocks "voyage/internal/domains/review/mocks"
	reviewDto "voyage/internal/domains/review/model/dto"
	cacheMocks "voyage/shared/cache/mocks"
	"voyage/shared/constant"
	"voyage/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	destinationID = "11111111-2222-4333-8444-555555555555"
	hotelID       = "66666666-7777-4888-9999-aaaaaaaaaaaa"
	amenityID     = "bbbbbbbb-cccc-4ddd-8eee-ffffffffffff"
)

type deps struct {
	repo         *hotelMocks.MockHotel
	destinations *destinationMocks.MockDestination
	amenities    *amenityMocks.MockAmenity
	reviews      *reviewMocks.MockReviewService
	cache        *cacheMocks.MockRedisCache
	svc          service.Hotel
}

func newDeps(t *testing.T) *deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	d := &deps{
		repo:         hotelMocks.NewMockHotel(ctrl),
		destinations: destinationMocks.NewMockDestination(ctrl),
		amenities:    amenityMocks.NewMockAmenity(ctrl),
		reviews:      reviewMocks.NewMockReviewService(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d.svc = service.New(d.repo, d.destinations, d.amenities, d.reviews, cfg, d.cache, otelMocks.NewOtel())

	return d
}

func adminContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func TestHotelService_Create(t *testing.T) {
	outOfRange := decimal.RequireFromString("91.5")

	tests := []struct {
		name      string
		req       dto.CreateHotelRequest
		setupMock func(d *deps)
		wantCode  int
	}{
		{
			name: "applies default check-in and check-out times",
			req: dto.CreateHotelRequest{
				DestinationID: destinationID,
				Name:          "Harbour House",
				Address:       "1 Quay Street",
				StarRating:    4,
				HotelType:     model.TypeHotel,
			},
			setupMock: func(d *deps) {
				d.destinations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, hotel model.Hotel) error {
						assert.Equal(t, model.DefaultCheckInTime, hotel.CheckInTime)
						assert.Equal(t, model.DefaultCheckOutTime, hotel.CheckOutTime)
						assert.True(t, hotel.IsActive)

						return nil
					})
			},
		},
		{
			name: "destination missing",
			req:  dto.CreateHotelRequest{DestinationID: destinationID, Name: "Nowhere Inn"},
			setupMock: func(d *deps) {
				d.destinations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "latitude out of range",
			req:       dto.CreateHotelRequest{DestinationID: destinationID, Latitude: &outOfRange},
			setupMock: func(*deps) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "insert fails",
			req:  dto.CreateHotelRequest{DestinationID: destinationID, Name: "Harbour House"},
			setupMock: func(d *deps) {
				d.destinations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.setupMock(d)

			_, err := d.svc.Create(adminContext(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestHotelService_Get(t *testing.T) {
	t.Run("assembles live price, images, amenities and rating", func(t *testing.T) {
		d := newDeps(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: hotelID, Name: "Harbour House"}, nil)
		d.repo.EXPECT().StartingPrice(gomock.Any(), hotelID).Return(decimal.RequireFromString("89.9"), nil)
		d.repo.EXPECT().GetImages(gomock.Any(), hotelID).Return([]model.Image{{ID: "img-1", HotelID: hotelID, IsPrimary: true}}, nil)
		d.repo.EXPECT().GetAmenities(gomock.Any(), hotelID).Return([]amenityModel.Amenity{{ID: amenityID, Name: "Pool"}}, nil)
		d.reviews.EXPECT().Summary(gomock.Any(), hotelID).Return(reviewDto.SummaryResponse{HotelID: hotelID, AverageRating: 4.5, ReviewCount: 2}, nil)

		res, err := d.svc.Get(adminContext(), hotelID)

		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "89.90", res.StartingPrice)
		require.Len(t, res.Images, 1)
		require.Len(t, res.Amenities, 1)
		require.NotNil(t, res.Rating)
		assert.InDelta(t, 4.5, res.Rating.AverageRating, 1e-9)
	})

	t.Run("hotel missing", func(t *testing.T) {
		d := newDeps(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		_, err := d.svc.Get(adminContext(), hotelID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHotelService_AddImage(t *testing.T) {
	t.Run("primary image demotes the previous one", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error { return fn(nil) })
		gomock.InOrder(
			d.repo.EXPECT().ClearPrimaryImageTx(gomock.Any(), gomock.Any(), hotelID).Return(nil),
			d.repo.EXPECT().InsertImageTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		res, err := d.svc.AddImage(adminContext(), dto.AddImageRequest{Image: "https://cdn.example.com/a.jpg", IsPrimary: true}, hotelID)

		require.NoError(t, err)
		assert.True(t, res.IsPrimary)
	})

	t.Run("secondary image keeps the primary", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error { return fn(nil) })
		d.repo.EXPECT().InsertImageTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := d.svc.AddImage(adminContext(), dto.AddImageRequest{Image: "https://cdn.example.com/b.jpg"}, hotelID)

		assert.NoError(t, err)
	})
}

func TestHotelService_Amenities(t *testing.T) {
	link := model.Amenity{HotelID: hotelID, AmenityID: amenityID}

	t.Run("attach", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.amenities.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().ExistAmenity(gomock.Any(), link).Return(false, nil)
		d.repo.EXPECT().AttachAmenity(gomock.Any(), link).Return(nil)

		assert.NoError(t, d.svc.AttachAmenity(adminContext(), amenityDto.LinkRequest{AmenityID: amenityID}, hotelID))
	})

	t.Run("attach to unknown hotel", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := d.svc.AttachAmenity(adminContext(), amenityDto.LinkRequest{AmenityID: amenityID}, hotelID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("detach missing link", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().ExistAmenity(gomock.Any(), link).Return(false, nil)

		err := d.svc.DetachAmenity(adminContext(), hotelID, amenityID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
