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
	hotelMocks "voyage/internal/domains/hotel/mocks"
	inventoryMocks "voyage/internal/domains/inventory/mocks"
	roomTypeMocks "voyage/internal/domains/roomtype/mocks"
	"voyage/internal/domains/roomtype/model"
	"voyage/internal/domains/roomtype/model/dto"
	"voyage/internal/domains/roomtype/service"
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
	hotelID    = "7d3f0c1a-2b4e-4c6d-8e9f-0a1b2c3d4e5f"
	roomTypeID = "8e4a1d2b-3c5f-4d7e-9f0a-1b2c3d4e5f6a"
	amenityID  = "9f5b2e3c-4d6a-4e8f-a01b-2c3d4e5f6a7b"
)

type deps struct {
	repo      *roomTypeMocks.MockRoomType
	hotels    *hotelMocks.MockHotel
	amenities *amenityMocks.MockAmenity
	inventory *inventoryMocks.MockInventory
	cache     *cacheMocks.MockRedisCache
	svc       service.RoomType
}

func newDeps(t *testing.T) *deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	d := &deps{
		repo:      roomTypeMocks.NewMockRoomType(ctrl),
		hotels:    hotelMocks.NewMockHotel(ctrl),
		amenities: amenityMocks.NewMockAmenity(ctrl),
		inventory: inventoryMocks.NewMockInventory(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d.svc = service.New(d.repo, d.hotels, d.amenities, d.inventory, cfg, d.cache, otelMocks.NewOtel())

	return d
}

func adminContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func runInTx(_ context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}

func TestRoomTypeService_Create(t *testing.T) {
	req := dto.CreateRoomTypeRequest{
		HotelID:       hotelID,
		Name:          "Garden Suite",
		MaxOccupancy:  3,
		PricePerNight: "249.5",
		TotalRooms:    6,
	}

	t.Run("stores the price as fixed point", func(t *testing.T) {
		d := newDeps(t)

		d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, roomType model.RoomType) error {
				assert.True(t, decimal.RequireFromString("249.50").Equal(roomType.PricePerNight))

				return nil
			})

		res, err := d.svc.Create(adminContext(), req)

		require.NoError(t, err)
		assert.Equal(t, "249.50", res.PricePerNight)
		assert.Equal(t, hotelID, res.HotelID)
	})

	t.Run("hotel missing", func(t *testing.T) {
		d := newDeps(t)

		d.hotels.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := d.svc.Create(adminContext(), req)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomTypeService_Get(t *testing.T) {
	d := newDeps(t)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{
		ID:            roomTypeID,
		HotelID:       hotelID,
		PricePerNight: decimal.RequireFromString("120"),
	}, nil)
	d.repo.EXPECT().GetAmenities(gomock.Any(), roomTypeID).Return([]amenityModel.Amenity{{ID: amenityID, Name: "Balcony"}}, nil)

	res, err := d.svc.Get(adminContext(), roomTypeID)

	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, "120.00", res.PricePerNight)
	require.Len(t, res.Amenities, 1)
	assert.Equal(t, "Balcony", res.Amenities[0].Name)
}

func TestRoomTypeService_Update(t *testing.T) {
	intPtr := func(v int) *int { return &v }
	stored := model.RoomType{ID: roomTypeID, HotelID: hotelID, TotalRooms: 10}

	tests := []struct {
		name      string
		req       dto.UpdateRoomTypeRequest
		setupMock func(d *deps)
		wantCode  int
	}{
		{
			name: "rename does not look at reservations",
			req:  dto.UpdateRoomTypeRequest{Name: "Sea View Suite"},
			setupMock: func(d *deps) {
				d.inventory.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				d.inventory.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), roomTypeID).Return(stored, nil)
				d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "shrinks above the reserved peak",
			req:  dto.UpdateRoomTypeRequest{TotalRooms: intPtr(6)},
			setupMock: func(d *deps) {
				d.inventory.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				d.inventory.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), roomTypeID).Return(stored, nil)
				d.inventory.EXPECT().PeakReservedTx(gomock.Any(), gomock.Any(), roomTypeID, gomock.Any()).Return(6, nil)
				d.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "shrinks below the reserved peak",
			req:  dto.UpdateRoomTypeRequest{TotalRooms: intPtr(5)},
			setupMock: func(d *deps) {
				d.inventory.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				d.inventory.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), roomTypeID).Return(stored, nil)
				d.inventory.EXPECT().PeakReservedTx(gomock.Any(), gomock.Any(), roomTypeID, gomock.Any()).Return(6, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "empty update",
			req:       dto.UpdateRoomTypeRequest{},
			setupMock: func(*deps) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room type missing",
			req:  dto.UpdateRoomTypeRequest{Name: "Ghost"},
			setupMock: func(d *deps) {
				d.inventory.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				d.inventory.EXPECT().LockRoomTypeTx(gomock.Any(), gomock.Any(), roomTypeID).Return(model.RoomType{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps(t)
			tt.setupMock(d)

			err := d.svc.Update(adminContext(), tt.req, roomTypeID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomTypeService_Amenities(t *testing.T) {
	link := model.Amenity{RoomTypeID: roomTypeID, AmenityID: amenityID}

	t.Run("attach", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.amenities.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().ExistAmenity(gomock.Any(), link).Return(false, nil)
		d.repo.EXPECT().AttachAmenity(gomock.Any(), link).Return(nil)

		assert.NoError(t, d.svc.AttachAmenity(adminContext(), amenityDto.LinkRequest{AmenityID: amenityID}, roomTypeID))
	})

	t.Run("attach twice", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.amenities.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.repo.EXPECT().ExistAmenity(gomock.Any(), link).Return(true, nil)

		err := d.svc.AttachAmenity(adminContext(), amenityDto.LinkRequest{AmenityID: amenityID}, roomTypeID)

		assert.ErrorIs(t, err, failure.ErrUniquenessConflict)
	})

	t.Run("attach unknown amenity", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		d.amenities.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := d.svc.AttachAmenity(adminContext(), amenityDto.LinkRequest{AmenityID: amenityID}, roomTypeID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("detach", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().ExistAmenity(gomock.Any(), link).Return(true, nil)
		d.repo.EXPECT().DetachAmenity(gomock.Any(), link).Return(nil)

		assert.NoError(t, d.svc.DetachAmenity(adminContext(), roomTypeID, amenityID))
	})

	t.Run("detach missing link", func(t *testing.T) {
		d := newDeps(t)

		d.repo.EXPECT().ExistAmenity(gomock.Any(), link).Return(false, nil)

		err := d.svc.DetachAmenity(adminContext(), roomTypeID, amenityID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
