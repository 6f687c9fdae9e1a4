package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	otelMocks "voyage/infras/otel/mocks"
	inventoryMocks "voyage/internal/domains/inventory/mocks"
	"voyage/internal/domains/inventory/model"
	"voyage/internal/domains/inventory/service"
	rtModel "voyage/internal/domains/roomtype/model"
	"voyage/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const roomTypeID = "0d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a"

func stay(t *testing.T) model.DateRange {
	t.Helper()

	r, err := model.NewDateRange(
		time.Date(2030, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2030, time.March, 13, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	return r
}

func TestInventoryService_AvailableUnits(t *testing.T) {
	suite := rtModel.RoomType{
		ID:            roomTypeID,
		PricePerNight: decimal.RequireFromString("210"),
		TotalRooms:    5,
	}

	tests := []struct {
		name          string
		setupMock     func(repo *inventoryMocks.MockInventory)
		wantAvailable int
		wantCode      int
	}{
		{
			name: "subtracts overlapping reservations",
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().GetRoomType(gomock.Any(), roomTypeID).Return(suite, nil)
				repo.EXPECT().ReservedUnits(gomock.Any(), roomTypeID, gomock.Any()).Return(3, nil)
			},
			wantAvailable: 2,
		},
		{
			name: "never reports a negative count",
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().GetRoomType(gomock.Any(), roomTypeID).Return(suite, nil)
				repo.EXPECT().ReservedUnits(gomock.Any(), roomTypeID, gomock.Any()).Return(7, nil)
			},
			wantAvailable: 0,
		},
		{
			name: "unknown room type",
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().GetRoomType(gomock.Any(), roomTypeID).Return(rtModel.RoomType{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "ledger read fails",
			setupMock: func(repo *inventoryMocks.MockInventory) {
				repo.EXPECT().GetRoomType(gomock.Any(), roomTypeID).Return(suite, nil)
				repo.EXPECT().ReservedUnits(gomock.Any(), roomTypeID, gomock.Any()).Return(0, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := inventoryMocks.NewMockInventory(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, otelMocks.NewOtel())

			res, err := svc.AvailableUnits(context.Background(), roomTypeID, stay(t))

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.AvailableUnits)
			assert.Equal(t, 5, res.TotalRooms)
			assert.Equal(t, 3, res.Nights)
			assert.Equal(t, "2030-03-10", res.CheckIn)
			assert.Equal(t, "2030-03-13", res.CheckOut)
			assert.Equal(t, "210.00", res.PricePerNight)
		})
	}
}

func TestInventoryService_AvailableUnitsTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := inventoryMocks.NewMockInventory(ctrl)
	svc := service.New(repo, otelMocks.NewOtel())

	roomType := rtModel.RoomType{ID: roomTypeID, TotalRooms: 4}

	repo.EXPECT().ReservedUnitsTx(gomock.Any(), gomock.Any(), roomTypeID, gomock.Any()).Return(1, nil)

	available, err := svc.AvailableUnitsTx(context.Background(), nil, roomType, stay(t))

	require.NoError(t, err)
	assert.Equal(t, 3, available)

	repo.EXPECT().ReservedUnitsTx(gomock.Any(), gomock.Any(), roomTypeID, gomock.Any()).Return(0, errors.New("deadlock detected"))

	_, err = svc.AvailableUnitsTx(context.Background(), nil, roomType, stay(t))

	assert.Error(t, err)
}
