package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	otelMocks "voyage/infras/otel/mocks"
	cascadeMocks "voyage/internal/domains/cascade/mocks"
	"voyage/internal/domains/cascade/model"
	"voyage/internal/domains/cascade/service"
	cacheMocks "voyage/shared/cache/mocks"
	"voyage/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const rootID = "2c9e6a1f-8b3d-4e5a-9c7b-1d2e3f4a5b6c"

func runInTx(_ context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}

func TestCascadeService_DeleteRoomType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cascadeMocks.NewMockCascade(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	rows := map[string]int64{
		model.LevelReviewBookings: 1,
		model.LevelPayments:       2,
		model.LevelBookings:       3,
		model.LevelRoomAmenities:  4,
		model.LevelRoomTypes:      1,
	}

	var walked []string

	repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), model.RootRoomType, rootID).Return(true, nil)
	repo.EXPECT().
		DeleteTx(gomock.Any(), gomock.Any(), model.RootRoomType, gomock.Any(), rootID).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _, level, _ string) (int64, error) {
			walked = append(walked, level)

			return rows[level], nil
		}).
		Times(len(rows))
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).Times(6)

	svc := service.New(repo, mockCache, otelMocks.NewOtel())

	res, err := svc.DeleteRoomType(context.Background(), rootID)

	require.NoError(t, err)

	order, _ := model.Levels(model.RootRoomType)
	assert.Equal(t, order, walked)
	assert.Equal(t, model.RootRoomType, res.Root)
	assert.Equal(t, rootID, res.ID)
	require.Len(t, res.Deleted, len(rows))

	for _, level := range res.Deleted {
		assert.Equal(t, rows[level.Level], level.Rows)
	}
}

func TestCascadeService_DeleteHotel_MissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cascadeMocks.NewMockCascade(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), model.RootHotel, rootID).Return(false, nil)

	svc := service.New(repo, mockCache, otelMocks.NewOtel())

	_, err := svc.DeleteHotel(context.Background(), rootID)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestCascadeService_DeleteDestination_LevelFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := cascadeMocks.NewMockCascade(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	boom := errors.New("foreign key violation")

	repo.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
	repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), model.RootDestination, rootID).Return(true, nil)
	gomock.InOrder(
		repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), model.RootDestination, model.LevelReviewVotes, rootID).Return(int64(5), nil),
		repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), model.RootDestination, model.LevelReviewPhotos, rootID).Return(int64(2), nil),
		repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), model.RootDestination, model.LevelReviews, rootID).Return(int64(0), boom),
	)

	svc := service.New(repo, mockCache, otelMocks.NewOtel())

	_, err := svc.DeleteDestination(context.Background(), rootID)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var levelErr *model.LevelError
	require.ErrorAs(t, err, &levelErr)
	assert.Equal(t, model.LevelReviews, levelErr.Level)
	assert.Equal(t, model.RootDestination, levelErr.Root)
}
