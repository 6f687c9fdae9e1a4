package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"voyage/infras/otel"
	"voyage/infras/postgres"
	bookingModel "voyage/internal/domains/booking/model"
	"voyage/internal/domains/inventory/model"
	rtModel "voyage/internal/domains/roomtype/model"
	"voyage/shared"
	"voyage/shared/constant"
	"voyage/shared/logger"
	gRepo "voyage/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	// A booking holds its rooms for every night in [check_in, check_out).
	queryReservedUnits = `SELECT COALESCE(SUM(num_rooms), 0) FROM bookings
WHERE room_type_id = $1 AND status = ANY($2) AND check_in < $4::date AND check_out > $3::date`

	queryPeakReserved = `SELECT COALESCE(MAX(reserved), 0) FROM (
	SELECT night, SUM(bookings.num_rooms) AS reserved
	FROM bookings
	CROSS JOIN LATERAL generate_series(bookings.check_in, bookings.check_out - 1, interval '1 day') AS night
	WHERE bookings.room_type_id = $1 AND bookings.status = ANY($2) AND bookings.check_out > $3::date
	GROUP BY night
) per_night WHERE night >= $3::date`
)

type Inventory interface {
	Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	LockRoomTypeTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string) (rtModel.RoomType, error)
	GetRoomType(ctx context.Context, roomTypeID string) (rtModel.RoomType, error)
	ReservedUnits(ctx context.Context, roomTypeID string, stay model.DateRange) (int, error)
	ReservedUnitsTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, stay model.DateRange) (int, error)
	PeakReservedTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, from time.Time) (int, error)
}

type querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type repositoryImpl struct {
	roomTypes gRepo.Repository[rtModel.RoomType]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Inventory {
	return &repositoryImpl{
		roomTypes: gRepo.NewRepository[rtModel.RoomType](rtModel.EntityName, rtModel.TableName, rtModel.FieldID, db, otel),
		db:        db,
		otel:      otel,
	}
}

func (r *repositoryImpl) Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return r.roomTypes.Transaction(ctx, fn) //nolint:wrapcheck
}

// LockRoomTypeTx takes the room type row lock that serializes every booking of that room type.
// It returns a zero RoomType when the room type does not exist.
func (r *repositoryImpl) LockRoomTypeTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string) (rtModel.RoomType, error) {
	return r.roomTypes.GetForUpdateTx(ctx, tx, shared.FilterByID(roomTypeID, rtModel.FieldID, rtModel.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetRoomType(ctx context.Context, roomTypeID string) (rtModel.RoomType, error) {
	return r.roomTypes.Get(ctx, shared.FilterByID(roomTypeID, rtModel.FieldID, rtModel.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) ReservedUnits(ctx context.Context, roomTypeID string, stay model.DateRange) (int, error) {
	return r.reservedUnits(ctx, r.db.Read, roomTypeID, stay)
}

func (r *repositoryImpl) ReservedUnitsTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, stay model.DateRange) (int, error) {
	return r.reservedUnits(ctx, tx, roomTypeID, stay)
}

func (r *repositoryImpl) reservedUnits(ctx context.Context, q querier, roomTypeID string, stay model.DateRange) (reserved int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.ReservedUnits")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryReservedUnits)

	err = q.GetContext(ctx, &reserved, queryReservedUnits,
		roomTypeID,
		pq.Array(bookingModel.ActiveStatuses),
		stay.CheckIn.Format(constant.DayFormat),
		stay.CheckOut.Format(constant.DayFormat),
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to sum reserved units: %w", err)
	}

	return reserved, nil
}

// PeakReservedTx is the largest number of rooms held on any single night from the given day on.
func (r *repositoryImpl) PeakReservedTx(ctx context.Context, tx *sqlx.Tx, roomTypeID string, from time.Time) (peak int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".inventory.PeakReservedTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryPeakReserved)

	err = tx.GetContext(ctx, &peak, queryPeakReserved,
		roomTypeID,
		pq.Array(bookingModel.ActiveStatuses),
		from.Format(constant.DayFormat),
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to get peak reserved units: %w", err)
	}

	return peak, nil
}
