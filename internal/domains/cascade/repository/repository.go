package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"voyage/infras/otel"
	"voyage/infras/postgres"
	"voyage/internal/domains/cascade/model"
	"voyage/shared/constant"
	"voyage/shared/logger"

	"github.com/jmoiron/sqlx"
)

// Row sets below each root, all bound to the root id as $1.
const (
	hotelsOfDestination    = `SELECT id FROM hotels WHERE destination_id = $1`
	roomTypesOfDestination = `SELECT room_types.id FROM room_types JOIN hotels ON hotels.id = room_types.hotel_id WHERE hotels.destination_id = $1`
	roomTypesOfHotel       = `SELECT id FROM room_types WHERE hotel_id = $1`
)

var locks = map[string][]string{
	model.RootDestination: {
		`SELECT id FROM destinations WHERE id = $1 FOR UPDATE`,
		roomTypesOfDestination + ` FOR UPDATE OF room_types`,
	},
	model.RootHotel: {
		`SELECT id FROM hotels WHERE id = $1 FOR UPDATE`,
		roomTypesOfHotel + ` FOR UPDATE`,
	},
	model.RootRoomType: {
		`SELECT id FROM room_types WHERE id = $1 FOR UPDATE`,
	},
}

var statements = map[string]map[string]string{
	model.RootDestination: withRoomTypes("IN ("+roomTypesOfDestination+")", map[string]string{
		model.LevelReviewVotes:    `DELETE FROM review_votes WHERE review_id IN (SELECT id FROM reviews WHERE hotel_id IN (` + hotelsOfDestination + `))`,
		model.LevelReviewPhotos:   `DELETE FROM review_photos WHERE review_id IN (SELECT id FROM reviews WHERE hotel_id IN (` + hotelsOfDestination + `))`,
		model.LevelReviews:        `DELETE FROM reviews WHERE hotel_id IN (` + hotelsOfDestination + `)`,
		model.LevelRoomTypes:      `DELETE FROM room_types WHERE hotel_id IN (` + hotelsOfDestination + `)`,
		model.LevelHotelAmenities: `DELETE FROM hotel_amenities WHERE hotel_id IN (` + hotelsOfDestination + `)`,
		model.LevelHotelImages:    `DELETE FROM hotel_images WHERE hotel_id IN (` + hotelsOfDestination + `)`,
		model.LevelHotels:         `DELETE FROM hotels WHERE destination_id = $1`,
		model.LevelDestinations:   `DELETE FROM destinations WHERE id = $1`,
	}),
	model.RootHotel: withRoomTypes("IN ("+roomTypesOfHotel+")", map[string]string{
		model.LevelReviewVotes:    `DELETE FROM review_votes WHERE review_id IN (SELECT id FROM reviews WHERE hotel_id = $1)`,
		model.LevelReviewPhotos:   `DELETE FROM review_photos WHERE review_id IN (SELECT id FROM reviews WHERE hotel_id = $1)`,
		model.LevelReviews:        `DELETE FROM reviews WHERE hotel_id = $1`,
		model.LevelRoomTypes:      `DELETE FROM room_types WHERE hotel_id = $1`,
		model.LevelHotelAmenities: `DELETE FROM hotel_amenities WHERE hotel_id = $1`,
		model.LevelHotelImages:    `DELETE FROM hotel_images WHERE hotel_id = $1`,
		model.LevelHotels:         `DELETE FROM hotels WHERE id = $1`,
	}),
	model.RootRoomType: withRoomTypes("= $1", map[string]string{
		model.LevelRoomTypes: `DELETE FROM room_types WHERE id = $1`,
	}),
}

// withRoomTypes adds the statements for everything hanging off the room types matched by match.
// Reviews keep their verified flag when their booking goes; only the link is cleared.
func withRoomTypes(match string, levels map[string]string) map[string]string {
	bookings := `SELECT id FROM bookings WHERE room_type_id ` + match

	levels[model.LevelReviewBookings] = `UPDATE reviews SET booking_id = NULL WHERE booking_id IN (` + bookings + `)`
	levels[model.LevelPayments] = `DELETE FROM payments WHERE booking_id IN (` + bookings + `)`
	levels[model.LevelBookings] = `DELETE FROM bookings WHERE room_type_id ` + match
	levels[model.LevelRoomAmenities] = `DELETE FROM room_amenities WHERE room_type_id ` + match

	return levels
}

type Cascade interface {
	Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	LockTx(ctx context.Context, tx *sqlx.Tx, root, id string) (bool, error)
	DeleteTx(ctx context.Context, tx *sqlx.Tx, root, level, id string) (int64, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cascade {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cascade.Transaction")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.db.Transaction(ctx, fn) //nolint:wrapcheck
}

// LockTx locks the root row and every room type below it, so no booking can be created
// under the tree while it is being removed. It reports false when the root does not exist.
func (r *repositoryImpl) LockTx(ctx context.Context, tx *sqlx.Tx, root, id string) (found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cascade.LockTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	queries, ok := locks[root]
	if !ok {
		return false, fmt.Errorf("unknown cascade root %q", root)
	}

	for i, query := range queries {
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)

		var ids []string
		if err = tx.SelectContext(ctx, &ids, query, id); err != nil {
			logger.ErrorWithStack(err)

			return false, fmt.Errorf("failed to lock %s: %w", root, err)
		}

		if i == 0 && len(ids) == 0 {
			return false, nil
		}
	}

	return true, nil
}

// DeleteTx runs one level of the tree and returns the number of affected rows.
func (r *repositoryImpl) DeleteTx(ctx context.Context, tx *sqlx.Tx, root, level, id string) (rows int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cascade.DeleteTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, ok := statements[root][level]
	if !ok {
		return 0, fmt.Errorf("no cascade statement for %s below %s", level, root)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to delete %s: %w", level, err)
	}

	rows, err = result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted %s: %w", level, err)
	}

	return rows, nil
}
