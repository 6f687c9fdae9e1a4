package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"voyage/infras/otel"
	"voyage/infras/postgres"
	"voyage/internal/domains/review/model"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/logger"
	gRepo "voyage/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryTotals = `SELECT COUNT(*) AS review_count,
	COALESCE(SUM(overall_rating), 0) AS overall_sum,
	COALESCE(SUM(cleanliness_rating), 0) AS cleanliness_sum,
	COALESCE(SUM(location_rating), 0) AS location_sum,
	COALESCE(SUM(service_rating), 0) AS service_sum,
	COALESCE(SUM(value_rating), 0) AS value_sum
FROM reviews
WHERE hotel_id = $1`

type Review interface {
	Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Insert(ctx context.Context, review model.Review) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
	InsertVoteTx(ctx context.Context, tx *sqlx.Tx, vote model.Vote) error
	IncrementCounterTx(ctx context.Context, tx *sqlx.Tx, reviewID, field string) error
	DeleteVotesTx(ctx context.Context, tx *sqlx.Tx, reviewID string) error
	InsertPhoto(ctx context.Context, photo model.Photo) error
	GetPhotos(ctx context.Context, reviewID string) ([]model.Photo, error)
	DeletePhotosTx(ctx context.Context, tx *sqlx.Tx, reviewID string) error
	Totals(ctx context.Context, hotelID string) (model.Totals, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	votes  gRepo.Repository[model.Vote]
	photos gRepo.Repository[model.Photo]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		votes:      gRepo.NewRepository[model.Vote](model.VoteEntityName, model.VoteTableName, model.FieldID, db, otel),
		photos:     gRepo.NewRepository[model.Photo](model.PhotoEntityName, model.PhotoTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertVoteTx(ctx context.Context, tx *sqlx.Tx, vote model.Vote) error {
	return r.votes.InsertTx(ctx, tx, vote) //nolint:wrapcheck
}

func (r *repositoryImpl) DeleteVotesTx(ctx context.Context, tx *sqlx.Tx, reviewID string) error {
	return r.votes.DeleteTx(ctx, tx, gDto.FilterGroup{ //nolint:wrapcheck
		Filters: []any{
			gDto.Filter{Field: model.FieldVoteReviewID, Value: reviewID, Operator: gDto.FilterOperatorEq, Table: model.VoteTableName},
		},
	})
}

func (r *repositoryImpl) InsertPhoto(ctx context.Context, photo model.Photo) error {
	return r.photos.Insert(ctx, photo) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPhotos(ctx context.Context, reviewID string) ([]model.Photo, error) {
	return r.photos.GetAll(ctx, gDto.QueryParams{}, photosOf(reviewID)) //nolint:wrapcheck
}

func (r *repositoryImpl) DeletePhotosTx(ctx context.Context, tx *sqlx.Tx, reviewID string) error {
	return r.photos.DeleteTx(ctx, tx, photosOf(reviewID)) //nolint:wrapcheck
}

func photosOf(reviewID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldPhotoReviewID, Value: reviewID, Operator: gDto.FilterOperatorEq, Table: model.PhotoTableName},
		},
	}
}

// IncrementCounterTx bumps one of the vote counters of a review.
func (r *repositoryImpl) IncrementCounterTx(ctx context.Context, tx *sqlx.Tx, reviewID, field string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.IncrementCounterTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if field != model.FieldHelpfulCount && field != model.FieldNotHelpfulCount {
		return fmt.Errorf("unknown review counter %q", field)
	}

	query := fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE %s = $1", model.TableName, field, field, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = tx.ExecContext(ctx, query, reviewID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to increment review counter: %w", err)
	}

	return nil
}

// Totals counts and sums the ratings of a hotel's reviews at query time.
func (r *repositoryImpl) Totals(ctx context.Context, hotelID string) (totals model.Totals, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Totals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryTotals)

	if err = r.db.Read.GetContext(ctx, &totals, queryTotals, hotelID); err != nil {
		logger.ErrorWithStack(err)

		return totals, fmt.Errorf("failed to sum reviews: %w", err)
	}

	return totals, nil
}
