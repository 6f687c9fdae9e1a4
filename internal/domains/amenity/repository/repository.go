package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"voyage/infras/otel"
	"voyage/infras/postgres"
	"voyage/internal/domains/amenity/model"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/logger"
	gRepo "voyage/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Amenity interface {
	Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Insert(ctx context.Context, amenity model.Amenity) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Amenity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Amenity, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
	DetachAllTx(ctx context.Context, tx *sqlx.Tx, amenityID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Amenity]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Amenity {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Amenity](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// DetachAllTx removes the amenity from every hotel and room type that lists it.
func (r *repositoryImpl) DetachAllTx(ctx context.Context, tx *sqlx.Tx, amenityID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".amenity.DetachAllTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for _, query := range []string{
		"DELETE FROM hotel_amenities WHERE amenity_id = $1",
		"DELETE FROM room_amenities WHERE amenity_id = $1",
	} {
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)

		if _, err = tx.ExecContext(ctx, query, amenityID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to detach amenity: %w", err)
		}
	}

	return nil
}
