package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"voyage/infras/otel"
	"voyage/infras/postgres"
	amenityModel "voyage/internal/domains/amenity/model"
	"voyage/internal/domains/roomtype/model"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/logger"
	gRepo "voyage/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryRoomAmenities = `SELECT amenities.id, amenities.name, amenities.icon, amenities.category,
	amenities.created_at, amenities.modified_at, amenities.created_by, amenities.modified_by
FROM amenities
JOIN room_amenities ON room_amenities.amenity_id = amenities.id
WHERE room_amenities.room_type_id = $1
ORDER BY amenities.category ASC, amenities.name ASC`

type RoomType interface {
	Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Insert(ctx context.Context, roomType model.RoomType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	AttachAmenity(ctx context.Context, link model.Amenity) error
	DetachAmenity(ctx context.Context, link model.Amenity) error
	ExistAmenity(ctx context.Context, link model.Amenity) (bool, error)
	GetAmenities(ctx context.Context, roomTypeID string) ([]amenityModel.Amenity, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomType]
	links gRepo.Repository[model.Amenity]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomType](model.EntityName, model.TableName, model.FieldID, db, otel),
		links:      gRepo.NewRepository[model.Amenity](model.AmenityEntityName, model.AmenityTableName, model.FieldAmenityRoomTypeID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) AttachAmenity(ctx context.Context, link model.Amenity) error {
	return r.links.Insert(ctx, link) //nolint:wrapcheck
}

func (r *repositoryImpl) DetachAmenity(ctx context.Context, link model.Amenity) error {
	return r.links.Delete(ctx, linkFilter(link)) //nolint:wrapcheck
}

func (r *repositoryImpl) ExistAmenity(ctx context.Context, link model.Amenity) (bool, error) {
	return r.links.Exist(ctx, linkFilter(link)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAmenities(ctx context.Context, roomTypeID string) (res []amenityModel.Amenity, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_type.GetAmenities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRoomAmenities)

	if err = r.db.Read.SelectContext(ctx, &res, queryRoomAmenities, roomTypeID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get room type amenities: %w", err)
	}

	return res, nil
}

func linkFilter(link model.Amenity) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldAmenityRoomTypeID, Value: link.RoomTypeID, Operator: gDto.FilterOperatorEq, Table: model.AmenityTableName},
			gDto.Filter{Field: model.FieldAmenityAmenityID, Value: link.AmenityID, Operator: gDto.FilterOperatorEq, Table: model.AmenityTableName},
		},
	}
}
