package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"voyage/infras/otel"
	"voyage/infras/postgres"
	amenityModel "voyage/internal/domains/amenity/model"
	"voyage/internal/domains/hotel/model"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/logger"
	gRepo "voyage/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const (
	queryHotelAmenities = `SELECT amenities.id, amenities.name, amenities.icon, amenities.category,
	amenities.created_at, amenities.modified_at, amenities.created_by, amenities.modified_by
FROM amenities
JOIN hotel_amenities ON hotel_amenities.amenity_id = amenities.id
WHERE hotel_amenities.hotel_id = $1
ORDER BY amenities.category ASC, amenities.name ASC`

	queryStartingPrice = `SELECT COALESCE(MIN(price_per_night), 0) FROM room_types WHERE hotel_id = $1`
)

type Hotel interface {
	Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Insert(ctx context.Context, hotel model.Hotel) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	InsertImageTx(ctx context.Context, tx *sqlx.Tx, image model.Image) error
	ClearPrimaryImageTx(ctx context.Context, tx *sqlx.Tx, hotelID string) error
	GetImages(ctx context.Context, hotelID string) ([]model.Image, error)
	AttachAmenity(ctx context.Context, link model.Amenity) error
	DetachAmenity(ctx context.Context, link model.Amenity) error
	ExistAmenity(ctx context.Context, link model.Amenity) (bool, error)
	GetAmenities(ctx context.Context, hotelID string) ([]amenityModel.Amenity, error)
	StartingPrice(ctx context.Context, hotelID string) (decimal.Decimal, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
	images gRepo.Repository[model.Image]
	links  gRepo.Repository[model.Amenity]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		images:     gRepo.NewRepository[model.Image](model.ImageEntityName, model.ImageTableName, model.FieldID, db, otel),
		links:      gRepo.NewRepository[model.Amenity](model.AmenityEntityName, model.AmenityTableName, model.FieldAmenityHotelID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertImageTx(ctx context.Context, tx *sqlx.Tx, image model.Image) error {
	return r.images.InsertTx(ctx, tx, image) //nolint:wrapcheck
}

// ClearPrimaryImageTx unsets the primary flag on every image of the hotel.
func (r *repositoryImpl) ClearPrimaryImageTx(ctx context.Context, tx *sqlx.Tx, hotelID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldImageHotelID, Value: hotelID, Operator: gDto.FilterOperatorEq, Table: model.ImageTableName},
			gDto.Filter{Field: "is_primary", Value: true, Operator: gDto.FilterOperatorEq, Table: model.ImageTableName},
		},
	}

	return r.images.UpdateTx(ctx, tx, map[string]any{"is_primary": false}, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetImages(ctx context.Context, hotelID string) ([]model.Image, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldImageHotelID, Value: hotelID, Operator: gDto.FilterOperatorEq, Table: model.ImageTableName},
		},
	}

	return r.images.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
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

func (r *repositoryImpl) GetAmenities(ctx context.Context, hotelID string) (res []amenityModel.Amenity, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.GetAmenities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryHotelAmenities)

	if err = r.db.Read.SelectContext(ctx, &res, queryHotelAmenities, hotelID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get hotel amenities: %w", err)
	}

	return res, nil
}

// StartingPrice is the lowest nightly rate across the hotel's room types, zero when it has none.
func (r *repositoryImpl) StartingPrice(ctx context.Context, hotelID string) (price decimal.Decimal, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.StartingPrice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryStartingPrice)

	if err = r.db.Read.GetContext(ctx, &price, queryStartingPrice, hotelID); err != nil {
		logger.ErrorWithStack(err)

		return price, fmt.Errorf("failed to get starting price: %w", err)
	}

	return price, nil
}

func linkFilter(link model.Amenity) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldAmenityHotelID, Value: link.HotelID, Operator: gDto.FilterOperatorEq, Table: model.AmenityTableName},
			gDto.Filter{Field: model.FieldAmenityAmenityID, Value: link.AmenityID, Operator: gDto.FilterOperatorEq, Table: model.AmenityTableName},
		},
	}
}
