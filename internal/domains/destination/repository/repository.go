package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"voyage/infras/otel"
	"voyage/infras/postgres"
	"voyage/internal/domains/destination/model"
	gDto "voyage/shared/dto"
	gRepo "voyage/shared/repository"
)

type Destination interface {
	Insert(ctx context.Context, destination model.Destination) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Destination, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Destination, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Destination]
}

func New(db *postgres.Connection, otel otel.Otel) Destination {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Destination](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
