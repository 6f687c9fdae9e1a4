package destination

import (
	"net/http"

	"voyage/infras/otel"
	cascadeDto "voyage/internal/domains/cascade/model/dto"
	cascadeService "voyage/internal/domains/cascade/service"
	"voyage/internal/domains/destination/model"
	"voyage/internal/domains/destination/model/dto"
	"voyage/internal/domains/destination/service"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/validator"
	"voyage/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Destination
	cascade cascadeService.Cascade
	otel    otel.Otel
}

func New(service service.Destination, cascade cascadeService.Cascade, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cascade: cascade,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/destinations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDestination)
		routerGroup.Get("/", handler.GetDestinations)
		routerGroup.Get("/{id}", handler.GetDestinationByID)
		routerGroup.Patch("/{id}", handler.UpdateDestination)
		routerGroup.Delete("/{id}", handler.DeleteDestination)
	})
}

// CreateDestination handles the creation of a new destination.
// @Summary Create a destination
// @Tags Destination
// @Accept json
// @Produce json
// @Param request body dto.CreateDestinationRequest true "Create Destination Request"
// @Success 201 {object} response.Data[dto.DestinationResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations [post]
// @Security BearerAuth
func (handler *Handler) CreateDestination(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDestination")
	defer scope.End()

	req := dto.CreateDestinationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	destination, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create destination")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, destination)
}

// GetDestinations lists destinations.
// @Summary Get all destinations
// @Tags Destination
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param country query string false "Filter by country"
// @Param city query string false "Filter by city"
// @Param is_featured query bool false "Filter featured destinations"
// @Success 200 {object} response.Data[dto.GetDestinationsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/destinations [get]
func (handler *Handler) GetDestinations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.EqualFromRequest(request, model.TableName, model.FieldCountry, model.FieldCity, model.FieldIsFeatured)

	destinations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destinations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, destinations)
}

// GetDestinationByID retrieves a destination by its ID.
// @Summary Get a destination by ID
// @Tags Destination
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Data[dto.DestinationResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [get]
func (handler *Handler) GetDestinationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinationByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	destination, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destination by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, destination)
}

// UpdateDestination updates an existing destination by its ID.
// @Summary Update a destination
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body dto.UpdateDestinationRequest true "Update Destination Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDestination(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDestination")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateDestinationRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update destination")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Destination updated successfully")
}

// DeleteDestination deletes a destination with all of its hotels and their dependents.
// @Summary Delete a destination
// @Description Removes the destination, its hotels, their room types, bookings, payments, reviews and links in one transaction.
// @Tags Destination
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Data[cascadeDto.DeleteResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDestination(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDestination")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var report cascadeDto.DeleteResponse

	report, err := handler.cascade.DeleteDestination(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete destination")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Destination deleted successfully by user " + user)

	response.WithJSON(writer, http.StatusOK, report)
}
