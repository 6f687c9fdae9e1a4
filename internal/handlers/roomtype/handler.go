package roomtype

import (
	"net/http"

	"voyage/infras/otel"
	amenityDto "voyage/internal/domains/amenity/model/dto"
	cascadeDto "voyage/internal/domains/cascade/model/dto"
	cascadeService "voyage/internal/domains/cascade/service"
	inventoryModel "voyage/internal/domains/inventory/model"
	inventoryDto "voyage/internal/domains/inventory/model/dto"
	inventoryService "voyage/internal/domains/inventory/service"
	"voyage/internal/domains/roomtype/model"
	"voyage/internal/domains/roomtype/model/dto"
	"voyage/internal/domains/roomtype/service"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/validator"
	"voyage/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.RoomType
	inventory inventoryService.Inventory
	cascade   cascadeService.Cascade
	otel      otel.Otel
}

func New(
	service service.RoomType,
	inventory inventoryService.Inventory,
	cascade cascadeService.Cascade,
	otel otel.Otel,
) Handler {
	return Handler{
		service:   service,
		inventory: inventory,
		cascade:   cascade,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/room-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoomType)
		routerGroup.Get("/", handler.GetRoomTypes)
		routerGroup.Get("/{id}", handler.GetRoomTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateRoomType)
		routerGroup.Delete("/{id}", handler.DeleteRoomType)
		routerGroup.Get("/{id}/availability", handler.GetAvailability)
		routerGroup.Post("/{id}/amenities", handler.AttachRoomTypeAmenity)
		routerGroup.Delete("/{id}/amenities/{amenity_id}", handler.DetachRoomTypeAmenity)
	})
}

// CreateRoomType handles the creation of a new room type.
// @Summary Create a room type
// @Tags RoomType
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomTypeRequest true "Create Room Type Request"
// @Success 201 {object} response.Data[dto.RoomTypeResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Hotel not found"
// @Failure 500 {object} response.Error
// @Router /v1/room-types [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomType")
	defer scope.End()

	req := dto.CreateRoomTypeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	roomType, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room type")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, roomType)
}

// GetRoomTypes lists room types.
// @Summary Get all room types
// @Tags RoomType
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hotel_id query string false "Filter by hotel ID"
// @Success 200 {object} response.Data[dto.GetRoomTypesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/room-types [get]
func (handler *Handler) GetRoomTypes(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.EqualFromRequest(request, model.TableName, model.FieldHotelID)

	roomTypes, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, roomTypes)
}

// GetRoomTypeByID retrieves a room type with its amenities.
// @Summary Get a room type by ID
// @Tags RoomType
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Data[dto.RoomTypeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [get]
func (handler *Handler) GetRoomTypeByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypeByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	roomType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room type by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, roomType)
}

// UpdateRoomType updates an existing room type by its ID.
// @Summary Update a room type
// @Description total_rooms cannot drop below the rooms already reserved on any future night.
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Param request body dto.UpdateRoomTypeRequest true "Update Room Type Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Rooms already reserved"
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomType")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateRoomTypeRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room type")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room type updated successfully")
}

// DeleteRoomType deletes a room type with its bookings, payments and amenity links.
// @Summary Delete a room type
// @Tags RoomType
// @Produce json
// @Param id path string true "Room Type ID"
// @Success 200 {object} response.Data[cascadeDto.DeleteResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomType(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomType")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var report cascadeDto.DeleteResponse

	report, err := handler.cascade.DeleteRoomType(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room type")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room type deleted successfully by user " + user)

	response.WithJSON(writer, http.StatusOK, report)
}

// GetAvailability reports total_rooms minus the rooms held by every active booking overlapping the stay.
// @Summary Get room availability
// @Tags RoomType
// @Produce json
// @Param id path string true "Room Type ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[inventoryDto.AvailabilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id}/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	query := request.URL.Query()

	stay, err := inventoryModel.ParseDateRange(query.Get(constant.RequestParamCheckIn), query.Get(constant.RequestParamCheckOut))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse stay")

		response.WithError(writer, err)

		return
	}

	var availability inventoryDto.AvailabilityResponse

	availability, err = handler.inventory.AvailableUnits(ctx, id, stay)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, availability)
}

// AttachRoomTypeAmenity links an amenity to a room type.
// @Summary Attach an amenity to a room type
// @Tags RoomType
// @Accept json
// @Produce json
// @Param id path string true "Room Type ID"
// @Param request body amenityDto.LinkRequest true "Amenity Link Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Amenity already attached"
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id}/amenities [post]
// @Security BearerAuth
func (handler *Handler) AttachRoomTypeAmenity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachRoomTypeAmenity")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := amenityDto.LinkRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.AttachAmenity(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to attach room type amenity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Amenity attached successfully")
}

// DetachRoomTypeAmenity unlinks an amenity from a room type.
// @Summary Detach an amenity from a room type
// @Tags RoomType
// @Produce json
// @Param id path string true "Room Type ID"
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-types/{id}/amenities/{amenity_id} [delete]
// @Security BearerAuth
func (handler *Handler) DetachRoomTypeAmenity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DetachRoomTypeAmenity")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	amenityID := chi.URLParam(request, constant.RequestParamAmenityID)

	if err := handler.service.DetachAmenity(ctx, id, amenityID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to detach room type amenity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Amenity detached successfully")
}
