package hotel

import (
	"net/http"

	"voyage/infras/otel"
	amenityDto "voyage/internal/domains/amenity/model/dto"
	cascadeDto "voyage/internal/domains/cascade/model/dto"
	cascadeService "voyage/internal/domains/cascade/service"
	"voyage/internal/domains/hotel/model"
	"voyage/internal/domains/hotel/model/dto"
	"voyage/internal/domains/hotel/service"
	reviewDto "voyage/internal/domains/review/model/dto"
	reviewService "voyage/internal/domains/review/service"
	"voyage/shared/constant"
	gDto "voyage/shared/dto"
	"voyage/shared/validator"
	"voyage/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	reviews reviewService.Review
	cascade cascadeService.Cascade
	otel    otel.Otel
}

func New(service service.Hotel, reviews reviewService.Review, cascade cascadeService.Cascade, otel otel.Otel) Handler {
	return Handler{
		service: service,
		reviews: reviews,
		cascade: cascade,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{id}", handler.GetHotelByID)
		routerGroup.Patch("/{id}", handler.UpdateHotel)
		routerGroup.Delete("/{id}", handler.DeleteHotel)
		routerGroup.Get("/{id}/rating", handler.GetHotelRating)
		routerGroup.Get("/{id}/images", handler.GetHotelImages)
		routerGroup.Post("/{id}/images", handler.AddHotelImage)
		routerGroup.Get("/{id}/amenities", handler.GetHotelAmenities)
		routerGroup.Post("/{id}/amenities", handler.AttachHotelAmenity)
		routerGroup.Delete("/{id}/amenities/{amenity_id}", handler.DetachHotelAmenity)
	})
}

// CreateHotel handles the creation of a new hotel.
// @Summary Create a hotel
// @Description Check-in and check-out times default to 14:00 and 11:00.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelRequest true "Create Hotel Request"
// @Success 201 {object} response.Data[dto.HotelResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Destination not found"
// @Failure 500 {object} response.Error
// @Router /v1/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.CreateHotelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	hotel, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, hotel)
}

// GetHotels lists hotels.
// @Summary Get all hotels
// @Tags Hotel
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param destination_id query string false "Filter by destination ID"
// @Param hotel_type query string false "Filter by type (hotel, resort, apartment, guesthouse, hostel)"
// @Param star_rating query int false "Filter by star rating"
// @Param is_active query bool false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetHotelsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.EqualFromRequest(request, model.TableName,
		model.FieldDestinationID, model.FieldHotelType, model.FieldStarRating, model.FieldIsActive)

	hotels, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, hotels)
}

// GetHotelByID retrieves a hotel with its starting price, images, amenities and rating.
// @Summary Get a hotel by ID
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) GetHotelByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, hotel)
}

// UpdateHotel updates an existing hotel by its ID.
// @Summary Update a hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateHotelRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Hotel updated successfully")
}

// DeleteHotel deletes a hotel with its room types, bookings, payments, reviews, images and links.
// @Summary Delete a hotel
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[cascadeDto.DeleteResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotel")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var report cascadeDto.DeleteResponse

	report, err := handler.cascade.DeleteHotel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Hotel deleted successfully by user " + user)

	response.WithJSON(writer, http.StatusOK, report)
}

// GetHotelRating returns the average ratings over all reviews of a hotel.
// @Summary Get hotel rating
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[reviewDto.SummaryResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rating [get]
func (handler *Handler) GetHotelRating(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelRating")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	var summary reviewDto.SummaryResponse

	summary, err := handler.reviews.Summary(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel rating")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, summary)
}

// GetHotelImages lists the images of a hotel, primary first.
// @Summary Get hotel images
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[[]dto.ImageResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/images [get]
func (handler *Handler) GetHotelImages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelImages")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	images, err := handler.service.GetImages(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel images")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, images)
}

// AddHotelImage attaches an image to a hotel. A new primary image replaces the old one.
// @Summary Add a hotel image
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.AddImageRequest true "Add Image Request"
// @Success 201 {object} response.Data[dto.ImageResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) AddHotelImage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddHotelImage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.AddImageRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	image, err := handler.service.AddImage(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add hotel image")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, image)
}

// GetHotelAmenities lists the amenities of a hotel.
// @Summary Get hotel amenities
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[[]amenityDto.AmenityResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/amenities [get]
func (handler *Handler) GetHotelAmenities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelAmenities")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	amenities, err := handler.service.GetAmenities(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel amenities")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, amenities)
}

// AttachHotelAmenity links an amenity to a hotel.
// @Summary Attach an amenity to a hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body amenityDto.LinkRequest true "Amenity Link Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Amenity already attached"
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/amenities [post]
// @Security BearerAuth
func (handler *Handler) AttachHotelAmenity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachHotelAmenity")
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
		log.Error().Err(err).Msg("failed to attach hotel amenity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Amenity attached successfully")
}

// DetachHotelAmenity unlinks an amenity from a hotel.
// @Summary Detach an amenity from a hotel
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/amenities/{amenity_id} [delete]
// @Security BearerAuth
func (handler *Handler) DetachHotelAmenity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DetachHotelAmenity")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	amenityID := chi.URLParam(request, constant.RequestParamAmenityID)

	if err := handler.service.DetachAmenity(ctx, id, amenityID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to detach hotel amenity")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Amenity detached successfully")
}
