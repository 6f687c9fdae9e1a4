package booking_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "voyage/infras/otel/mocks"
	bookingMocks "voyage/internal/domains/booking/mocks"
	"voyage/internal/domains/booking/model"
	"voyage/internal/domains/booking/model/dto"
	"voyage/internal/handlers/booking"
	"voyage/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const bookingID = "3f0b9c7e-5d1a-4c2b-8e6f-9a0b1c2d3e4f"

func newRouter(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_CreateBooking(t *testing.T) {
	validBody := `{
		"room_type_id": "9f5b2e3c-4d6a-4e8f-a01b-2c3d4e5f6a7b",
		"check_in": "2030-03-10",
		"check_out": "2030-03-12",
		"num_guests": 2,
		"num_rooms": 1,
		"guest_first_name": "Ana",
		"guest_last_name": "Silva",
		"guest_email": "ana@example.com"
	}`

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{
					ID:               bookingID,
					BookingReference: "K7QX2MZP",
					Status:           model.StatusPending,
					TotalPrice:       "345.00",
				}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing guest email",
			body:      `{"room_type_id": "9f5b2e3c-4d6a-4e8f-a01b-2c3d4e5f6a7b", "check_in": "2030-03-10", "check_out": "2030-03-12", "num_guests": 1, "num_rooms": 1}`,
			setupMock: func(*bookingMocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "sold out",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.CapacityExceeded("only 0 rooms left"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusCreated {
				return
			}

			var body struct {
				Data dto.BookingResponse `json:"data"`
			}

			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "K7QX2MZP", body.Data.BookingReference)
			assert.Equal(t, "345.00", body.Data.TotalPrice)
		})
	}
}

func TestHandler_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setupMock func(svc *bookingMocks.MockBookingService)
		wantCode  int
	}{
		{
			name: "confirm",
			path: "/bookings/" + bookingID + "/confirm",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Confirm(gomock.Any(), bookingID).Return(dto.BookingResponse{ID: bookingID, Status: model.StatusConfirmed}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "cancel a completed booking",
			path: "/bookings/" + bookingID + "/cancel",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Cancel(gomock.Any(), bookingID).Return(dto.BookingResponse{}, failure.InvalidTransition("completed booking cannot be cancelled"))
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "complete a missing booking",
			path: "/bookings/" + bookingID + "/complete",
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Complete(gomock.Any(), bookingID).Return(dto.BookingResponse{}, failure.NotFound(model.EntityName))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetBookingByReference(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().GetByReference(gomock.Any(), "K7QX2MZP").Return(dto.BookingResponse{ID: bookingID, BookingReference: "K7QX2MZP"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/reference/K7QX2MZP", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), bookingID)
}
