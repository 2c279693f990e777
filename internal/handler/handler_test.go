package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/reservio/reservation-service/internal/errs"
	"github.com/reservio/reservation-service/internal/handler"
	service_mocks "github.com/reservio/reservation-service/internal/handler/mocks"
	"github.com/reservio/reservation-service/internal/model"
	"github.com/reservio/reservation-service/pkg/validate"
)

func strPtr(s string) *string { return &s }

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	type input struct {
		restaurantID int
		tableID      int
		body         string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockReservationService, inp input)

	reqFromBody := func(body string) model.CreateReservationRequest {
		var req model.CreateReservationRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		return req
	}

	okBody := `{"customer_name":"A","customer_email":"a@b.com","reserved_from":"2023-06-01T18:00","reserved_until":"2023-06-01T19:00","guest_amount":2}`

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockReservationService, inp input) {
				req := reqFromBody(inp.body)
				r.EXPECT().
					CreateReservation(context.Background(), inp.restaurantID, inp.tableID, req).
					Return(model.Reservation{
						ID:            1,
						CustomerName:  "A",
						CustomerEmail: "a@b.com",
						ReservedFrom:  req.ReservedFrom,
						ReservedUntil: req.ReservedUntil,
						GuestAmount:   2,
						TableID:       inp.tableID,
					}, nil)
			},
			input: input{restaurantID: 1, tableID: 1, body: okBody},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"customer_name":"A","customer_email":"a@b.com","reserved_from":"2023-06-01T18:00:00Z","reserved_until":"2023-06-01T19:00:00Z","guest_amount":2,"table_id":1}`,
			},
		},
		{
			name: "err. too many guests",
			mockBehavior: func(r *service_mocks.MockReservationService, inp input) {
				r.EXPECT().
					CreateReservation(context.Background(), inp.restaurantID, inp.tableID, reqFromBody(inp.body)).
					Return(model.Reservation{}, errs.ErrTooManyGuests)
			},
			input: input{restaurantID: 1, tableID: 1, body: `{"customer_name":"A","customer_email":"a@b.com","reserved_from":"2023-06-01T18:00","reserved_until":"2023-06-01T19:00","guest_amount":9}`},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"guest_amount exceeds the seats of the table"}`,
			},
			wantErr: true,
		},
		{
			name: "err. table of another restaurant",
			mockBehavior: func(r *service_mocks.MockReservationService, inp input) {
				r.EXPECT().
					CreateReservation(context.Background(), inp.restaurantID, inp.tableID, reqFromBody(inp.body)).
					Return(model.Reservation{}, errors.Wrap(errs.ErrNotFound, "table 7 does not belong to restaurant 2"))
			},
			input: input{restaurantID: 2, tableID: 7, body: okBody},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"table 7 does not belong to restaurant 2: not found"}`,
			},
			wantErr: true,
		},
		{
			name: "err. overlap",
			mockBehavior: func(r *service_mocks.MockReservationService, inp input) {
				r.EXPECT().
					CreateReservation(context.Background(), inp.restaurantID, inp.tableID, reqFromBody(inp.body)).
					Return(model.Reservation{}, errs.ErrOverlap)
			},
			input: input{restaurantID: 1, tableID: 1, body: okBody},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"reservation overlaps an existing reservation on the table"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. missing customer_email",
			mockBehavior: func(r *service_mocks.MockReservationService, inp input) {},
			input:        input{restaurantID: 1, tableID: 1, body: `{"customer_name":"A","reserved_from":"2023-06-01T18:00","reserved_until":"2023-06-01T19:00","guest_amount":2}`},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockReservationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/restaurants/:restaurantId/tables/:tableId/reservations", h.CreateReservation)

			r := httptest.NewRequest(http.MethodPost,
				fmt.Sprintf("/restaurants/%d/tables/%d/reservations", tt.input.restaurantID, tt.input.tableID),
				strings.NewReader(tt.input.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_GetOwner(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockReservationService)

	var tests = []struct {
		name         string
		id           string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			id:   "1",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().
					GetOwner(context.Background(), 1).
					Return(model.Owner{
						ID:        1,
						FirstName: "Max",
						LastName:  "Mustermann",
						Email:     "max@mustermann.de",
						Phone:     strPtr("+49-176-111-12345"),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"first_name":"Max","last_name":"Mustermann","email":"max@mustermann.de","phone":"+49-176-111-12345"}`,
			},
		},
		{
			name: "err. not found",
			id:   "42",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().
					GetOwner(context.Background(), 42).
					Return(model.Owner{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "err. invalid id",
			id:           "abc",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockReservationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/owners/:id", h.GetOwner)

			r := httptest.NewRequest(http.MethodGet, "/owners/"+tt.id, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateOwner(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockReservationService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/owners", h.CreateOwner)

	svc.EXPECT().
		CreateOwner(context.Background(), model.CreateOwnerRequest{
			FirstName: "Max",
			LastName:  "Mustermann",
			Email:     "max@mustermann.de",
		}).
		Return(model.Owner{
			ID:        1,
			FirstName: "Max",
			LastName:  "Mustermann",
			Email:     "max@mustermann.de",
		}, nil)

	body := `{"first_name":"Max","last_name":"Mustermann","email":"max@mustermann.de"}`
	r := httptest.NewRequest(http.MethodPost, "/owners", strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t,
		`{"id":1,"first_name":"Max","last_name":"Mustermann","email":"max@mustermann.de"}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_CreateOwner_invalidEmail(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockReservationService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/owners", h.CreateOwner)

	body := `{"first_name":"Max","last_name":"Mustermann","email":"not-an-email"}`
	r := httptest.NewRequest(http.MethodPost, "/owners", strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteTables(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockReservationService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.DELETE("/tables", h.DeleteTables)

	svc.EXPECT().DeleteTables(context.Background()).Return(3, nil)

	r := httptest.NewRequest(http.MethodDelete, "/tables", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"deleted":3}`, strings.Trim(w.Body.String(), "\n"))
}
