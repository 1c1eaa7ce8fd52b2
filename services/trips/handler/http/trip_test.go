package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
	"github.com/mpawlak/wedrownik/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTripHandlerTest(t *testing.T) (*TripHandler, *mocks.MockTripUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockTripUC(ctrl)
	return NewTripHandler(mockUC), mockUC, echo.New()
}

func authedContext(e *echo.Echo, method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != uuid.Nil {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestListTripsHandler(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		ListTrips(gomock.Any(), userID).
		Return([]models.Route{{ID: 1, UserID: userID, Name: "Tatry"}}, nil)

	c, rec := authedContext(e, http.MethodGet, "/routes", "", userID)
	require.NoError(t, h.ListTrips(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var routes []models.Route
	require.NoError(t, utils.ParseJSONResponse(rec.Body.Bytes(), &routes))
	require.Len(t, routes, 1)
	assert.Equal(t, "Tatry", routes[0].Name)
}

func TestListTripsHandlerAnonymousKeepsListShape(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)

	mockUC.EXPECT().
		ListTrips(gomock.Any(), uuid.Nil).
		Return([]models.Route{}, apperrors.ErrUnauthenticated)

	c, rec := authedContext(e, http.MethodGet, "/routes", "", uuid.Nil)
	require.NoError(t, h.ListTrips(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The 401 payload still carries an empty array in the data slot
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.JSONEq(t, `[]`, string(envelope.Data))
}

func TestGetTripHandler(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		GetTrip(gomock.Any(), userID, int64(42)).
		Return(&models.EnrichedTrip{ID: 42, Name: "Tatry", DistanceKm: 5.5}, nil)

	c, rec := authedContext(e, http.MethodGet, "/routes/42", "", userID)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.GetTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var enriched models.EnrichedTrip
	require.NoError(t, utils.ParseJSONResponse(rec.Body.Bytes(), &enriched))
	assert.Equal(t, 5.5, enriched.DistanceKm)
}

func TestGetTripHandlerNotFound(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		GetTrip(gomock.Any(), userID, int64(999)).
		Return(nil, apperrors.ErrTripNotFound)

	c, rec := authedContext(e, http.MethodGet, "/routes/999", "", userID)
	c.SetParamNames("id")
	c.SetParamValues("999")

	require.NoError(t, h.GetTrip(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTripHandlerLookupUnavailable(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		GetTrip(gomock.Any(), userID, int64(42)).
		Return(nil, apperrors.ErrLookupUnavailable)

	c, rec := authedContext(e, http.MethodGet, "/routes/42", "", userID)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.GetTrip(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreateTripHandler(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		CreateTrip(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *models.CreateRouteRequest) (*models.Route, error) {
			assert.Equal(t, "Tatry", req.Name)
			require.Len(t, req.RoutePoints, 2)
			assert.Equal(t, int64(14), req.RoutePoints[0].PlaceID)
			return &models.Route{ID: 42, UserID: userID, Name: req.Name, RoutePoints: req.RoutePoints}, nil
		})

	// Client sends the camelCase dialect
	body := `{"name":"Tatry","routePoints":[{"placeId":14,"order":1},{"placeId":15,"order":2}]}`
	c, rec := authedContext(e, http.MethodPost, "/routes", body, userID)

	require.NoError(t, h.CreateTrip(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateTripHandlerInvalidInput(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		CreateTrip(gomock.Any(), userID, gomock.Any()).
		Return(nil, apperrors.ErrInvalidInput)

	c, rec := authedContext(e, http.MethodPost, "/routes", `{"name":""}`, userID)
	require.NoError(t, h.CreateTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTripHandlerForbidden(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		UpdateTrip(gomock.Any(), userID, int64(42), gomock.Any()).
		Return(nil, apperrors.ErrForbidden)

	c, rec := authedContext(e, http.MethodPut, "/routes/42", `{"name":"mine now"}`, userID)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.UpdateTrip(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDeleteTripHandler(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		DeleteTrip(gomock.Any(), userID, int64(42)).
		Return(nil)

	c, rec := authedContext(e, http.MethodDelete, "/routes/42", "", userID)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.DeleteTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTripLengthHandler(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		TripLength(gomock.Any(), userID, int64(42)).
		Return(12.75, nil)

	c, rec := authedContext(e, http.MethodGet, "/routes/42/length", "", userID)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.TripLength(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]float64
	require.NoError(t, utils.ParseJSONResponse(rec.Body.Bytes(), &payload))
	assert.Equal(t, 12.75, payload["distance_km"])
}

func TestPlanTripHandler(t *testing.T) {
	h, mockUC, e := setupTripHandlerTest(t)
	userID := uuid.New()

	mockUC.EXPECT().
		PlanTrip(gomock.Any(), userID, int64(42)).
		Return(&models.PlanResult{DistanceKm: 3.2, DurationMin: 41}, nil)

	c, rec := authedContext(e, http.MethodGet, "/routes/42/plan", "", userID)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.PlanTrip(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.PlanResult
	require.NoError(t, utils.ParseJSONResponse(rec.Body.Bytes(), &result))
	assert.Equal(t, 41, result.DurationMin)
}

func TestTripHandlerInvalidID(t *testing.T) {
	h, _, e := setupTripHandlerTest(t)

	c, rec := authedContext(e, http.MethodGet, "/routes/abc", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetTrip(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
