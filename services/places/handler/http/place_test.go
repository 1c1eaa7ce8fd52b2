package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
	"github.com/mpawlak/wedrownik/services/places/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPlaceHandlerTest(t *testing.T) (*PlaceHandler, *mocks.MockPlaceUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockPlaceUC(ctrl)
	return NewPlaceHandler(mockUC), mockUC, echo.New()
}

func TestListPlacesHandler(t *testing.T) {
	h, mockUC, e := setupPlaceHandlerTest(t)

	mockUC.EXPECT().
		ListPlaces(gomock.Any()).
		Return([]models.Place{{ID: 1, Name: "Zamek Królewski na Wawelu"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/places", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListPlaces(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result []models.Place
	require.NoError(t, utils.ParseJSONResponse(rec.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "Zamek Królewski na Wawelu", result[0].Name)
}

func TestGetPlaceHandler(t *testing.T) {
	h, mockUC, e := setupPlaceHandlerTest(t)

	mockUC.EXPECT().
		GetPlace(gomock.Any(), int64(7)).
		Return(&models.Place{ID: 7, Name: "Muzeum Powstania Warszawskiego"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/places/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := h.GetPlace(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result models.Place
	require.NoError(t, utils.ParseJSONResponse(rec.Body.Bytes(), &result))
	assert.Equal(t, int64(7), result.ID)
}

func TestGetPlaceHandlerNotFound(t *testing.T) {
	h, mockUC, e := setupPlaceHandlerTest(t)

	mockUC.EXPECT().
		GetPlace(gomock.Any(), int64(999)).
		Return(nil, apperrors.ErrPlaceNotFound)

	req := httptest.NewRequest(http.MethodGet, "/places/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.GetPlace(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPlaceHandlerInvalidID(t *testing.T) {
	h, _, e := setupPlaceHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/places/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetPlace(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearbyPlacesHandler(t *testing.T) {
	h, mockUC, e := setupPlaceHandlerTest(t)

	mockUC.EXPECT().
		NearbyPlaces(gomock.Any(), 50.06, 19.94, 10.0).
		Return([]models.Place{{ID: 2, Name: "Rynek Główny w Krakowie"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/places/nearby?lat=50.06&lng=19.94&radius_km=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.NearbyPlaces(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result []models.Place
	require.NoError(t, utils.ParseJSONResponse(rec.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, int64(2), result[0].ID)
}

func TestNearbyPlacesHandlerMissingCoordinates(t *testing.T) {
	h, _, e := setupPlaceHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/places/nearby", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.NearbyPlaces(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearbyPlacesHandlerOutOfRange(t *testing.T) {
	h, mockUC, e := setupPlaceHandlerTest(t)

	mockUC.EXPECT().
		NearbyPlaces(gomock.Any(), 95.0, 19.94, 0.0).
		Return(nil, apperrors.ErrInvalidCoordinate)

	req := httptest.NewRequest(http.MethodGet, "/places/nearby?lat=95&lng=19.94", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.NearbyPlaces(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNearbyPlacesHandlerJSONShape(t *testing.T) {
	h, mockUC, e := setupPlaceHandlerTest(t)

	mockUC.EXPECT().
		NearbyPlaces(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]models.Place{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/places/nearby?lat=50&lng=19", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.NearbyPlaces(c))

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, envelope, "success")
	assert.Contains(t, envelope, "data")
}
