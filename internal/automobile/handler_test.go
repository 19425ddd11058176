package automobile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newTestRepo(t)
	handler := NewHandler(NewService(repo), nil)

	engine := gin.New()
	handler.Register(engine.Group("/automobiles"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createBody(chassis string, plate *string) map[string]any {
	body := map[string]any{
		"make":         "Toyota",
		"model":        "Corolla",
		"year":         2023,
		"color":        "Black",
		"fuel_type":    "Flex",
		"mileage":      50000.5,
		"door_count":   4,
		"chassis_code": chassis,
		"fipe_code":    "005370-1",
	}
	if plate != nil {
		body["plate"] = *plate
	}
	return body
}

func TestCreateEndpointReturns201(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/automobiles", createBody("9BWZZZ5X0JP000001", ptr("ABC1D23")))
	require.Equal(t, http.StatusCreated, w.Code)

	var got Automobile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.NotZero(t, got.ID)
	require.Equal(t, "Toyota", got.Make)
	require.Equal(t, FuelFlex, got.FuelType)
	require.NotNil(t, got.Plate)
	require.Equal(t, "ABC1D23", *got.Plate)
	require.False(t, got.CreatedAt.IsZero())
}

func TestCreateEndpointRejectsInvalidBody(t *testing.T) {
	engine := newTestServer(t)

	body := createBody("9BWZZZ5X0JP000001", nil)
	body["year"] = 1800
	w := doJSON(t, engine, http.MethodPost, "/automobiles", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body = createBody("9BWZZZ5X0JP000001", ptr("not-a-plate"))
	w = doJSON(t, engine, http.MethodPost, "/automobiles", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateEndpointConflictOnDuplicate(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/automobiles", createBody("9BWZZZ5X0JP000001", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/automobiles", createBody("9BWZZZ5X0JP000001", nil))
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestGetEndpointNotFound(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/automobiles/99999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"detail":"automobile not found"}`, w.Body.String())
}

func TestListEndpointAppliesQueryFilters(t *testing.T) {
	engine := newTestServer(t)

	honda := createBody("9BWZZZ5X0JP000001", ptr("ABC1D23"))
	honda["make"], honda["year"] = "Honda", 2022
	require.Equal(t, http.StatusCreated, doJSON(t, engine, http.MethodPost, "/automobiles", honda).Code)

	bmw := createBody("9BWZZZ5X0JP000002", nil)
	bmw["make"], bmw["year"] = "BMW", 2024
	require.Equal(t, http.StatusCreated, doJSON(t, engine, http.MethodPost, "/automobiles", bmw).Code)

	var autos []Automobile

	w := doJSON(t, engine, http.MethodGet, "/automobiles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &autos))
	require.Len(t, autos, 2)

	w = doJSON(t, engine, http.MethodGet, "/automobiles?make=honda", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &autos))
	require.Len(t, autos, 1)
	require.Equal(t, "Honda", autos[0].Make)

	w = doJSON(t, engine, http.MethodGet, "/automobiles?make=honda&year_min=2023", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &autos))
	require.Empty(t, autos)

	// An explicitly supplied zero must filter, not fall back to "all".
	w = doJSON(t, engine, http.MethodGet, "/automobiles?mileage_max=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &autos))
	require.Empty(t, autos)
}

func TestListEndpointRejectsUnknownFuelType(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/automobiles?fuel_type=Steam", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateEndpointPartialUpdate(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/automobiles", createBody("9BWZZZ5X0JP000001", ptr("ABC1D23")))
	require.Equal(t, http.StatusCreated, w.Code)
	var created Automobile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/automobiles/%d", created.ID), map[string]any{"color": "Blue"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated Automobile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Blue", updated.Color)
	require.Equal(t, created.Make, updated.Make)
	require.Equal(t, created.Plate, updated.Plate)
	require.Equal(t, created.ChassisCode, updated.ChassisCode)
}

func TestUpdateEndpointNotFound(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPut, "/automobiles/99999", map[string]any{"color": "Blue"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"detail":"automobile not found"}`, w.Body.String())
}

func TestUpdateEndpointRejectsInvalidMerge(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/automobiles", createBody("9BWZZZ5X0JP000001", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var created Automobile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/automobiles/%d", created.ID), map[string]any{"year": 1800})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteEndpoint(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/automobiles", createBody("9BWZZZ5X0JP000001", nil))
	require.Equal(t, http.StatusCreated, w.Code)
	var created Automobile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/automobiles/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.Bytes())

	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/automobiles/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/automobiles/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidIDRejected(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/automobiles/abc", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
