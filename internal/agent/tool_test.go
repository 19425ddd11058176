package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pedropiresdev/c2s-challenge/internal/automobile"
	"github.com/pedropiresdev/c2s-challenge/internal/common/middleware"
)

func strp(s string) *string { return &s }

func fixtureFleet(n int) []automobile.Automobile {
	autos := make([]automobile.Automobile, 0, n)
	for i := 0; i < n; i++ {
		autos = append(autos, automobile.Automobile{
			ID:          uint(i + 1),
			Make:        "Honda",
			Model:       "Civic",
			Year:        2020 + i%5,
			Color:       "Black",
			FuelType:    automobile.FuelFlex,
			Mileage:     1000.5,
			DoorCount:   4,
			Plate:       strp("ABC1D23"),
			ChassisCode: "9BWZZZ5X0JP000001",
			FipeCode:    "005370-1",
		})
	}
	return autos
}

func newAPIStub(t *testing.T, autos []automobile.Automobile, gotQuery *map[string][]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/automobiles", r.URL.Path)
		if gotQuery != nil {
			*gotQuery = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(autos))
	}))
}

func TestClientSearchBuildsQueryFromFilter(t *testing.T) {
	var gotQuery map[string][]string
	srv := newAPIStub(t, fixtureFleet(2), &gotQuery)
	defer srv.Close()

	client := NewClient(srv.URL)
	yearMin := 2020
	mileageMax := 0.0
	fuel := automobile.FuelFlex

	autos, err := client.Search(context.Background(), &automobile.Filter{
		Make:       strp("Honda"),
		YearMin:    &yearMin,
		MileageMax: &mileageMax,
		FuelType:   &fuel,
	})
	require.NoError(t, err)
	require.Len(t, autos, 2)

	require.Equal(t, []string{"Honda"}, gotQuery["make"])
	require.Equal(t, []string{"2020"}, gotQuery["year_min"])
	require.Equal(t, []string{"0"}, gotQuery["mileage_max"])
	require.Equal(t, []string{"Flex"}, gotQuery["fuel_type"])
	require.NotContains(t, gotQuery, "model")
	require.NotContains(t, gotQuery, "door_count")
}

func TestClientSearchEmptyFilterSendsNoParams(t *testing.T) {
	var gotQuery map[string][]string
	srv := newAPIStub(t, nil, &gotQuery)
	defer srv.Close()

	_, err := NewClient(srv.URL).Search(context.Background(), &automobile.Filter{})
	require.NoError(t, err)
	require.Empty(t, gotQuery)
}

func TestClientBreakerOpensAfterRepeatedFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := client.Search(ctx, nil)
		require.Error(t, err)
	}

	// Breaker is now open: the call fails without reaching the server.
	_, err := client.Search(ctx, nil)
	require.ErrorIs(t, err, middleware.ErrCircuitOpen)
}

func TestToolCallParsesFilterJSON(t *testing.T) {
	var gotQuery map[string][]string
	srv := newAPIStub(t, fixtureFleet(1), &gotQuery)
	defer srv.Close()

	tool := NewSearchTool(NewClient(srv.URL), 5)
	out, err := tool.Call(context.Background(), `{"make": "Honda", "year_min": 2020}`)
	require.NoError(t, err)

	require.Equal(t, []string{"Honda"}, gotQuery["make"])
	require.Equal(t, []string{"2020"}, gotQuery["year_min"])
	require.Contains(t, out, "Results found:")
	require.Contains(t, out, "Make: Honda")
	require.Contains(t, out, "Plate: ABC1D23")
}

func TestToolCallTruncatesLongResults(t *testing.T) {
	srv := newAPIStub(t, fixtureFleet(8), nil)
	defer srv.Close()

	tool := NewSearchTool(NewClient(srv.URL), 5)
	out, err := tool.Call(context.Background(), "{}")
	require.NoError(t, err)
	require.Contains(t, out, "...and 3 more results.")
}

func TestToolCallReportsEmptyInventory(t *testing.T) {
	srv := newAPIStub(t, nil, nil)
	defer srv.Close()

	tool := NewSearchTool(NewClient(srv.URL), 5)
	out, err := tool.Call(context.Background(), `{"make": "Lada"}`)
	require.NoError(t, err)
	require.Equal(t, "No automobiles matched the given filters.", out)
}

func TestToolCallSurfacesBadJSONAsObservation(t *testing.T) {
	tool := NewSearchTool(NewClient("http://127.0.0.1:0"), 5)
	out, err := tool.Call(context.Background(), "not json")
	require.NoError(t, err)
	require.Contains(t, out, "invalid filter JSON")
}

func TestToolFormatsAbsentPlate(t *testing.T) {
	autos := fixtureFleet(1)
	autos[0].Plate = nil
	srv := newAPIStub(t, autos, nil)
	defer srv.Close()

	tool := NewSearchTool(NewClient(srv.URL), 5)
	out, err := tool.Call(context.Background(), "{}")
	require.NoError(t, err)
	require.Contains(t, out, "Plate: N/A")
}
