// Package agent turns natural-language questions into filtered lookups
// against the inventory REST API.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pedropiresdev/c2s-challenge/internal/automobile"
	"github.com/pedropiresdev/c2s-challenge/internal/common/middleware"
)

// Client calls GET /automobiles with a filter. Calls run under a circuit
// breaker so a dead API stops being hammered by the agent loop.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *middleware.CircuitBreaker
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		breaker: middleware.NewCircuitBreaker("inventory-api", 5, 30*time.Second),
	}
}

// Search lists the automobiles matching f.
func (c *Client) Search(ctx context.Context, f *automobile.Filter) ([]automobile.Automobile, error) {
	endpoint := c.baseURL + "/automobiles"
	if q := queryParams(f).Encode(); q != "" {
		endpoint += "?" + q
	}

	var autos []automobile.Automobile
	err := c.breaker.Call(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("inventory api returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&autos)
	})
	if err != nil {
		return nil, err
	}
	return autos, nil
}

// queryParams maps present filter fields to the API's query-string contract.
func queryParams(f *automobile.Filter) url.Values {
	params := url.Values{}
	if f == nil {
		return params
	}
	if f.Make != nil {
		params.Set("make", *f.Make)
	}
	if f.Model != nil {
		params.Set("model", *f.Model)
	}
	if f.YearMin != nil {
		params.Set("year_min", strconv.Itoa(*f.YearMin))
	}
	if f.YearMax != nil {
		params.Set("year_max", strconv.Itoa(*f.YearMax))
	}
	if f.FuelType != nil {
		params.Set("fuel_type", string(*f.FuelType))
	}
	if f.MileageMax != nil {
		params.Set("mileage_max", strconv.FormatFloat(*f.MileageMax, 'f', -1, 64))
	}
	if f.DoorCount != nil {
		params.Set("door_count", strconv.Itoa(*f.DoorCount))
	}
	if f.PlatePartial != nil {
		params.Set("plate_partial", *f.PlatePartial)
	}
	if f.FipeCode != nil {
		params.Set("fipe_code", *f.FipeCode)
	}
	return params
}
