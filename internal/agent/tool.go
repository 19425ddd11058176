package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pedropiresdev/c2s-challenge/internal/automobile"
)

// SearchTool is the single tool bound to the agent: a JSON filter in, a
// short human-readable inventory summary out.
type SearchTool struct {
	client     *Client
	maxResults int
}

func NewSearchTool(client *Client, maxResults int) *SearchTool {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &SearchTool{client: client, maxResults: maxResults}
}

func (t *SearchTool) Name() string {
	return "search_inventory"
}

func (t *SearchTool) Description() string {
	return `Searches the automobile inventory. Input must be a JSON object with any
of these optional filter fields: make, model, year_min, year_max, fuel_type,
mileage_max, door_count, plate_partial, fipe_code.
Example: {"make": "Toyota", "year_min": 2020}.
Valid fuel_type values: Gasoline, Ethanol, Diesel, Flex, Electric, Hybrid.`
}

// Call parses the model-produced filter JSON and runs the lookup. Errors are
// returned as tool observations, not as Go errors, so the agent can recover
// by reformulating.
func (t *SearchTool) Call(ctx context.Context, input string) (string, error) {
	var f automobile.Filter
	input = strings.TrimSpace(input)
	if input != "" && input != "{}" {
		if err := json.Unmarshal([]byte(input), &f); err != nil {
			return fmt.Sprintf("invalid filter JSON: %v", err), nil
		}
	}

	autos, err := t.client.Search(ctx, &f)
	if err != nil {
		return fmt.Sprintf("inventory lookup failed: %v", err), nil
	}
	return t.format(autos), nil
}

func (t *SearchTool) format(autos []automobile.Automobile) string {
	if len(autos) == 0 {
		return "No automobiles matched the given filters."
	}

	shown := autos
	if len(shown) > t.maxResults {
		shown = shown[:t.maxResults]
	}

	var b strings.Builder
	b.WriteString("Results found:\n")
	for _, a := range shown {
		plate := "N/A"
		if a.Plate != nil {
			plate = *a.Plate
		}
		fmt.Fprintf(&b, "ID: %d, Make: %s, Model: %s, Year: %d, Color: %s, Fuel: %s, Mileage: %.1f, Doors: %d, Plate: %s, Chassis: %s, FIPE: %s\n",
			a.ID, a.Make, a.Model, a.Year, a.Color, a.FuelType, a.Mileage, a.DoorCount, plate, a.ChassisCode, a.FipeCode)
	}
	if extra := len(autos) - len(shown); extra > 0 {
		fmt.Fprintf(&b, "...and %d more results.", extra)
	}
	return strings.TrimRight(b.String(), "\n")
}
