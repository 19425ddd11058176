// Package seed generates fake inventory data for development databases.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/pedropiresdev/c2s-challenge/internal/automobile"
	"github.com/pedropiresdev/c2s-challenge/internal/common/logger"
	"github.com/pedropiresdev/c2s-challenge/internal/errs"
)

const chassisCharset = "0123456789ABCDEFGHJKLMNPRSTUVWXYZ"

// Generator produces random Automobile records that satisfy every field
// constraint, so they can go straight through the service layer.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator builds a generator; seed 0 means non-deterministic.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(int64(seed))}
}

// Automobile returns one random, valid record.
func (g *Generator) Automobile() automobile.CreateInput {
	car := g.faker.Car()
	plate := g.Plate()

	return automobile.CreateInput{
		Make:        truncate(car.Brand, 50),
		Model:       truncate(car.Model, 50),
		Year:        g.faker.Number(1990, 2025),
		Color:       truncate(g.faker.Color(), 30),
		FuelType:    automobile.FuelTypes[g.faker.Number(0, len(automobile.FuelTypes)-1)],
		Mileage:     g.faker.Float64Range(0, 200000),
		DoorCount:   g.faker.Number(2, 5),
		Plate:       &plate,
		ChassisCode: g.Chassis(),
		FipeCode:    fmt.Sprintf("%06d-%d", g.faker.Number(0, 999999), g.faker.Number(0, 9)),
	}
}

// Plate returns a Mercosul-format plate: LLL-NLNN.
func (g *Generator) Plate() string {
	letters := strings.ToUpper(g.faker.LetterN(3))
	return fmt.Sprintf("%s-%d%s%02d",
		letters,
		g.faker.Number(0, 9),
		strings.ToUpper(g.faker.LetterN(1)),
		g.faker.Number(0, 99),
	)
}

// Chassis returns a 17-character code over the VIN alphabet.
func (g *Generator) Chassis() string {
	var b strings.Builder
	for i := 0; i < 17; i++ {
		b.WriteByte(chassisCharset[g.faker.Number(0, len(chassisCharset)-1)])
	}
	return b.String()
}

// Run inserts n generated records through the service. Uniqueness conflicts
// on randomly generated plates/chassis are skipped, not fatal.
func Run(ctx context.Context, svc *automobile.Service, g *Generator, n int, log logger.Logger) (int, error) {
	inserted := 0
	for i := 0; i < n; i++ {
		in := g.Automobile()
		if _, err := svc.Create(ctx, in); err != nil {
			if errors.Is(err, errs.ErrConflict) {
				if log != nil {
					log.Warnf("skipping duplicate generated record: %v", err)
				}
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
