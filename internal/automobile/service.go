package automobile

import (
	"context"
	"fmt"
	"strings"
)

// Service wraps the repo with the validation the transport layer relies on.
// It has no transport dependency so it can be reused by the HTTP handlers,
// the seeder and tests alike.
type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the caller-supplied fields of a new record; identity
// and creation timestamp come from the store.
type CreateInput struct {
	Make        string
	Model       string
	Year        int
	Color       string
	FuelType    FuelType
	Mileage     float64
	DoorCount   int
	Plate       *string
	ChassisCode string
	FipeCode    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Automobile, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}

	a := &Automobile{
		Make:        strings.TrimSpace(in.Make),
		Model:       strings.TrimSpace(in.Model),
		Year:        in.Year,
		Color:       strings.TrimSpace(in.Color),
		FuelType:    in.FuelType,
		Mileage:     in.Mileage,
		DoorCount:   in.DoorCount,
		ChassisCode: strings.ToUpper(strings.TrimSpace(in.ChassisCode)),
		FipeCode:    strings.TrimSpace(in.FipeCode),
	}
	if in.Plate != nil {
		plate := strings.ToUpper(strings.TrimSpace(*in.Plate))
		a.Plate = &plate
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*Automobile, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f *Filter) ([]Automobile, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.repo.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id uint, p *Patch) (*Automobile, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id uint) (bool, error) {
	if s == nil || s.repo == nil {
		return false, fmt.Errorf("service not initialized")
	}
	return s.repo.Delete(ctx, id)
}
