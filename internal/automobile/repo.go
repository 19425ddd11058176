package automobile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pedropiresdev/c2s-challenge/internal/errs"
)

// Repo owns all persistence of Automobile records: create, fetch by id,
// filtered listing, partial update and delete. Absence is a nil/false return,
// never an error; driver failures propagate wrapped and are not retried.
type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

// Create persists a new record. ID and CreatedAt are assigned by the store.
// A duplicate plate or chassis code comes back as errs.ErrConflict; the race
// between two concurrent creates on the same value is settled by the unique
// index, not by application logic.
func (r *Repo) Create(ctx context.Context, a *Automobile) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	if err := db.Create(a).Error; err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: plate or chassis_code already exists", errs.ErrConflict)
		}
		return fmt.Errorf("create automobile: %w", err)
	}
	return nil
}

// GetByID returns (nil, nil) when no record has the given id.
func (r *Repo) GetByID(ctx context.Context, id uint) (*Automobile, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var a Automobile
	if err := db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get automobile %d: %w", id, err)
	}
	return &a, nil
}

// List returns every record matching the filter, id ascending. A nil or
// empty filter returns all records.
func (r *Repo) List(ctx context.Context, f *Filter) ([]Automobile, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	q := f.Scope(db.Model(&Automobile{}))

	var autos []Automobile
	if err := q.Order("id asc").Find(&autos).Error; err != nil {
		return nil, fmt.Errorf("list automobiles: %w", err)
	}
	return autos, nil
}

// Update applies the present fields of the patch onto the stored record,
// re-validates the merged result and commits it in one transaction. Returns
// (nil, nil) when the id does not exist.
func (r *Repo) Update(ctx context.Context, id uint, p *Patch) (*Automobile, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}

	var updated *Automobile
	err := db.Transaction(func(tx *gorm.DB) error {
		var a Automobile
		if err := tx.First(&a, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("get automobile %d: %w", id, err)
		}

		p.Apply(&a)
		if err := a.Validate(); err != nil {
			return err
		}
		if err := tx.Save(&a).Error; err != nil {
			if isDuplicate(err) {
				return fmt.Errorf("%w: plate or chassis_code already exists", errs.ErrConflict)
			}
			return fmt.Errorf("update automobile %d: %w", id, err)
		}
		updated = &a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the record and reports whether it existed. Deleting a
// missing id is not an error.
func (r *Repo) Delete(ctx context.Context, id uint) (bool, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return false, fmt.Errorf("repo db is nil")
	}
	res := db.Delete(&Automobile{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete automobile %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// isDuplicate recognizes unique constraint violations. GORM translates them
// to ErrDuplicatedKey when the driver supports it; the message checks cover
// drivers opened without error translation.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
