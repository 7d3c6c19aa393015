package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lokavera/catalog-admin/internal/dto"
	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/pkg/apperror"
)

type preload struct {
	association string
	scope       func(*gorm.DB) *gorm.DB
}

// Catalog is the storage access shared by every catalog entity. T is a
// pointer type (e.g. *model.Brand); newFn produces a zero value for GORM to
// scan into.
type Catalog[T model.CatalogEntity] struct {
	db           *gorm.DB
	newFn        func() T
	hasSlug      bool
	showPreloads []preload
}

func NewCatalog[T model.CatalogEntity](db *gorm.DB, newFn func() T, hasSlug bool) *Catalog[T] {
	return &Catalog[T]{db: db, newFn: newFn, hasSlug: hasSlug}
}

// WithShowPreload registers an association loaded on Show reads only; plain
// FindByID stays shallow.
func (r *Catalog[T]) WithShowPreload(association string, scope func(*gorm.DB) *gorm.DB) *Catalog[T] {
	r.showPreloads = append(r.showPreloads, preload{association: association, scope: scope})
	return r
}

func (r *Catalog[T]) HasSlug() bool { return r.hasSlug }

// New returns a fresh zero entity.
func (r *Catalog[T]) New() T { return r.newFn() }

func (r *Catalog[T]) Create(ctx context.Context, entity T) error {
	return translate(r.db.WithContext(ctx).Create(entity).Error)
}

func (r *Catalog[T]) FindByID(ctx context.Context, id uuid.UUID) (T, error) {
	out := r.newFn()
	if err := r.db.WithContext(ctx).First(out, "id = ?", id).Error; err != nil {
		var zero T
		return zero, translate(err)
	}
	return out, nil
}

// FindByIDUnscoped also matches soft-deleted rows; deleted_at is surfaced on
// the result.
func (r *Catalog[T]) FindByIDUnscoped(ctx context.Context, id uuid.UUID) (T, error) {
	out := r.newFn()
	if err := r.db.WithContext(ctx).Unscoped().First(out, "id = ?", id).Error; err != nil {
		var zero T
		return zero, translate(err)
	}
	return out, nil
}

// ShowByID loads one row with the registered show preloads applied.
func (r *Catalog[T]) ShowByID(ctx context.Context, id uuid.UUID) (T, error) {
	tx := r.db.WithContext(ctx)
	for _, p := range r.showPreloads {
		if p.scope != nil {
			tx = tx.Preload(p.association, p.scope)
		} else {
			tx = tx.Preload(p.association)
		}
	}

	out := r.newFn()
	if err := tx.First(out, "id = ?", id).Error; err != nil {
		var zero T
		return zero, translate(err)
	}
	return out, nil
}

func (r *Catalog[T]) FindByName(ctx context.Context, name string) (T, error) {
	out := r.newFn()
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(out).Error; err != nil {
		var zero T
		return zero, translate(err)
	}
	return out, nil
}

func (r *Catalog[T]) FindBySlug(ctx context.Context, slug string) (T, error) {
	out := r.newFn()
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(out).Error; err != nil {
		var zero T
		return zero, translate(err)
	}
	return out, nil
}

func (r *Catalog[T]) List(ctx context.Context, q dto.ListQuery) ([]T, int64, error) {
	tx := r.db.WithContext(ctx).Model(r.newFn())

	// Active-only is the default view; an explicit false is honored.
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	} else {
		tx = tx.Where("is_active = ?", true)
	}

	if q.Search != "" {
		pattern := "%" + strings.ToLower(q.Search) + "%"
		if r.hasSlug {
			tx = tx.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(slug) LIKE ?",
				pattern, pattern, pattern,
			)
		} else {
			tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
	}

	if q.CreatedFrom != nil {
		tx = tx.Where("created_at >= ?", *q.CreatedFrom)
	}
	if q.CreatedTo != nil {
		tx = tx.Where("created_at <= ?", *q.CreatedTo)
	}
	if q.PositionMin != nil {
		tx = tx.Where("position >= ?", *q.PositionMin)
	}
	if q.PositionMax != nil {
		tx = tx.Where("position <= ?", *q.PositionMax)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx = applyOrder(tx, q)

	var rows []T
	if err := tx.Offset(q.Offset()).Limit(q.Limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func applyOrder(tx *gorm.DB, q dto.ListQuery) *gorm.DB {
	if q.SortBy != "" {
		order := "asc"
		if q.SortOrder == "desc" {
			order = "desc"
		}
		// SortBy is whitelisted at the binding layer.
		tx = tx.Order(q.SortBy + " " + order)
		if q.SortBy != "name" {
			tx = tx.Order("name asc")
		}
		return tx
	}

	return tx.Order("position asc").Order("name asc")
}

func (r *Catalog[T]) Save(ctx context.Context, entity T) error {
	return translate(r.db.WithContext(ctx).Save(entity).Error)
}

// Delete removes the row permanently when force is set, otherwise marks it
// soft-deleted.
func (r *Catalog[T]) Delete(ctx context.Context, entity T, force bool) error {
	tx := r.db.WithContext(ctx)
	if force {
		tx = tx.Unscoped()
	}
	return translate(tx.Delete(entity).Error)
}

// translate maps GORM storage errors onto the application taxonomy. The
// duplicate-key branch is the authoritative defense against racy duplicate
// creates that slip past service-level pre-checks.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return apperror.ErrConflict
	default:
		return err
	}
}

// isUniqueViolation matches unique-index errors from dialectors that do not
// implement ErrorTranslator (the sqlite driver), where gorm.ErrDuplicatedKey
// is never produced.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
