package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/lokavera/catalog-admin/internal/dto"
	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/internal/repository"
	"github.com/lokavera/catalog-admin/pkg/apperror"
	"github.com/lokavera/catalog-admin/pkg/cache"
	"github.com/lokavera/catalog-admin/pkg/slug"
)

// CatalogService implements the create/read/update/status/delete workflow
// shared by every catalog entity. Instantiated once per entity type instead
// of duplicating seven structurally identical services.
type CatalogService[T model.CatalogEntity] struct {
	entity    string
	repo      *repository.Catalog[T]
	cache     *cache.Cache
	sanitizer *bluemonday.Policy
}

func NewCatalogService[T model.CatalogEntity](entity string, repo *repository.Catalog[T], listCache *cache.Cache) *CatalogService[T] {
	return &CatalogService[T]{
		entity:    entity,
		repo:      repo,
		cache:     listCache,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Create persists a new entity after independent name and slug uniqueness
// checks. The pre-checks are not atomic against concurrent duplicates; the
// unique indexes surface any racy miss as a Conflict on insert.
func (s *CatalogService[T]) Create(ctx context.Context, req dto.CreateCatalogRequest) (T, error) {
	var zero T

	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return zero, apperror.Conflict(fmt.Sprintf("%s with name %q already exists", s.entity, req.Name))
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return zero, err
	}

	patch := req.Patch()
	s.sanitizePatch(&patch)

	entity := s.repo.New()
	entity.ApplyPatch(patch)
	if req.IsActive == nil {
		entity.SetIsActive(true)
	}

	if s.repo.HasSlug() {
		candidate := slug.Make(req.Name)
		if req.Slug != nil && *req.Slug != "" {
			candidate = slug.Make(*req.Slug)
		}

		if _, err := s.repo.FindBySlug(ctx, candidate); err == nil {
			return zero, apperror.Conflict(fmt.Sprintf("%s with slug %q already exists", s.entity, candidate))
		} else if !errors.Is(err, apperror.ErrNotFound) {
			return zero, err
		}

		entity.SetSlug(candidate)
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return zero, apperror.Conflict(fmt.Sprintf("%s with name %q already exists", s.entity, req.Name))
		}
		return zero, err
	}

	return entity, nil
}

// Update merges the patch onto the loaded row. A name change recomputes the
// slug; a collision with a different row is a Conflict. Absent fields keep
// their stored values.
func (s *CatalogService[T]) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCatalogRequest) (T, error) {
	var zero T

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, s.notFound(id, err)
	}

	patch := req.Patch()
	s.sanitizePatch(&patch)

	if s.repo.HasSlug() {
		newSlug := ""
		switch {
		case req.Slug != nil && *req.Slug != "":
			newSlug = slug.Make(*req.Slug)
		case req.Name != nil && *req.Name != entity.GetName():
			newSlug = slug.Make(*req.Name)
		}

		if newSlug != "" && newSlug != entity.GetSlug() {
			existing, err := s.repo.FindBySlug(ctx, newSlug)
			if err == nil && existing.GetID() != id {
				return zero, apperror.Conflict(fmt.Sprintf("%s with slug %q already exists", s.entity, newSlug))
			}
			if err != nil && !errors.Is(err, apperror.ErrNotFound) {
				return zero, err
			}
			patch.Slug = &newSlug
		} else {
			patch.Slug = nil
		}
	}

	entity.ApplyPatch(patch)

	if err := s.repo.Save(ctx, entity); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return zero, apperror.Conflict(fmt.Sprintf("%s update collides with an existing name or slug", s.entity))
		}
		return zero, err
	}

	return entity, nil
}

// ToggleStatus flips IsActive and nothing else.
func (s *CatalogService[T]) ToggleStatus(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, s.notFound(id, err)
	}

	entity.SetIsActive(!entity.GetIsActive())

	if err := s.repo.Save(ctx, entity); err != nil {
		return zero, err
	}

	return entity, nil
}

// Delete soft-deletes by default; force removes the row permanently. The
// returned entity is the row as it was immediately before removal.
func (s *CatalogService[T]) Delete(ctx context.Context, id uuid.UUID, force bool) (T, error) {
	var zero T

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return zero, s.notFound(id, err)
	}

	if err := s.repo.Delete(ctx, entity, force); err != nil {
		return zero, err
	}

	return entity, nil
}

// List consults the short-TTL result cache before querying. Identical filter
// sets within the TTL share one database round trip; staleness up to the TTL
// is accepted.
func (s *CatalogService[T]) List(ctx context.Context, q dto.ListQuery) (*dto.Paginated[T], error) {
	q.Normalize()

	key := s.listCacheKey(q)
	var cached dto.Paginated[T]
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	result := &dto.Paginated[T]{
		Data: rows,
		Meta: dto.NewMeta(q, total),
	}

	s.cache.Set(ctx, key, result)

	return result, nil
}

// Show returns one row with its registered shallow relations, or NotFound.
func (s *CatalogService[T]) Show(ctx context.Context, id uuid.UUID) (T, error) {
	entity, err := s.repo.ShowByID(ctx, id)
	if err != nil {
		var zero T
		return zero, s.notFound(id, err)
	}
	return entity, nil
}

// ShowDeleted is the explicit include-deleted read path; soft-deleted rows
// come back with deleted_at set.
func (s *CatalogService[T]) ShowDeleted(ctx context.Context, id uuid.UUID) (T, error) {
	entity, err := s.repo.FindByIDUnscoped(ctx, id)
	if err != nil {
		var zero T
		return zero, s.notFound(id, err)
	}
	return entity, nil
}

func (s *CatalogService[T]) notFound(id uuid.UUID, err error) error {
	if errors.Is(err, apperror.ErrNotFound) {
		return apperror.NotFound(fmt.Sprintf("%s with id %s not found", s.entity, id))
	}
	return err
}

func (s *CatalogService[T]) listCacheKey(q dto.ListQuery) string {
	raw, _ := json.Marshal(q)
	return fmt.Sprintf("%s:list:%s", s.entity, raw)
}

// sanitizePatch strips unsafe markup from rich-text fields before they reach
// storage.
func (s *CatalogService[T]) sanitizePatch(p *model.CatalogPatch) {
	for _, field := range []**string{&p.MetaContent, &p.Specifications} {
		if *field != nil {
			clean := s.sanitizer.Sanitize(**field)
			*field = &clean
		}
	}
}
