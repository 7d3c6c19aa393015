package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lokavera/catalog-admin/internal/dto"
	"github.com/lokavera/catalog-admin/internal/model"
	"github.com/lokavera/catalog-admin/pkg/apperror"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.SubCategory{},
		&model.Brand{},
		&model.Supplier{},
	))

	return db
}

func newBrandRepo(t *testing.T) *Catalog[*model.Brand] {
	t.Helper()
	return NewCatalog(newTestDB(t), func() *model.Brand { return &model.Brand{} }, true)
}

func seedBrand(t *testing.T, repo *Catalog[*model.Brand], name, slug string, position int, active bool) *model.Brand {
	t.Helper()

	brand := &model.Brand{
		CatalogBase: model.CatalogBase{Name: name, Position: position, IsActive: active},
		Slug:        slug,
	}
	require.NoError(t, repo.Create(context.Background(), brand))
	return brand
}

func TestCatalogCreateAndFind(t *testing.T) {
	repo := newBrandRepo(t)
	ctx := context.Background()

	created := seedBrand(t, repo, "Acme", "acme", 1, true)
	assert.NotZero(t, created.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", byID.Name)

	byName, err := repo.FindByName(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	bySlug, err := repo.FindBySlug(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = repo.FindByName(ctx, "Missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCatalogCreateDuplicateKeyIsConflict(t *testing.T) {
	repo := newBrandRepo(t)
	ctx := context.Background()

	seedBrand(t, repo, "Acme", "acme", 1, true)

	// Straight to storage, no service pre-check: the unique index is the
	// backstop for duplicate creates that race past it.
	dup := &model.Brand{
		CatalogBase: model.CatalogBase{Name: "Acme", IsActive: true},
		Slug:        "acme-other",
	}
	assert.ErrorIs(t, repo.Create(ctx, dup), apperror.ErrConflict)

	slugDup := &model.Brand{
		CatalogBase: model.CatalogBase{Name: "Acme Other", IsActive: true},
		Slug:        "acme",
	}
	assert.ErrorIs(t, repo.Create(ctx, slugDup), apperror.ErrConflict)
}

func TestCatalogListDefaultsToActive(t *testing.T) {
	repo := newBrandRepo(t)
	ctx := context.Background()

	seedBrand(t, repo, "Active One", "active-one", 1, true)
	seedBrand(t, repo, "Inactive One", "inactive-one", 2, false)

	q := dto.ListQuery{Page: 1, Limit: 10}
	rows, total, err := repo.List(ctx, q)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Active One", rows[0].Name)

	inactive := false
	q.IsActive = &inactive
	rows, total, err = repo.List(ctx, q)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Inactive One", rows[0].Name)
}

func TestCatalogListPagination(t *testing.T) {
	repo := newBrandRepo(t)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		seedBrand(t, repo, fmt.Sprintf("Brand %02d", i), fmt.Sprintf("brand-%02d", i), i, true)
	}

	rows, total, err := repo.List(ctx, dto.ListQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	assert.Len(t, rows, 5)
	assert.Equal(t, "Brand 11", rows[0].Name)
}

func TestCatalogListOrdering(t *testing.T) {
	repo := newBrandRepo(t)
	ctx := context.Background()

	seedBrand(t, repo, "Zeta", "zeta", 2, true)
	seedBrand(t, repo, "Alpha", "alpha", 2, true)
	seedBrand(t, repo, "First", "first", 1, true)

	rows, _, err := repo.List(ctx, dto.ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// position ascending, name ascending as the tie-break
	assert.Equal(t, "First", rows[0].Name)
	assert.Equal(t, "Alpha", rows[1].Name)
	assert.Equal(t, "Zeta", rows[2].Name)
}

func TestCatalogListSearch(t *testing.T) {
	repo := newBrandRepo(t)
	ctx := context.Background()

	seedBrand(t, repo, "Nordic Wood", "nordic-wood", 1, true)
	brand := &model.Brand{
		CatalogBase: model.CatalogBase{Name: "Plastics Inc", Description: "everything wooden", Position: 2, IsActive: true},
		Slug:        "plastics-inc",
	}
	require.NoError(t, repo.Create(ctx, brand))
	seedBrand(t, repo, "Steelworks", "steelworks", 3, true)

	rows, total, err := repo.List(ctx, dto.ListQuery{
		Page: 1, Limit: 10,
		ListFilters: dto.ListFilters{Search: "WOOD"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
}

func TestCatalogListPositionBounds(t *testing.T) {
	repo := newBrandRepo(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		seedBrand(t, repo, fmt.Sprintf("B%d", i), fmt.Sprintf("b%d", i), i, true)
	}

	minPos, maxPos := 2, 4
	rows, total, err := repo.List(ctx, dto.ListQuery{
		Page: 1, Limit: 10,
		ListFilters: dto.ListFilters{PositionMin: &minPos, PositionMax: &maxPos},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 3)
	assert.Equal(t, 2, rows[0].Position)
	assert.Equal(t, 4, rows[2].Position)
}

func TestCatalogSoftAndForceDelete(t *testing.T) {
	repo := newBrandRepo(t)
	ctx := context.Background()

	soft := seedBrand(t, repo, "Soft", "soft", 1, true)
	require.NoError(t, repo.Delete(ctx, soft, false))

	_, err := repo.FindByID(ctx, soft.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	recovered, err := repo.FindByIDUnscoped(ctx, soft.ID)
	require.NoError(t, err)
	assert.True(t, recovered.DeletedAt.Valid)

	// Soft-deleted rows also drop out of list results.
	_, total, err := repo.List(ctx, dto.ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)

	hard := seedBrand(t, repo, "Hard", "hard", 2, true)
	require.NoError(t, repo.Delete(ctx, hard, true))

	_, err = repo.FindByIDUnscoped(ctx, hard.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCatalogShowPreload(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	categoryRepo := NewCatalog(db, func() *model.Category { return &model.Category{} }, true).
		WithShowPreload("SubCategories", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_active = ?", true).Order("position asc")
		})
	subRepo := NewCatalog(db, func() *model.SubCategory { return &model.SubCategory{} }, true)

	cat := &model.Category{
		CatalogBase: model.CatalogBase{Name: "Electronics", IsActive: true},
		Slug:        "electronics",
	}
	require.NoError(t, categoryRepo.Create(ctx, cat))

	for i, row := range []struct {
		name   string
		active bool
		pos    int
	}{
		{"Phones", true, 2},
		{"Laptops", true, 1},
		{"Hidden", false, 3},
	} {
		sub := &model.SubCategory{
			CatalogBase: model.CatalogBase{Name: row.name, Position: row.pos, IsActive: row.active},
			Slug:        fmt.Sprintf("sub-%d", i),
			CategoryID:  cat.ID,
		}
		require.NoError(t, subRepo.Create(ctx, sub))
	}

	shown, err := categoryRepo.ShowByID(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, shown.SubCategories, 2)
	assert.Equal(t, "Laptops", shown.SubCategories[0].Name)
	assert.Equal(t, "Phones", shown.SubCategories[1].Name)

	// Plain FindByID stays shallow.
	plain, err := categoryRepo.FindByID(ctx, cat.ID)
	require.NoError(t, err)
	assert.Empty(t, plain.SubCategories)
}
