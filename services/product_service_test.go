package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/catalog"
	"github.com/durable-fastener/durable-cms-backend/models"
)

func hexBolt() models.ProductRequest {
	return models.ProductRequest{
		Name:     "Hex Head Bolt",
		Category: "Fasteners",
		Materials: []catalog.MaterialRow{
			{Name: "Stainless Steel", Grades: "304, 316"},
		},
		Images: []string{"https://img/bolt.png", "  "},
		Sizes: []catalog.SizeRow{
			{Diameter: "M6", Length: "20"},
			{Diameter: "M8", Length: "25"},
		},
		Finishes: []catalog.FinishRow{
			{Name: "Zinc", Image: "https://img/zinc.png"},
			{Name: "Black"},
		},
		Applications: []catalog.Application{{Name: "Construction"}},
	}
}

func TestProductCreateReconcilesVariants(t *testing.T) {
	s := newTestServices(t, nil, nil)

	p, err := s.Products.Create(ctx(), hexBolt())
	require.NoError(t, err)

	assert.Equal(t, "hex-head-bolt", p.Slug)
	assert.Equal(t, "Stainless Steel (Grade 304, 316)", p.Material)
	assert.Equal(t, models.StringList{"https://img/bolt.png"}, p.Images)
	assert.Equal(t, models.FinishImageMap{"Zinc": "https://img/zinc.png"}, p.FinishImages)
	require.Len(t, p.Variants, 4)

	got := p.CatalogVariants()
	assert.Contains(t, got, catalog.Variant{Diameter: "M6", Length: "20", Finish: "Zinc"})
	assert.Contains(t, got, catalog.Variant{Diameter: "M8", Length: "25", Finish: "Black"})
}

func TestProductUpdateReplacesVariantSet(t *testing.T) {
	s := newTestServices(t, nil, nil)

	p, err := s.Products.Create(ctx(), hexBolt())
	require.NoError(t, err)

	req := hexBolt()
	req.Sizes = []catalog.SizeRow{{Diameter: "M10", Length: "40"}}
	req.Finishes = nil
	updated, err := s.Products.Update(ctx(), p.ID, req)
	require.NoError(t, err)

	assert.Equal(t, p.ID, updated.ID)
	require.Len(t, updated.Variants, 1)
	assert.Equal(t, "M10", updated.Variants[0].Diameter)
	assert.Equal(t, "", updated.Variants[0].Finish)

	var count int64
	require.NoError(t, s.Products.db.Model(&models.ProductVariant{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProductSlugTaken(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Products.Create(ctx(), hexBolt())
	require.NoError(t, err)

	_, err = s.Products.Create(ctx(), hexBolt())
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestProductUpdateMissing(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Products.Update(ctx(), uuid.Must(uuid.NewV7()), hexBolt())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductRequiresName(t *testing.T) {
	s := newTestServices(t, nil, nil)

	req := hexBolt()
	req.Name = "   "
	_, err := s.Products.Create(ctx(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "name is required", Message(err))
}

func TestProductEditorStateRoundTrip(t *testing.T) {
	s := newTestServices(t, nil, nil)

	p, err := s.Products.Create(ctx(), hexBolt())
	require.NoError(t, err)

	state, err := s.Products.EditorState(ctx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, []catalog.MaterialRow{{Name: "Stainless Steel", Grades: "304, 316"}}, state.Materials)
	assert.Len(t, state.Sizes, 2)
	assert.Len(t, state.Finishes, 2)
	require.Len(t, state.Applications, 1)
	assert.Equal(t, "Construction", state.Applications[0].Name)
}

func TestProductListFiltersByCategoryToken(t *testing.T) {
	s := newTestServices(t, nil, nil)

	fasteners, err := s.Categories.CreateCategory(ctx(), "Fasteners")
	require.NoError(t, err)
	screws, err := s.Categories.CreateSubCategory(ctx(), fasteners.ID, "Screws")
	require.NoError(t, err)
	_, err = s.Categories.CreateCategory(ctx(), "Fittings")
	require.NoError(t, err)

	screw := hexBolt()
	screw.Name = "Drywall Screw"
	screw.SubCategory = screws.ID.String()
	_, err = s.Products.Create(ctx(), screw)
	require.NoError(t, err)

	elbow := hexBolt()
	elbow.Name = "Pipe Elbow"
	elbow.Category = "Fittings"
	_, err = s.Products.Create(ctx(), elbow)
	require.NoError(t, err)

	page, err := s.Products.List(ctx(), ProductQuery{Category: "SCREWS"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Drywall Screw", page.Products[0].Name)
	require.NotNil(t, page.Resolution)
	assert.Equal(t, catalog.LevelSubCategory, page.Resolution.Level)
	assert.Equal(t, fasteners.ID.String(), page.Resolution.ExpandCategoryID)
	assert.Equal(t, "screws", page.Token)

	page, err = s.Products.List(ctx(), ProductQuery{Category: "fittings"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Pipe Elbow", page.Products[0].Name)

	page, err = s.Products.List(ctx(), ProductQuery{Category: "no-such-node"})
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Nil(t, page.Resolution)

	page, err = s.Products.List(ctx(), ProductQuery{Search: "ELBOW"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Pipe Elbow", page.Products[0].Name)
}

func TestProductListPagination(t *testing.T) {
	s := newTestServices(t, nil, nil)

	for _, name := range []string{"Bolt A", "Bolt B", "Bolt C"} {
		req := hexBolt()
		req.Name = name
		_, err := s.Products.Create(ctx(), req)
		require.NoError(t, err)
	}

	page, err := s.Products.List(ctx(), ProductQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Products, 1)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 2, Total: 3, TotalPages: 2}, page.Pagination)
}

func TestProductDeleteRemovesVariants(t *testing.T) {
	s := newTestServices(t, nil, nil)

	p, err := s.Products.Create(ctx(), hexBolt())
	require.NoError(t, err)
	require.NoError(t, s.Products.Delete(ctx(), p.ID))

	var count int64
	require.NoError(t, s.Products.db.Model(&models.ProductVariant{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.ErrorIs(t, s.Products.Delete(ctx(), p.ID), ErrNotFound)
}

func TestProductDetailSelectsOptions(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Products.Create(ctx(), hexBolt())
	require.NoError(t, err)

	detail, err := s.Products.Detail(ctx(), "hex-head-bolt", catalog.Selection{Diameter: "M8"})
	require.NoError(t, err)
	assert.Equal(t, []string{"M6", "M8"}, detail.Options.Diameters)
	assert.Equal(t, "M8", detail.Options.Selected.Diameter)
	assert.Equal(t, []string{"25"}, detail.Options.Lengths)

	_, err = s.Products.Detail(ctx(), "missing", catalog.Selection{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductListCategoryNameFoldsUnicode(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Categories.CreateCategory(ctx(), "Écrous")
	require.NoError(t, err)

	nut := hexBolt()
	nut.Name = "Hex Nut"
	nut.Category = "écrous"
	_, err = s.Products.Create(ctx(), nut)
	require.NoError(t, err)

	other := hexBolt()
	other.Name = "Pipe Elbow"
	other.Category = "Fittings"
	_, err = s.Products.Create(ctx(), other)
	require.NoError(t, err)

	page, err := s.Products.List(ctx(), ProductQuery{Category: "ÉCROUS"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Hex Nut", page.Products[0].Name)
	assert.EqualValues(t, 1, page.Pagination.Total)
}

func TestProductListCategoryPagination(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Categories.CreateCategory(ctx(), "Fasteners")
	require.NoError(t, err)
	for _, name := range []string{"Bolt A", "Bolt B", "Bolt C"} {
		req := hexBolt()
		req.Name = name
		_, err := s.Products.Create(ctx(), req)
		require.NoError(t, err)
	}

	page, err := s.Products.List(ctx(), ProductQuery{Category: "fasteners", Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Products, 1)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 2, Total: 3, TotalPages: 2}, page.Pagination)

	page, err = s.Products.List(ctx(), ProductQuery{Category: "fasteners", Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Products)
}

func TestProductSearchTreatsWildcardsLiterally(t *testing.T) {
	s := newTestServices(t, nil, nil)

	for _, name := range []string{"Hex Head Bolt", "Flange Nut"} {
		req := hexBolt()
		req.Name = name
		_, err := s.Products.Create(ctx(), req)
		require.NoError(t, err)
	}
	tagged := hexBolt()
	tagged.Name = "Bolt 100% Steel"
	_, err := s.Products.Create(ctx(), tagged)
	require.NoError(t, err)

	for _, tc := range []struct {
		search string
		want   int
	}{
		{"%", 1},
		{"_", 0},
		{`\`, 0},
		{"100%", 1},
		{"bolt", 2},
	} {
		t.Run(tc.search, func(t *testing.T) {
			page, err := s.Products.List(ctx(), ProductQuery{Search: tc.search})
			require.NoError(t, err)
			assert.Len(t, page.Products, tc.want)
		})
	}
}

func TestProductUpdateRollsBackWhenVariantInsertFails(t *testing.T) {
	s := newTestServices(t, nil, nil)

	p, err := s.Products.Create(ctx(), hexBolt())
	require.NoError(t, err)

	insertFailed := errors.New("variant insert failed")
	require.NoError(t, s.Products.db.Callback().Create().Before("gorm:create").
		Register("test:fail_variant_insert", func(db *gorm.DB) {
			if db.Statement.Table == "product_variants" {
				_ = db.AddError(insertFailed)
			}
		}))

	req := hexBolt()
	req.Slug = "hex-head-bolt"
	req.Name = "Hex Head Bolt Mk2"
	req.Sizes = []catalog.SizeRow{{Diameter: "M10", Length: "40"}}
	_, err = s.Products.Update(ctx(), p.ID, req)
	require.ErrorIs(t, err, insertFailed)

	got, err := s.Products.GetByID(ctx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hex Head Bolt", got.Name)
	assert.ElementsMatch(t, p.CatalogVariants(), got.CatalogVariants())
}

func TestProductSlugClaimedConcurrently(t *testing.T) {
	s := newTestServices(t, nil, nil)

	claimed := false
	require.NoError(t, s.Products.db.Callback().Create().Before("gorm:create").
		Register("test:claim_slug", func(db *gorm.DB) {
			if db.Statement.Table != "products" || claimed {
				return
			}
			claimed = true
			now := time.Now()
			_ = db.AddError(db.Session(&gorm.Session{NewDB: true}).Exec(
				`INSERT INTO products (id, slug, name, images, specifications, dimensional_specifications, finish_images, created_at, updated_at)
				 VALUES (?, ?, ?, '[]', '[]', '[]', '{}', ?, ?)`,
				uuid.Must(uuid.NewV7()).String(), "hex-head-bolt", "Hex Head Bolt", now, now,
			).Error)
		}))

	_, err := s.Products.Create(ctx(), hexBolt())
	assert.ErrorIs(t, err, ErrSlugTaken)
}
