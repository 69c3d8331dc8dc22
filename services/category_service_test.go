package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durable-fastener/durable-cms-backend/models"
)

func TestCategoryTreeIsSortedAndCached(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Categories.CreateCategory(ctx(), "fittings")
	require.NoError(t, err)
	fasteners, err := s.Categories.CreateCategory(ctx(), "Fasteners")
	require.NoError(t, err)
	_, err = s.Categories.CreateSubCategory(ctx(), fasteners.ID, "Screws")
	require.NoError(t, err)
	_, err = s.Categories.CreateSubCategory(ctx(), fasteners.ID, "bolts")
	require.NoError(t, err)

	tree, err := s.Categories.Tree(ctx())
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "Fasteners", tree[0].Name)
	assert.Equal(t, "fittings", tree[1].Name)
	require.Len(t, tree[0].SubCategories, 2)
	assert.Equal(t, "bolts", tree[0].SubCategories[0].Name)

	// rows written behind the service are not seen until a refresh
	require.NoError(t, s.Categories.db.Create(&models.Category{Name: "Automotive"}).Error)
	tree, err = s.Categories.Tree(ctx())
	require.NoError(t, err)
	assert.Len(t, tree, 2)

	tree, err = s.Categories.Refresh(ctx())
	require.NoError(t, err)
	assert.Len(t, tree, 3)
}

func TestCreateSubCategoryRequiresParent(t *testing.T) {
	s := newTestServices(t, nil, nil)

	_, err := s.Categories.CreateSubCategory(ctx(), uuid.Must(uuid.NewV7()), "Screws")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Categories.CreateChildCategory(ctx(), uuid.Must(uuid.NewV7()), "Drywall")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Categories.CreateCategory(ctx(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteCategoryCascades(t *testing.T) {
	s := newTestServices(t, nil, nil)

	cat, err := s.Categories.CreateCategory(ctx(), "Fasteners")
	require.NoError(t, err)
	sub, err := s.Categories.CreateSubCategory(ctx(), cat.ID, "Screws")
	require.NoError(t, err)
	_, err = s.Categories.CreateChildCategory(ctx(), sub.ID, "Drywall")
	require.NoError(t, err)
	other, err := s.Categories.CreateCategory(ctx(), "Fittings")
	require.NoError(t, err)
	otherSub, err := s.Categories.CreateSubCategory(ctx(), other.ID, "Elbows")
	require.NoError(t, err)

	require.NoError(t, s.Categories.DeleteCategory(ctx(), cat.ID))

	stats, err := s.Categories.Stats(ctx())
	require.NoError(t, err)
	assert.Equal(t, models.CategoryStatsResponse{Categories: 1, SubCategories: 1, ChildCategories: 0}, stats)

	tree, err := s.Categories.Tree(ctx())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, otherSub.ID.String(), tree[0].SubCategories[0].ID)

	assert.ErrorIs(t, s.Categories.DeleteCategory(ctx(), cat.ID), ErrNotFound)
}

func TestDeleteSubCategoryCascades(t *testing.T) {
	s := newTestServices(t, nil, nil)

	cat, err := s.Categories.CreateCategory(ctx(), "Fasteners")
	require.NoError(t, err)
	sub, err := s.Categories.CreateSubCategory(ctx(), cat.ID, "Screws")
	require.NoError(t, err)
	child, err := s.Categories.CreateChildCategory(ctx(), sub.ID, "Drywall")
	require.NoError(t, err)

	require.NoError(t, s.Categories.DeleteSubCategory(ctx(), sub.ID))
	assert.ErrorIs(t, s.Categories.DeleteChildCategory(ctx(), child.ID), ErrNotFound)

	tree, err := s.Categories.Tree(ctx())
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Empty(t, tree[0].SubCategories)
}
