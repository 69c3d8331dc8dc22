package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	category_cache "github.com/durable-fastener/durable-cms-backend/cache"
	"github.com/durable-fastener/durable-cms-backend/catalog"
	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/models"
)

// CategoryService owns the three category tables and the cached tree built
// from them.
type CategoryService struct {
	db    *gorm.DB
	store *category_cache.Store
}

func NewCategoryService(db *gorm.DB, store *category_cache.Store) *CategoryService {
	return &CategoryService{db: db, store: store}
}

func (s *CategoryService) load(ctx context.Context) (catalog.Tree, error) {
	var (
		cats     []models.Category
		subs     []models.SubCategory
		children []models.ChildCategory
	)
	db := s.db.WithContext(ctx)
	if err := db.Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	if err := db.Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("load sub categories: %w", err)
	}
	if err := db.Find(&children).Error; err != nil {
		return nil, fmt.Errorf("load child categories: %w", err)
	}

	flatCats := make([]catalog.Category, len(cats))
	for i, c := range cats {
		flatCats[i] = c.ToCatalog()
	}
	flatSubs := make([]catalog.SubCategory, len(subs))
	for i, sc := range subs {
		flatSubs[i] = sc.ToCatalog()
	}
	flatChildren := make([]catalog.ChildCategory, len(children))
	for i, cc := range children {
		flatChildren[i] = cc.ToCatalog()
	}
	return catalog.BuildTree(flatCats, flatSubs, flatChildren), nil
}

// Tree returns the category tree, served from the cache while it is fresh.
func (s *CategoryService) Tree(ctx context.Context) (catalog.Tree, error) {
	return s.store.Tree(ctx, s.load)
}

// Refresh rebuilds the cached tree from the database.
func (s *CategoryService) Refresh(ctx context.Context) (catalog.Tree, error) {
	return s.store.Refresh(ctx, s.load)
}

// SubCategoriesOf lists the sub-categories, with their children, under the
// category named exactly categoryName. Unknown names give an empty list.
func (s *CategoryService) SubCategoriesOf(ctx context.Context, categoryName string) ([]catalog.SubCategoryNode, error) {
	tree, err := s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	subs := tree.SubCategoriesOf(categoryName)
	if subs == nil {
		subs = []catalog.SubCategoryNode{}
	}
	return subs, nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalidf("name is required")
	}
	return name, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	cat := &models.Category{Name: name}
	if err := s.db.WithContext(ctx).Create(cat).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	s.store.Invalidate()
	config.Log.Info("[category.create] created", zap.String("id", cat.ID.String()), zap.String("name", name))
	return cat, nil
}

func (s *CategoryService) CreateSubCategory(ctx context.Context, categoryID uuid.UUID, name string) (*models.SubCategory, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if err := s.exists(ctx, &models.Category{}, categoryID); err != nil {
		return nil, err
	}
	sub := &models.SubCategory{CategoryID: categoryID, Name: name}
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return nil, fmt.Errorf("create sub category: %w", err)
	}
	s.store.Invalidate()
	config.Log.Info("[category.create] sub category created", zap.String("id", sub.ID.String()), zap.String("category_id", categoryID.String()))
	return sub, nil
}

func (s *CategoryService) CreateChildCategory(ctx context.Context, subCategoryID uuid.UUID, name string) (*models.ChildCategory, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	if err := s.exists(ctx, &models.SubCategory{}, subCategoryID); err != nil {
		return nil, err
	}
	child := &models.ChildCategory{SubCategoryID: subCategoryID, Name: name}
	if err := s.db.WithContext(ctx).Create(child).Error; err != nil {
		return nil, fmt.Errorf("create child category: %w", err)
	}
	s.store.Invalidate()
	config.Log.Info("[category.create] child category created", zap.String("id", child.ID.String()), zap.String("sub_category_id", subCategoryID.String()))
	return child, nil
}

// exists reports a missing parent as invalid input.
func (s *CategoryService) exists(ctx context.Context, model any, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Select("id").First(model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return invalidf("parent %s does not exist", id)
	}
	if err != nil {
		return fmt.Errorf("lookup parent: %w", err)
	}
	return nil
}

// DeleteCategory removes a category together with its sub categories and
// their child categories.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		var subIDs []uuid.UUID
		if err := tx.Model(&models.SubCategory{}).Where("category_id = ?", id).Pluck("id", &subIDs).Error; err != nil {
			return err
		}
		if len(subIDs) > 0 {
			if err := tx.Where("sub_category_id IN ?", subIDs).Delete(&models.ChildCategory{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("category_id = ?", id).Delete(&models.SubCategory{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete category: %w", err)
	}
	s.store.Invalidate()
	config.Log.Info("[category.delete] category and descendants deleted", zap.String("id", id.String()))
	return nil
}

// DeleteSubCategory removes a sub category and its child categories.
func (s *CategoryService) DeleteSubCategory(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.SubCategory{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("sub_category_id = ?", id).Delete(&models.ChildCategory{}).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete sub category: %w", err)
	}
	s.store.Invalidate()
	config.Log.Info("[category.delete] sub category deleted", zap.String("id", id.String()))
	return nil
}

func (s *CategoryService) DeleteChildCategory(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.ChildCategory{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete child category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.store.Invalidate()
	config.Log.Info("[category.delete] child category deleted", zap.String("id", id.String()))
	return nil
}

func (s *CategoryService) Stats(ctx context.Context) (models.CategoryStatsResponse, error) {
	tree, err := s.Tree(ctx)
	if err != nil {
		return models.CategoryStatsResponse{}, err
	}
	cats, subs, children := tree.Counts()
	return models.CategoryStatsResponse{Categories: cats, SubCategories: subs, ChildCategories: children}, nil
}
