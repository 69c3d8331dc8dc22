package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/catalog"
	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/metrics"
	"github.com/durable-fastener/durable-cms-backend/models"
)

const (
	ProductsPerPage = 9
	maxPageSize     = 100
)

type ProductService struct {
	db         *gorm.DB
	categories *CategoryService
}

func NewProductService(db *gorm.DB, categories *CategoryService) *ProductService {
	return &ProductService{db: db, categories: categories}
}

// ProductQuery is the listing filter. Category is a URL token: a node name
// at any level or a node id.
type ProductQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type ProductPage struct {
	Products   []models.Product
	Resolution *catalog.Resolution
	Token      string
	Pagination models.Pagination
}

// likeEscaper protects LIKE wildcards in user input; queries pair it with
// ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}

// List resolves the category token against the tree, filters by membership
// and name, and returns one page. A token that matches nothing lists
// everything. Membership is decided by catalog.Tree.Matches on the product's
// classification columns.
func (s *ProductService) List(ctx context.Context, pq ProductQuery) (*ProductPage, error) {
	if pq.Page < 1 {
		pq.Page = 1
	}
	if pq.Limit < 1 {
		pq.Limit = ProductsPerPage
	}
	if pq.Limit > maxPageSize {
		pq.Limit = maxPageSize
	}

	page := &ProductPage{}
	q := s.db.WithContext(ctx).Model(&models.Product{})
	if search := strings.TrimSpace(pq.Search); search != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(strings.ToLower(search)))
	}

	var (
		tree   catalog.Tree
		nodeID string
	)
	if token := strings.TrimSpace(pq.Category); token != "" && !strings.EqualFold(token, "all") {
		var err error
		if tree, err = s.categories.Tree(ctx); err != nil {
			return nil, err
		}
		if res, ok := tree.Resolve(token); ok {
			page.Resolution = &res
			page.Token = tree.URLToken(res.NodeID)
			nodeID = res.NodeID
		} else {
			config.Log.Debug("[product.list] category token did not resolve", zap.String("token", token))
		}
	}

	offset := (pq.Page - 1) * pq.Limit
	var (
		total    int64
		products []models.Product
	)
	if nodeID == "" {
		if err := q.Count(&total).Error; err != nil {
			return nil, fmt.Errorf("count products: %w", err)
		}
		if err := q.Order("created_at DESC").Offset(offset).Limit(pq.Limit).Find(&products).Error; err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
	} else {
		var refs []models.Product
		if err := q.Select("id", "category", "sub_category", "child_category").
			Order("created_at DESC").
			Find(&refs).Error; err != nil {
			return nil, fmt.Errorf("scan product categories: %w", err)
		}
		ids := make([]uuid.UUID, 0, len(refs))
		for i := range refs {
			if tree.Matches(nodeID, refs[i].Ref()) {
				ids = append(ids, refs[i].ID)
			}
		}
		total = int64(len(ids))
		from, to := min(offset, len(ids)), min(offset+pq.Limit, len(ids))
		if from < to {
			if err := s.db.WithContext(ctx).
				Where("id IN ?", ids[from:to]).
				Order("created_at DESC").
				Find(&products).Error; err != nil {
				return nil, fmt.Errorf("list products: %w", err)
			}
		}
	}

	page.Products = products
	page.Pagination = models.NewPagination(pq.Page, pq.Limit, total)
	return page, nil
}

func (s *ProductService) first(ctx context.Context, query string, arg any) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("diameter, length, finish") }).
		Where(query, arg).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	return &p, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	return s.first(ctx, "slug = ?", slug)
}

// EditorState decodes a stored product back into the rows the admin form edits.
func (s *ProductService) EditorState(ctx context.Context, id uuid.UUID) (*models.ProductEditorResponse, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sizes, finishes := catalog.AxesFromVariants(p.CatalogVariants(), p.FinishImages)
	return &models.ProductEditorResponse{
		Product:      *p,
		Materials:    catalog.DecodeMaterials(p.Material),
		Applications: catalog.NormalizeApplications(p.Applications),
		Sizes:        sizes,
		Finishes:     finishes,
	}, nil
}

// Detail is the storefront product page with the dependent selectors
// resolved for sel.
func (s *ProductService) Detail(ctx context.Context, slug string, sel catalog.Selection) (*models.ProductDetailResponse, error) {
	p, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &models.ProductDetailResponse{
		Product:      *p,
		Applications: catalog.NormalizeApplications(p.Applications),
		Options:      catalog.SelectOptions(p.CatalogVariants(), p.Images, p.FinishImages, sel),
	}, nil
}

func (s *ProductService) Options(ctx context.Context, slug string, sel catalog.Selection) (catalog.Options, error) {
	p, err := s.GetBySlug(ctx, slug)
	if err != nil {
		return catalog.Options{}, err
	}
	return catalog.SelectOptions(p.CatalogVariants(), p.Images, p.FinishImages, sel), nil
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// fromRequest flattens the editor state into the stored product columns.
func fromRequest(req models.ProductRequest) (models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Product{}, invalidf("name is required")
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return models.Product{}, invalidf("category is required")
	}
	slug := catalog.ProductSlug(req.Slug, name)
	if slug == "" {
		return models.Product{}, invalidf("slug cannot be derived from %q", name)
	}

	apps, err := json.Marshal(catalog.CleanApplications(req.Applications))
	if err != nil {
		return models.Product{}, fmt.Errorf("encode applications: %w", err)
	}

	var drawing *string
	if req.TechnicalDrawing != nil && strings.TrimSpace(*req.TechnicalDrawing) != "" {
		d := strings.TrimSpace(*req.TechnicalDrawing)
		drawing = &d
	}

	return models.Product{
		Slug:                      slug,
		Name:                      name,
		Category:                  category,
		SubCategory:               strings.TrimSpace(req.SubCategory),
		ChildCategory:             strings.TrimSpace(req.ChildCategory),
		Material:                  catalog.EncodeMaterials(req.Materials),
		HeadType:                  strings.TrimSpace(req.HeadType),
		DriveType:                 strings.TrimSpace(req.DriveType),
		ThreadType:                strings.TrimSpace(req.ThreadType),
		ShortDescription:          strings.TrimSpace(req.ShortDescription),
		LongDescription:           strings.TrimSpace(req.LongDescription),
		Images:                    nonBlank(req.Images),
		TechnicalDrawing:          drawing,
		Specifications:            catalog.CleanSpecifications(req.Specifications),
		DimensionalSpecifications: catalog.CleanDimensions(req.DimensionalSpecifications),
		Applications:              apps,
		FinishImages:              catalog.FinishImageMap(req.Finishes),
	}, nil
}

// Create stores a new product and its variant matrix.
func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	return s.save(ctx, uuid.Nil, req)
}

// Update replaces every column of the product and its whole variant set.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req models.ProductRequest) (*models.Product, error) {
	return s.save(ctx, id, req)
}

func (s *ProductService) save(ctx context.Context, id uuid.UUID, req models.ProductRequest) (*models.Product, error) {
	product, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	variants := catalog.Reconcile(req.Sizes, req.Finishes)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Product{}).
			Where("slug = ? AND id <> ?", product.Slug, id).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrSlugTaken
		}

		if id == uuid.Nil {
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
		} else {
			var existing models.Product
			if err := tx.Select("id", "created_at").First(&existing, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			product.ID = existing.ID
			product.CreatedAt = existing.CreatedAt
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}

		return s.ReplaceVariants(tx, product.ID, variants)
	})
	if err != nil {
		if errors.Is(err, ErrSlugTaken) || errors.Is(err, ErrNotFound) {
			return nil, err
		}
		// A concurrent save can claim the slug after the count above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("save product: %w", err)
	}

	metrics.VariantsReconciled.Add(float64(len(variants)))
	config.Log.Info("[product.save] saved",
		zap.String("id", product.ID.String()),
		zap.String("slug", product.Slug),
		zap.Int("variants", len(variants)),
	)
	return s.GetByID(ctx, product.ID)
}

// ReplaceVariants deletes every variant row of the product and inserts the
// given set. Callers pass the transaction the product write runs in.
func (s *ProductService) ReplaceVariants(tx *gorm.DB, productID uuid.UUID, variants []catalog.Variant) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductVariant{}).Error; err != nil {
		return fmt.Errorf("delete variants: %w", err)
	}
	if len(variants) == 0 {
		return nil
	}
	rows := make([]models.ProductVariant, len(variants))
	for i, v := range variants {
		rows[i] = models.ProductVariant{
			ProductID: productID,
			Diameter:  v.Diameter,
			Length:    v.Length,
			Finish:    v.Finish,
		}
	}
	if err := tx.CreateInBatches(rows, 100).Error; err != nil {
		return fmt.Errorf("insert variants: %w", err)
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariant{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete product: %w", err)
	}
	config.Log.Info("[product.delete] deleted", zap.String("id", id.String()))
	return nil
}

// Catalogue returns every product for the finder and datasheet index.
func (s *ProductService) Catalogue(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}
	return products, nil
}

func (s *ProductService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error
	return n, err
}
