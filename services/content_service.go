package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/durable-fastener/durable-cms-backend/models"
)

// ContentService covers the marketing-site tables: blogs, enquiries, the
// gallery, the site content singleton, menu items and site links.
type ContentService struct {
	db     *gorm.DB
	policy *bluemonday.Policy
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db, policy: bluemonday.UGCPolicy()}
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", what, err)
}

func deleteByID(ctx context.Context, db *gorm.DB, model any, id any, what string) error {
	res := db.WithContext(ctx).Delete(model, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", what, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Blogs
// ════════════════════════════════════════════════════════════

// SanitizeHTML strips scripts, handlers and unknown markup from rich text.
func (s *ContentService) SanitizeHTML(html string) string {
	return s.policy.Sanitize(html)
}

func (s *ContentService) blogFromRequest(req models.BlogRequest) (models.Blog, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Blog{}, invalidf("title is required")
	}
	return models.Blog{
		Title:    title,
		Category: strings.TrimSpace(req.Category),
		Excerpt:  strings.TrimSpace(req.Excerpt),
		Content:  s.SanitizeHTML(req.Content),
		Author:   strings.TrimSpace(req.Author),
		ImageURL: strings.TrimSpace(req.ImageURL),
	}, nil
}

func (s *ContentService) ListBlogs(ctx context.Context, category string) ([]models.Blog, error) {
	blogs := make([]models.Blog, 0)
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if category = strings.TrimSpace(category); category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", category)
	}
	if err := q.Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

func (s *ContentService) GetBlog(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.WithContext(ctx).First(&blog, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "load blog")
	}
	return &blog, nil
}

func (s *ContentService) CreateBlog(ctx context.Context, req models.BlogRequest) (*models.Blog, error) {
	blog, err := s.blogFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&blog).Error; err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}
	return &blog, nil
}

func (s *ContentService) UpdateBlog(ctx context.Context, id uuid.UUID, req models.BlogRequest) (*models.Blog, error) {
	blog, err := s.blogFromRequest(req)
	if err != nil {
		return nil, err
	}
	existing, err := s.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	blog.ID, blog.CreatedAt = existing.ID, existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&blog).Error; err != nil {
		return nil, fmt.Errorf("update blog: %w", err)
	}
	return &blog, nil
}

func (s *ContentService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, &models.Blog{}, id, "blog")
}

// ════════════════════════════════════════════════════════════
// Enquiries
// ════════════════════════════════════════════════════════════

func (s *ContentService) CreateEnquiry(ctx context.Context, req models.EnquiryRequest) (*models.Enquiry, error) {
	e := &models.Enquiry{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		Status:    models.EnquiryStatusNew,
	}
	if e.FirstName == "" || e.Email == "" || e.Message == "" {
		return nil, invalidf("first_name, email and message are required")
	}
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, fmt.Errorf("create enquiry: %w", err)
	}
	return e, nil
}

func (s *ContentService) ListEnquiries(ctx context.Context, status string, page, limit int) ([]models.Enquiry, models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = 20
	}
	q := s.db.WithContext(ctx).Model(&models.Enquiry{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, models.Pagination{}, fmt.Errorf("count enquiries: %w", err)
	}
	enquiries := make([]models.Enquiry, 0)
	if err := q.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&enquiries).Error; err != nil {
		return nil, models.Pagination{}, fmt.Errorf("list enquiries: %w", err)
	}
	return enquiries, models.NewPagination(page, limit, total), nil
}

func (s *ContentService) UpdateEnquiryStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := s.db.WithContext(ctx).Model(&models.Enquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update enquiry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ContentService) DeleteEnquiry(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, &models.Enquiry{}, id, "enquiry")
}

// ════════════════════════════════════════════════════════════
// Gallery
// ════════════════════════════════════════════════════════════

func (s *ContentService) ListGallery(ctx context.Context, tag string) ([]models.GalleryItem, error) {
	items := make([]models.GalleryItem, 0)
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if tag != "" {
		q = q.Where("tag = ?", tag)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return items, nil
}

func (s *ContentService) CreateGalleryItem(ctx context.Context, req models.GalleryItemRequest) (*models.GalleryItem, error) {
	item := &models.GalleryItem{
		Title:    strings.TrimSpace(req.Title),
		Tag:      strings.TrimSpace(req.Tag),
		ImageURL: strings.TrimSpace(req.ImageURL),
	}
	if item.ImageURL == "" {
		return nil, invalidf("image_url is required")
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("create gallery item: %w", err)
	}
	return item, nil
}

func (s *ContentService) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, &models.GalleryItem{}, id, "gallery item")
}

// ════════════════════════════════════════════════════════════
// Site content singleton
// ════════════════════════════════════════════════════════════

// SiteContent returns the single site_content row, creating it empty on
// first read.
func (s *ContentService) SiteContent(ctx context.Context) (*models.SiteContent, error) {
	content := models.SiteContent{ID: models.SiteContentID}
	if err := s.db.WithContext(ctx).FirstOrCreate(&content, models.SiteContent{ID: models.SiteContentID}).Error; err != nil {
		return nil, fmt.Errorf("load site content: %w", err)
	}
	return &content, nil
}

func (s *ContentService) UpdateSiteContent(ctx context.Context, req models.UpdateSiteContentRequest) (*models.SiteContent, error) {
	content, err := s.SiteContent(ctx)
	if err != nil {
		return nil, err
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&content.HeroBg, req.HeroBg)
	set(&content.CatFasteners, req.CatFasteners)
	set(&content.CatFittings, req.CatFittings)
	set(&content.CatAutomotive, req.CatAutomotive)
	set(&content.AboutImg, req.AboutImg)

	if err := s.db.WithContext(ctx).Save(content).Error; err != nil {
		return nil, fmt.Errorf("update site content: %w", err)
	}
	return content, nil
}

// ════════════════════════════════════════════════════════════
// Menu items and site links
// ════════════════════════════════════════════════════════════

func (s *ContentService) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items := make([]models.MenuItem, 0)
	if err := s.db.WithContext(ctx).Order("label").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

func (s *ContentService) CreateMenuItem(ctx context.Context, req models.MenuItemRequest) (*models.MenuItem, error) {
	item := &models.MenuItem{
		Label:   strings.TrimSpace(req.Label),
		Path:    strings.TrimSpace(req.Path),
		IconKey: strings.TrimSpace(req.IconKey),
	}
	if item.Label == "" || item.Path == "" {
		return nil, invalidf("label and path are required")
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return item, nil
}

func (s *ContentService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, &models.MenuItem{}, id, "menu item")
}

func (s *ContentService) ListSiteLinks(ctx context.Context) ([]models.SiteLink, error) {
	links := make([]models.SiteLink, 0)
	if err := s.db.WithContext(ctx).Order("key_name").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("list site links: %w", err)
	}
	return links, nil
}

// UpsertSiteLink sets the URL for a key, inserting the key when new.
func (s *ContentService) UpsertSiteLink(ctx context.Context, req models.SiteLinkRequest) (*models.SiteLink, error) {
	link := &models.SiteLink{KeyName: strings.TrimSpace(req.KeyName), URL: strings.TrimSpace(req.URL)}
	if link.KeyName == "" || link.URL == "" {
		return nil, invalidf("key_name and url are required")
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"url"}),
	}).Create(link).Error
	if err != nil {
		return nil, fmt.Errorf("upsert site link: %w", err)
	}
	return link, nil
}

func (s *ContentService) DeleteSiteLink(ctx context.Context, key string) error {
	res := s.db.WithContext(ctx).Delete(&models.SiteLink{}, "key_name = ?", key)
	if res.Error != nil {
		return fmt.Errorf("delete site link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DashboardStats counts the headline records for the admin dashboard.
func (s *ContentService) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	db := s.db.WithContext(ctx)
	counts := []struct {
		model any
		where string
		dst   *int64
	}{
		{&models.Product{}, "", &stats.Products},
		{&models.Enquiry{}, "", &stats.Enquiries},
		{&models.Enquiry{}, "status = 'new'", &stats.NewEnquiries},
		{&models.Blog{}, "", &stats.Blogs},
		{&models.Job{}, "", &stats.Jobs},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != "" {
			q = q.Where(c.where)
		}
		if err := q.Count(c.dst).Error; err != nil {
			return stats, fmt.Errorf("dashboard stats: %w", err)
		}
	}
	return stats, nil
}
