package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/models"
)

var attributeCategories = map[string]bool{
	models.AttributeDepartment: true,
	models.AttributeLocation:   true,
	models.AttributeType:       true,
}

// AttributeService manages the job dropdown vocabularies. Duplicate values
// within a category are accepted.
type AttributeService struct {
	db *gorm.DB
}

func NewAttributeService(db *gorm.DB) *AttributeService {
	return &AttributeService{db: db}
}

func (s *AttributeService) List(ctx context.Context, category string) ([]models.JobAttribute, error) {
	q := s.db.WithContext(ctx).Order("value")
	if category != "" {
		if !attributeCategories[category] {
			return nil, invalidf("unknown attribute category %q", category)
		}
		q = q.Where("category = ?", category)
	}
	attrs := make([]models.JobAttribute, 0)
	if err := q.Find(&attrs).Error; err != nil {
		return nil, fmt.Errorf("list job attributes: %w", err)
	}
	return attrs, nil
}

func (s *AttributeService) Create(ctx context.Context, req models.JobAttributeRequest) (*models.JobAttribute, error) {
	category := strings.TrimSpace(req.Category)
	if !attributeCategories[category] {
		return nil, invalidf("unknown attribute category %q", category)
	}
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return nil, invalidf("value is required")
	}
	attr := &models.JobAttribute{Category: category, Value: value}
	if err := s.db.WithContext(ctx).Create(attr).Error; err != nil {
		return nil, fmt.Errorf("create job attribute: %w", err)
	}
	return attr, nil
}

func (s *AttributeService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.JobAttribute{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete job attribute: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Groups returns the vocabularies the careers form needs, each ordered by value.
func (s *AttributeService) Groups(ctx context.Context) (models.JobAttributeGroups, error) {
	groups := models.JobAttributeGroups{
		Departments: []string{},
		Locations:   []string{},
		Types:       []string{},
	}
	attrs, err := s.List(ctx, "")
	if err != nil {
		return groups, err
	}
	for _, a := range attrs {
		switch a.Category {
		case models.AttributeDepartment:
			groups.Departments = append(groups.Departments, a.Value)
		case models.AttributeLocation:
			groups.Locations = append(groups.Locations, a.Value)
		case models.AttributeType:
			groups.Types = append(groups.Types, a.Value)
		}
	}
	return groups, nil
}
