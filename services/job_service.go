package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/jobcodec"
	"github.com/durable-fastener/durable-cms-backend/models"
)

type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	return &job, nil
}

// EditorState recovers the structured editor fields from the stored
// description HTML.
func (s *JobService) EditorState(ctx context.Context, id uuid.UUID) (*models.JobEditorResponse, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.JobEditorResponse{Job: *job, Fields: jobcodec.Decompile(job.Description)}, nil
}

func jobFromRequest(req models.JobRequest) (models.Job, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Job{}, invalidf("title is required")
	}
	if req.SalaryMin != nil && req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
		return models.Job{}, invalidf("salary_min cannot exceed salary_max")
	}
	gender := strings.TrimSpace(req.Gender)
	if gender == "" {
		gender = "Any"
	}
	return models.Job{
		Title:       title,
		Department:  strings.TrimSpace(req.Department),
		Type:        strings.TrimSpace(req.Type),
		Gender:      gender,
		Location:    strings.TrimSpace(req.Location),
		Salary:      strings.TrimSpace(req.Salary),
		SalaryMin:   req.SalaryMin,
		SalaryMax:   req.SalaryMax,
		Experience:  strings.TrimSpace(req.Experience),
		Skills:      strings.TrimSpace(req.Skills),
		Description: jobcodec.Compile(req.Fields),
	}, nil
}

func (s *JobService) Create(ctx context.Context, req models.JobRequest) (*models.Job, error) {
	job, err := jobFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(&job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	config.Log.Info("[job.create] created", zap.String("id", job.ID.String()), zap.String("title", job.Title))
	return &job, nil
}

func (s *JobService) Update(ctx context.Context, id uuid.UUID, req models.JobRequest) (*models.Job, error) {
	job, err := jobFromRequest(req)
	if err != nil {
		return nil, err
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	job.ID = existing.ID
	job.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&job).Error; err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	config.Log.Info("[job.update] updated", zap.String("id", id.String()))
	return &job, nil
}

func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete job: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *JobService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&models.Job{}).Count(&n).Error
	return n, err
}
