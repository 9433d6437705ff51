package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

// FeedbackInput is the DTO for client-submitted feedback.
type FeedbackInput struct {
	ProjectID *uuid.UUID `json:"project_id"`
	Rating    int        `json:"rating" binding:"required,min=1,max=5"`
	Comment   string     `json:"comment" binding:"required"`
	IsPublic  bool       `json:"is_public"`
}

// ModerateFeedbackInput is the DTO for admin moderation. Nil fields are left
// unchanged.
type ModerateFeedbackInput struct {
	Status        *domain.FeedbackStatus `json:"status"`
	IsPublic      *bool                  `json:"is_public"`
	AdminResponse *string                `json:"admin_response"`
}

// FeedbackService defines feedback and testimonial operations.
type FeedbackService interface {
	Submit(ctx context.Context, clientID uuid.UUID, input FeedbackInput) (*domain.Feedback, error)
	List(ctx context.Context, status *domain.FeedbackStatus, offset, limit int) ([]domain.Feedback, int, error)
	Moderate(ctx context.Context, id uuid.UUID, input ModerateFeedbackInput) (*domain.Feedback, error)
	Testimonials(ctx context.Context, limit int) ([]domain.Feedback, error)
}

type feedbackService struct {
	feedbackRepo port.FeedbackRepository
	projectRepo  port.ProjectRepository
}

// NewFeedbackService creates a new FeedbackService implementation.
func NewFeedbackService(feedbackRepo port.FeedbackRepository, projectRepo port.ProjectRepository) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		projectRepo:  projectRepo,
	}
}

func (s *feedbackService) Submit(ctx context.Context, clientID uuid.UUID, input FeedbackInput) (*domain.Feedback, error) {
	if input.ProjectID != nil {
		project, err := s.projectRepo.GetByID(ctx, *input.ProjectID)
		if err != nil {
			return nil, err
		}
		if project.ClientID != clientID {
			return nil, domain.ErrForbidden
		}
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("feedback.Submit: rating %d out of range: %w", input.Rating, domain.ErrInvalidStatus)
	}

	now := time.Now()
	fb := &domain.Feedback{
		ID:        uuid.New(),
		ClientID:  clientID,
		ProjectID: input.ProjectID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Status:    domain.FeedbackStatusPending,
		IsPublic:  input.IsPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *feedbackService) List(ctx context.Context, status *domain.FeedbackStatus, offset, limit int) ([]domain.Feedback, int, error) {
	return s.feedbackRepo.List(ctx, status, offset, limit)
}

func (s *feedbackService) Moderate(ctx context.Context, id uuid.UUID, input ModerateFeedbackInput) (*domain.Feedback, error) {
	fb, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !domain.ValidFeedbackStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		fb.Status = *input.Status
	}
	if input.IsPublic != nil {
		fb.IsPublic = *input.IsPublic
	}
	if input.AdminResponse != nil {
		fb.AdminResponse = *input.AdminResponse
	}
	fb.UpdatedAt = time.Now()

	if err := s.feedbackRepo.Update(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// Testimonials returns approved, public feedback for the marketing site.
func (s *feedbackService) Testimonials(ctx context.Context, limit int) ([]domain.Feedback, error) {
	return s.feedbackRepo.ListTestimonials(ctx, limit)
}
