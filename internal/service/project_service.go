package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agencyhub/internal/domain"
	"agencyhub/internal/port"
)

// CreateProjectInput is the DTO for project creation.
type CreateProjectInput struct {
	ClientID    uuid.UUID       `json:"client_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Budget      decimal.Decimal `json:"budget"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
}

// UpdateProjectInput is the DTO for project updates. Nil fields are left
// unchanged.
type UpdateProjectInput struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Status      *domain.ProjectStatus `json:"status"`
	Budget      *decimal.Decimal      `json:"budget"`
	Progress    *int                  `json:"progress"`
	StartDate   *time.Time            `json:"start_date"`
	EndDate     *time.Time            `json:"end_date"`
}

// ProjectService defines project management operations.
type ProjectService interface {
	Create(ctx context.Context, adminID uuid.UUID, input CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) (*domain.Project, error)
	List(ctx context.Context, userID uuid.UUID, role domain.UserRole, offset, limit int) ([]domain.Project, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	projectRepo port.ProjectRepository
	userRepo    port.UserRepository
}

// NewProjectService creates a new ProjectService implementation.
func NewProjectService(projectRepo port.ProjectRepository, userRepo port.UserRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

func (s *projectService) Create(ctx context.Context, adminID uuid.UUID, input CreateProjectInput) (*domain.Project, error) {
	client, err := s.userRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client.Role != domain.RoleClient {
		return nil, domain.ErrInvalidRole
	}

	now := time.Now()
	project := &domain.Project{
		ID:          uuid.New(),
		ClientID:    client.ID,
		Name:        input.Name,
		Description: input.Description,
		Status:      domain.ProjectStatusPlanning,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedBy:   adminID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id, userID uuid.UUID, role domain.UserRole) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && project.ClientID != userID {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, userID uuid.UUID, role domain.UserRole, offset, limit int) ([]domain.Project, int, error) {
	if role == domain.RoleAdmin {
		return s.projectRepo.List(ctx, offset, limit)
	}
	return s.projectRepo.ListByClient(ctx, userID, offset, limit)
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, input UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		if !domain.ValidProjectStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		project.Status = *input.Status
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	project.UpdatedAt = time.Now()

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.projectRepo.Delete(ctx, id)
}
