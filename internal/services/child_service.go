package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/repositories"
	"github.com/SAP-F-2025/kumi-math-service/internal/validator"
)

const defaultGrade = "1st"

type childService struct {
	repo      repositories.Repository
	logger    *ServiceLogger
	validator *validator.Validator
}

func NewChildService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator) ChildService {
	return &childService{
		repo:      repo,
		logger:    NewServiceLogger(logger, LogConfig{Service: "kumi-math-service", Component: "child"}),
		validator: validator,
	}
}

func (s *childService) Create(ctx context.Context, req *CreateChildRequest) (child *models.Child, err error) {
	done := s.logger.StartOperation(ctx, "create_child", 0, "")
	defer func() { done(err) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	child = &models.Child{
		Name:      req.Name,
		Age:       req.Age,
		Grade:     req.Grade,
		AvatarURL: req.AvatarURL,
	}
	if child.Grade == "" {
		child.Grade = defaultGrade
	}

	if err = s.repo.Child().Create(ctx, nil, child); err != nil {
		return nil, fmt.Errorf("failed to create child: %w", err)
	}
	return child, nil
}

func (s *childService) GetByID(ctx context.Context, id uint) (*models.Child, error) {
	child, err := s.repo.Child().GetByID(ctx, nil, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrChildNotFound
		}
		return nil, fmt.Errorf("failed to get child: %w", err)
	}
	return child, nil
}

func (s *childService) List(ctx context.Context, req *ListChildrenRequest) (resp *ChildListResponse, err error) {
	done := s.logger.StartOperation(ctx, "list_children", 0, "")
	defer func() { done(err) }()

	if err = s.validator.Validate(req); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = 20
	}

	children, total, err := s.repo.Child().List(ctx, nil, repositories.ChildFilters{
		Grade:     req.Grade,
		Limit:     limit,
		Offset:    req.Offset,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}

	return &ChildListResponse{
		Children: children,
		Total:    total,
		Limit:    limit,
		Offset:   req.Offset,
	}, nil
}

// ensureChild maps a missing child to ErrChildNotFound.
func ensureChild(ctx context.Context, repo repositories.Repository, childID uint) error {
	exists, err := repo.Child().ExistsByID(ctx, nil, childID)
	if err != nil {
		return fmt.Errorf("failed to check child: %w", err)
	}
	if !exists {
		return ErrChildNotFound
	}
	return nil
}
