package branch

import (
	"context"
	"fmt"
	"time"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/branch"
)

type BranchServiceImpl struct {
	branch.BranchRepository
}

func NewBranchService(branchRepo branch.BranchRepository) branch.BranchService {
	return &BranchServiceImpl{BranchRepository: branchRepo}
}

// Create implements branch.BranchService.
func (s *BranchServiceImpl) Create(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	b, err := s.BranchRepository.Create(ctx, branch.Branch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return toBranchResponse(b), nil
}

// List implements branch.BranchService.
func (s *BranchServiceImpl) List(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := s.BranchRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, toBranchResponse(b))
	}

	return responses, nil
}

// GetByID implements branch.BranchService.
func (s *BranchServiceImpl) GetByID(ctx context.Context, id string) (branch.BranchResponse, error) {
	b, err := s.BranchRepository.GetByID(ctx, id)
	if err != nil {
		return branch.BranchResponse{}, err
	}
	return toBranchResponse(b), nil
}

func toBranchResponse(b branch.Branch) branch.BranchResponse {
	return branch.BranchResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
