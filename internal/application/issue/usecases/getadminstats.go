package usecases

import (
	"context"

	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
	vo "campusmind/internal/domain/issue/valueobjects"
	"campusmind/internal/shared/logger"
)

type GetAdminStatsQuery struct{}

type DepartmentStats struct {
	DepartmentID   uint   `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Total          int64  `json:"total"`
	Active         int64  `json:"active"`
	Resolved       int64  `json:"resolved"`
}

type AdminStatsResult struct {
	TotalIssues    int64              `json:"total_issues"`
	ActiveIssues   int64              `json:"active_issues"`
	ResolvedIssues int64              `json:"resolved_issues"`
	ByStatus       map[string]int64   `json:"by_status"`
	ByPriority     map[string]int64   `json:"by_priority"`
	ByCategory     map[string]int64   `json:"by_category"`
	ByDepartment   []*DepartmentStats `json:"by_department"`
}

// GetAdminStatsUseCase aggregates issue counts for the admin dashboard.
type GetAdminStatsUseCase struct {
	issueRepo      issue.IssueRepository
	departmentRepo directory.DepartmentRepository
	logger         logger.Interface
}

func NewGetAdminStatsUseCase(
	issueRepo issue.IssueRepository,
	departmentRepo directory.DepartmentRepository,
	logger logger.Interface,
) *GetAdminStatsUseCase {
	return &GetAdminStatsUseCase{
		issueRepo:      issueRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

func (uc *GetAdminStatsUseCase) Execute(ctx context.Context, _ GetAdminStatsQuery) (*AdminStatsResult, error) {
	uc.logger.Infow("executing get admin stats use case")

	result := &AdminStatsResult{
		ByStatus:     make(map[string]int64),
		ByPriority:   make(map[string]int64),
		ByCategory:   make(map[string]int64),
		ByDepartment: []*DepartmentStats{},
	}

	filter := issue.IssueFilter{
		ShowResolved: true,
		Page:         1,
		PageSize:     10000,
	}

	issues, totalCount, err := uc.issueRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load issues for stats", "error", err)
		return nil, err
	}

	result.TotalIssues = totalCount

	perDepartment := make(map[uint]*DepartmentStats)

	for _, iss := range issues {
		status := iss.Status()
		result.ByStatus[status.String()]++
		result.ByPriority[iss.Priority().String()]++
		result.ByCategory[iss.Category().String()]++

		resolved := status == vo.StatusClosed
		if resolved {
			result.ResolvedIssues++
		} else {
			result.ActiveIssues++
		}

		if iss.DepartmentID() == nil {
			continue
		}
		deptID := *iss.DepartmentID()
		stats, ok := perDepartment[deptID]
		if !ok {
			stats = &DepartmentStats{DepartmentID: deptID}
			perDepartment[deptID] = stats
		}
		stats.Total++
		if resolved {
			stats.Resolved++
		} else {
			stats.Active++
		}
	}

	departments, err := uc.departmentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load departments for stats", "error", err)
		return nil, err
	}

	for _, dept := range departments {
		stats, ok := perDepartment[dept.ID()]
		if !ok {
			stats = &DepartmentStats{DepartmentID: dept.ID()}
		}
		stats.DepartmentName = dept.Name()
		result.ByDepartment = append(result.ByDepartment, stats)
	}

	return result, nil
}
