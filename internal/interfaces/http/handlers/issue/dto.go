package issue

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"campusmind/internal/application/issue/usecases"
	apperrors "campusmind/internal/shared/errors"
)

type CreateIssueRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
}

func (r *CreateIssueRequest) ToCommand(studentID uint) usecases.CreateIssueCommand {
	return usecases.CreateIssueCommand{
		Title:       r.Title,
		Description: r.Description,
		StudentID:   studentID,
	}
}

type VerifyIssueRequest struct {
	// Resolved defaults to true when omitted; clients opt in to escalation.
	Resolved *bool `json:"resolved"`
}

func (r *VerifyIssueRequest) IsResolved() bool {
	if r.Resolved == nil {
		return true
	}
	return *r.Resolved
}

type SearchIssuesRequest struct {
	Title        string
	DepartmentID *uint
	ShowResolved bool
	Page         int
	PageSize     int
}

func (r *SearchIssuesRequest) ToQuery() usecases.SearchIssuesQuery {
	return usecases.SearchIssuesQuery{
		TitleSubstring: r.Title,
		DepartmentID:   r.DepartmentID,
		ShowResolved:   r.ShowResolved,
		Page:           r.Page,
		PageSize:       r.PageSize,
	}
}

func parseSearchIssuesRequest(c *gin.Context) (*SearchIssuesRequest, error) {
	page, pageSize := parsePagination(c)

	// Search spans closed issues unless the caller filters them out.
	req := &SearchIssuesRequest{
		Title:        c.Query("title"),
		ShowResolved: c.DefaultQuery("show_resolved", "true") == "true",
		Page:         page,
		PageSize:     pageSize,
	}

	if deptStr := c.Query("department_id"); deptStr != "" {
		deptID, err := strconv.ParseUint(deptStr, 10, 32)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid department_id")
		}
		id := uint(deptID)
		req.DepartmentID = &id
	}

	return req, nil
}

func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return page, pageSize
}

func parseIssueID(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("Invalid issue ID")
	}
	return uint(id), nil
}
