package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusmind/internal/application/issue/usecases"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
	"campusmind/internal/shared/utils"
)

type AdminHandler struct {
	getStatsUC   usecases.GetAdminStatsExecutor
	listIssuesUC usecases.ListIssuesExecutor
	logger       logger.Interface
}

func NewAdminHandler(
	getStatsUC usecases.GetAdminStatsExecutor,
	listIssuesUC usecases.ListIssuesExecutor,
) *AdminHandler {
	return &AdminHandler{
		getStatsUC:   getStatsUC,
		listIssuesUC: listIssuesUC,
		logger:       logger.NewLogger(),
	}
}

// GetStats handles GET /admin/stats
// @Summary Aggregate issue statistics
// @Description Issue counts by status, priority, category and department
// @Tags admin
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context(), usecases.GetAdminStatsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListIssues handles GET /admin/issues
// @Summary List all issues without role scoping
// @Tags admin
// @Produce json
// @Security Bearer
// @Param status query string false "Status filter"
// @Param department_id query int false "Department filter"
// @Param show_resolved query bool false "Include closed issues" default(true)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /admin/issues [get]
func (h *AdminHandler) ListIssues(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListIssuesQuery{
		ShowResolved: c.DefaultQuery("show_resolved", "true") == "true",
		Status:       c.Query("status"),
		Page:         page,
		PageSize:     pageSize,
	}

	if deptStr := c.Query("department_id"); deptStr != "" {
		deptID, err := strconv.ParseUint(deptStr, 10, 32)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError("Invalid department_id"))
			return
		}
		id := uint(deptID)
		query.DepartmentID = &id
	}

	result, err := h.listIssuesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, result.Total, result.Page, result.PageSize)
}
