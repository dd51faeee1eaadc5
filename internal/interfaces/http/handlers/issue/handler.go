package issue

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusmind/internal/application/issue/usecases"
	"campusmind/internal/interfaces/http/middleware"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
	"campusmind/internal/shared/utils"
)

type IssueHandler struct {
	createIssueUC       usecases.CreateIssueExecutor
	getIssueUC          usecases.GetIssueExecutor
	listIssuesForUserUC usecases.ListIssuesForUserExecutor
	listIssuesUC        usecases.ListIssuesExecutor
	searchIssuesUC      usecases.SearchIssuesExecutor
	forwardIssueUC      usecases.ForwardIssueExecutor
	verifyIssueUC       usecases.VerifyIssueExecutor
	assignIssueUC       usecases.AssignIssueExecutor
	reclassifyIssueUC   usecases.ReclassifyIssueExecutor
	logger              logger.Interface
}

func NewIssueHandler(
	createIssueUC usecases.CreateIssueExecutor,
	getIssueUC usecases.GetIssueExecutor,
	listIssuesForUserUC usecases.ListIssuesForUserExecutor,
	listIssuesUC usecases.ListIssuesExecutor,
	searchIssuesUC usecases.SearchIssuesExecutor,
	forwardIssueUC usecases.ForwardIssueExecutor,
	verifyIssueUC usecases.VerifyIssueExecutor,
	assignIssueUC usecases.AssignIssueExecutor,
	reclassifyIssueUC usecases.ReclassifyIssueExecutor,
) *IssueHandler {
	return &IssueHandler{
		createIssueUC:       createIssueUC,
		getIssueUC:          getIssueUC,
		listIssuesForUserUC: listIssuesForUserUC,
		listIssuesUC:        listIssuesUC,
		searchIssuesUC:      searchIssuesUC,
		forwardIssueUC:      forwardIssueUC,
		verifyIssueUC:       verifyIssueUC,
		assignIssueUC:       assignIssueUC,
		reclassifyIssueUC:   reclassifyIssueUC,
		logger:              logger.NewLogger(),
	}
}

// CreateIssue handles POST /issues
// @Summary Report a new issue
// @Description Create an issue as the authenticated student; it is classified and routed to the student's proctor
// @Tags issues
// @Accept json
// @Produce json
// @Security Bearer
// @Param issue body CreateIssueRequest true "Issue data"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /issues [post]
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	cmd := req.ToCommand(userID)

	result, err := h.createIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Issue reported successfully")
}

// GetIssue handles GET /issues/:id
// @Summary Get issue by ID
// @Tags issues
// @Produce json
// @Security Bearer
// @Param id path int true "Issue ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /issues/{id} [get]
func (h *IssueHandler) GetIssue(c *gin.Context) {
	issueID, err := parseIssueID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), usecases.GetIssueQuery{IssueID: issueID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListIssuesForUser handles GET /issues/for-user/:id
// @Summary List issues visible to a user
// @Description Role-scoped listing: students see their own reports, proctors their section, heads their department, the VC and admins everything
// @Tags issues
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Param show_resolved query bool false "Include closed issues"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /issues/for-user/{id} [get]
func (h *IssueHandler) ListIssuesForUser(c *gin.Context) {
	targetID, err := parseUserID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Students may only list their own view.
	requesterID, _ := middleware.CurrentUserID(c)
	role, _ := middleware.CurrentUserRole(c)
	if role == "student" && requesterID != targetID {
		utils.ErrorResponse(c, http.StatusForbidden, "students may only list their own issues")
		return
	}

	page, pageSize := parsePagination(c)
	query := usecases.ListIssuesForUserQuery{
		UserID:       targetID,
		ShowResolved: c.Query("show_resolved") == "true",
		Page:         page,
		PageSize:     pageSize,
	}

	result, err := h.listIssuesForUserUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, result.Total, result.Page, result.PageSize)
}

// ListIssues handles GET /issues
// @Summary List issues with filters
// @Description Unscoped listing for staff, newest first
// @Tags issues
// @Produce json
// @Security Bearer
// @Param status query string false "Status filter"
// @Param department_id query int false "Department filter"
// @Param show_resolved query bool false "Include closed issues" default(true)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /issues [get]
func (h *IssueHandler) ListIssues(c *gin.Context) {
	page, pageSize := parsePagination(c)

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

// SearchIssues handles GET /issues/search
// @Summary Search issues
// @Description Filter by title substring and department
// @Tags issues
// @Produce json
// @Security Bearer
// @Param title query string false "Title substring"
// @Param department_id query int false "Department filter"
// @Param show_resolved query bool false "Include closed issues" default(true)
// @Success 200 {object} utils.APIResponse
// @Router /issues/search [get]
func (h *IssueHandler) SearchIssues(c *gin.Context) {
	req, err := parseSearchIssuesRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.searchIssuesUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Issues, result.Total, result.Page, result.PageSize)
}

// ForwardIssue handles POST /issues/:id/forward
// @Summary Forward an issue up the reporting chain
// @Tags issues
// @Produce json
// @Security Bearer
// @Param id path int true "Issue ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /issues/{id}/forward [post]
func (h *IssueHandler) ForwardIssue(c *gin.Context) {
	issueID, err := parseIssueID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	cmd := usecases.ForwardIssueCommand{
		IssueID:  issueID,
		ByUserID: userID,
	}

	result, err := h.forwardIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue forwarded successfully", result)
}

// VerifyIssue handles POST /issues/:id/verify
// @Summary Record a verification outcome
// @Description Close the issue when resolved; escalate or reopen otherwise
// @Tags issues
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Issue ID"
// @Param body body VerifyIssueRequest true "Verification outcome"
// @Success 200 {object} utils.APIResponse
// @Router /issues/{id}/verify [post]
func (h *IssueHandler) VerifyIssue(c *gin.Context) {
	issueID, err := parseIssueID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req VerifyIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	userID, _ := middleware.CurrentUserID(c)
	cmd := usecases.VerifyIssueCommand{
		IssueID:    issueID,
		VerifierID: userID,
		Resolved:   req.IsResolved(),
	}

	result, err := h.verifyIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue verified", result)
}

// ReclassifyIssue handles POST /issues/:id/classify
// @Summary Re-run classification on an issue
// @Tags issues
// @Produce json
// @Security Bearer
// @Param id path int true "Issue ID"
// @Success 200 {object} utils.APIResponse
// @Router /issues/{id}/classify [post]
func (h *IssueHandler) ReclassifyIssue(c *gin.Context) {
	issueID, err := parseIssueID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reclassifyIssueUC.Execute(c.Request.Context(), usecases.ReclassifyIssueCommand{IssueID: issueID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue reclassified", result)
}

// AssignIssue handles POST /users/:id/assign-issue/:issueID
// @Summary Manually assign an issue to a user
// @Description Places an issue on any user without consulting the reporting chain
// @Tags issues
// @Produce json
// @Security Bearer
// @Param id path int true "Target user ID"
// @Param issueID path int true "Issue ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id}/assign-issue/{issueID} [post]
func (h *IssueHandler) AssignIssue(c *gin.Context) {
	targetID, err := parseUserID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	issueID, err := parseIssueID(c, "issueID")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignerID, _ := middleware.CurrentUserID(c)
	cmd := usecases.AssignIssueCommand{
		IssueID:      issueID,
		TargetUserID: targetID,
		AssignerID:   &assignerID,
	}

	result, err := h.assignIssueUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Issue assigned successfully", result)
}

func parseUserID(c *gin.Context, param string) (uint, error) {
	idStr := c.Param(param)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("Invalid user ID")
	}
	return uint(id), nil
}
