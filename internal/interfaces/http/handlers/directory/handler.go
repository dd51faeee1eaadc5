package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campusmind/internal/application/directory/usecases"
	"campusmind/internal/shared/logger"
	"campusmind/internal/shared/utils"
)

type DirectoryHandler struct {
	getUserUC       usecases.GetUserExecutor
	listUsersUC     usecases.ListUsersExecutor
	getDepartmentUC usecases.GetDepartmentExecutor
	getSectionUC    usecases.GetSectionExecutor
	logger          logger.Interface
}

func NewDirectoryHandler(
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	getDepartmentUC usecases.GetDepartmentExecutor,
	getSectionUC usecases.GetSectionExecutor,
) *DirectoryHandler {
	return &DirectoryHandler{
		getUserUC:       getUserUC,
		listUsersUC:     listUsersUC,
		getDepartmentUC: getDepartmentUC,
		getSectionUC:    getSectionUC,
		logger:          logger.NewLogger(),
	}
}

// GetUser handles GET /users/:id
// @Summary Get user by ID
// @Tags directory
// @Produce json
// @Security Bearer
// @Param id path int true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /users/{id} [get]
func (h *DirectoryHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
// @Summary List users
// @Tags directory
// @Produce json
// @Security Bearer
// @Param role query string false "Role filter"
// @Success 200 {object} utils.APIResponse
// @Router /users [get]
func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	query := usecases.ListUsersQuery{
		Role: c.Query("role"),
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetDepartment handles GET /departments/:id
// @Summary Get department with its sections
// @Tags directory
// @Produce json
// @Security Bearer
// @Param id path int true "Department ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /departments/{id} [get]
func (h *DirectoryHandler) GetDepartment(c *gin.Context) {
	deptID, err := utils.ParseUintParam(c, "id", "department")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDepartmentUC.Execute(c.Request.Context(), usecases.GetDepartmentQuery{DepartmentID: deptID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetSection handles GET /sections/:id
// @Summary Get section by ID
// @Tags directory
// @Produce json
// @Security Bearer
// @Param id path int true "Section ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /sections/{id} [get]
func (h *DirectoryHandler) GetSection(c *gin.Context) {
	sectionID, err := utils.ParseUintParam(c, "id", "section")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSectionUC.Execute(c.Request.Context(), usecases.GetSectionQuery{SectionID: sectionID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
