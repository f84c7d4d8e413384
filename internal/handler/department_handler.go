package handler

import (
	"net/http"
	"strconv"

	"github.com/sanjaiduresh/Niral-backend/internal/middleware"
	"github.com/sanjaiduresh/Niral-backend/internal/service"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

type UpdateDepartmentRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// List retrieves departments, optionally filtered by ?hospital_id= (public)
func (h *DepartmentHandler) List(c *gin.Context) {
	var hospitalID *uint
	if raw := c.Query("hospital_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital_id filter")
			return
		}
		id := uint(parsed)
		hospitalID = &id
	}

	departments, err := h.departmentService.List(hospitalID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"departments": departments,
		"count":       len(departments),
	})
}

// Get retrieves a single department (public)
func (h *DepartmentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	department, err := h.departmentService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, department)
}

// Doctors retrieves all doctors in a department (public, redacted)
func (h *DepartmentHandler) Doctors(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	doctors, err := h.departmentService.Doctors(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// Create adds a department under the calling admin's hospital
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	department, err := h.departmentService.Create(userID.(uint), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, department)
}

// Update modifies a department (admin of its hospital only)
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid department ID")
		return
	}

	var req UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	department, err := h.departmentService.Update(id, userID.(uint), &service.UpdateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, department)
}
