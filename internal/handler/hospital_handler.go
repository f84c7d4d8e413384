package handler

import (
	"net/http"
	"strconv"

	"github.com/sanjaiduresh/Niral-backend/internal/middleware"
	"github.com/sanjaiduresh/Niral-backend/internal/service"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
}

func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

type CreateHospitalRequest struct {
	Name                 string    `json:"name" binding:"required,max=50"`
	AdminPassword        string    `json:"admin_password" binding:"required,min=6"`
	DoctorPassword       string    `json:"doctor_password" binding:"required,min=6"`
	ReceptionistPassword string    `json:"receptionist_password" binding:"required,min=6"`
	Coordinates          []float64 `json:"coordinates" binding:"required"`
	Services             []string  `json:"services" binding:"required"`
}

type UpdateHospitalRequest struct {
	Name                 *string   `json:"name" binding:"omitempty,max=50"`
	AdminPassword        *string   `json:"admin_password" binding:"omitempty,min=6"`
	DoctorPassword       *string   `json:"doctor_password" binding:"omitempty,min=6"`
	ReceptionistPassword *string   `json:"receptionist_password" binding:"omitempty,min=6"`
	Coordinates          []float64 `json:"coordinates"`
	Services             []string  `json:"services"`
}

// List retrieves all hospitals (public, redacted)
func (h *HospitalHandler) List(c *gin.Context) {
	hospitals, err := h.hospitalService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// Get retrieves a single hospital (public, redacted)
func (h *HospitalHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// Departments retrieves all departments of a hospital (public)
func (h *HospitalHandler) Departments(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	departments, err := h.hospitalService.Departments(id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"departments": departments,
		"count":       len(departments),
	})
}

// Create registers a new hospital (admin or bootstrap key)
func (h *HospitalHandler) Create(c *gin.Context) {
	var req CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Bootstrap callers carry no identity; the audit entry is anonymous then.
	var creatorID *uint
	if userID, exists := c.Get(middleware.ContextUserIDKey); exists {
		id := userID.(uint)
		creatorID = &id
	}

	hospital, err := h.hospitalService.Create(&service.CreateHospitalInput{
		Name:                 req.Name,
		AdminPassword:        req.AdminPassword,
		DoctorPassword:       req.DoctorPassword,
		ReceptionistPassword: req.ReceptionistPassword,
		Coordinates:          req.Coordinates,
		Services:             req.Services,
	}, creatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, hospital)
}

// Update modifies a hospital (admin of that hospital only)
func (h *HospitalHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var req UpdateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	hospital, err := h.hospitalService.Update(id, userID.(uint), &service.UpdateHospitalInput{
		Name:                 req.Name,
		AdminPassword:        req.AdminPassword,
		DoctorPassword:       req.DoctorPassword,
		ReceptionistPassword: req.ReceptionistPassword,
		Coordinates:          req.Coordinates,
		Services:             req.Services,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, hospital)
}

// parseIDParam parses the :id path parameter
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
