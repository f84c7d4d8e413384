package handler

import (
	"net/http"

	"github.com/sanjaiduresh/Niral-backend/internal/middleware"
	"github.com/sanjaiduresh/Niral-backend/internal/service"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterRequest carries the base fields plus every role-conditional
// field. Which of the optional ones are mandatory is decided by the
// registrar, per role.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`

	HospitalName     string `json:"hospital_name"`
	HospitalPassword string `json:"hospital_password"`

	Specialty    string   `json:"specialty"`
	WorkingDays  []string `json:"working_days"`
	DepartmentID uint     `json:"department_id"`
	Description  string   `json:"description"`

	Age       *int   `json:"age"`
	Contact   string `json:"contact"`
	BloodType string `json:"blood_type"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// Register handles public user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Register(&service.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Role:             req.Role,
		HospitalName:     req.HospitalName,
		HospitalPassword: req.HospitalPassword,
		Specialty:        req.Specialty,
		WorkingDays:      req.WorkingDays,
		DepartmentID:     req.DepartmentID,
		Description:      req.Description,
		Age:              req.Age,
		Contact:          req.Contact,
		BloodType:        req.BloodType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, response)
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, service.ErrMissingCredentials.Error())
		return
	}

	response, err := h.authService.Login(req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, response)
}

// Me returns the authenticated caller's full profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	profile, err := h.authService.Profile(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}
