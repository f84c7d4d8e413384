package handler

import (
	"errors"
	"net/http"

	"github.com/sanjaiduresh/Niral-backend/internal/service"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Anything outside the
// known set becomes a generic 500, so storage and crypto details never
// reach the caller.
func respondError(c *gin.Context, err error) {
	var hospitalPassword *service.HospitalPasswordError

	switch {
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrMissingDoctorFields),
		errors.Is(err, service.ErrMissingPatientFields),
		errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrInvalidCoordinates),
		errors.Is(err, service.ErrMissingServices),
		errors.Is(err, service.ErrDescriptionTooLong),
		errors.Is(err, service.ErrInvalidHospitalName),
		errors.Is(err, service.ErrInvalidDepartmentName),
		errors.Is(err, service.ErrHospitalExists),
		errors.Is(err, service.ErrDepartmentExists):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrHospitalNotFound),
		errors.Is(err, service.ErrDepartmentNotFound),
		errors.Is(err, service.ErrDepartmentNotInHospital),
		errors.Is(err, service.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.As(err, &hospitalPassword):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrWrongHospital):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
