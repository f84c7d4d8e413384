package service

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors returned by the services. Handlers map them onto HTTP
// statuses; anything outside this set is treated as an internal failure and
// never shown to the caller.
var (
	// Validation failures (400)
	ErrInvalidRole           = errors.New("role must be one of Admin, Patient, Doctor, Receptionist or Inventoryman")
	ErrMissingDoctorFields   = errors.New("specialty, working days and department are required for doctor registration")
	ErrMissingPatientFields  = errors.New("age and contact are required for patient registration")
	ErrMissingCredentials    = errors.New("please provide email, password and role")
	ErrInvalidCoordinates    = errors.New("coordinates must contain latitude and longitude values")
	ErrMissingServices       = errors.New("please add services offered")
	ErrDescriptionTooLong    = errors.New("description cannot be more than 500 characters")
	ErrInvalidHospitalName   = errors.New("hospital name must be between 1 and 50 characters")
	ErrInvalidDepartmentName = errors.New("department name must be between 1 and 50 characters")

	// Uniqueness conflicts (400)
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrHospitalExists   = errors.New("hospital with this name already exists")
	ErrDepartmentExists = errors.New("department with this name already exists in this hospital")

	// Missing references (404)
	ErrHospitalNotFound        = errors.New("hospital not found")
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentNotInHospital = errors.New("department not found in this hospital")
	ErrUserNotFound            = errors.New("user not found")

	// Credential failures (401). The wording stays generic: it never
	// reveals whether the account exists or which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization failures (403)
	ErrWrongHospital = errors.New("not authorized to modify this hospital's data")
)

// HospitalPasswordError reports a wrong hospital role password. The message
// names the role being registered, nothing else.
type HospitalPasswordError struct {
	Role string
}

func (e *HospitalPasswordError) Error() string {
	return fmt.Sprintf("invalid %s password for this hospital", strings.ToLower(e.Role))
}
