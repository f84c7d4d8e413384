package service

import (
	"errors"
	"fmt"

	"github.com/sanjaiduresh/Niral-backend/internal/models"
	"github.com/sanjaiduresh/Niral-backend/internal/repository"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"
)

type HospitalService struct {
	hospitals   HospitalStore
	departments DepartmentStore
	users       UserStore
	auditRepo   AuditStore
}

func NewHospitalService(
	hospitals HospitalStore,
	departments DepartmentStore,
	users UserStore,
	auditRepo AuditStore,
) *HospitalService {
	return &HospitalService{
		hospitals:   hospitals,
		departments: departments,
		users:       users,
		auditRepo:   auditRepo,
	}
}

// CreateHospitalInput carries the fields for hospital registration. All
// three role passwords are mandatory.
type CreateHospitalInput struct {
	Name                 string
	AdminPassword        string
	DoctorPassword       string
	ReceptionistPassword string
	Coordinates          []float64
	Services             []string
}

// UpdateHospitalInput is a partial patch. Nil fields are left untouched;
// supplied role passwords are re-hashed before persisting.
type UpdateHospitalInput struct {
	Name                 *string
	AdminPassword        *string
	DoctorPassword       *string
	ReceptionistPassword *string
	Coordinates          []float64
	Services             []string
}

// maxHospitalNameLen matches the column size of hospitals.name.
const maxHospitalNameLen = 50

// validHospitalName re-checks the name constraint wherever a name is
// written, so updates cannot blank a field that was mandatory at creation.
func validHospitalName(name string) bool {
	return name != "" && len(name) <= maxHospitalNameLen
}

// Create registers a new hospital, hashing its three role passwords. The
// plaintext secrets are never stored.
func (s *HospitalService) Create(input *CreateHospitalInput, creatorID *uint) (*models.HospitalResponse, error) {
	if !validHospitalName(input.Name) {
		return nil, ErrInvalidHospitalName
	}
	if len(input.Coordinates) != 2 {
		return nil, ErrInvalidCoordinates
	}
	if len(input.Services) == 0 {
		return nil, ErrMissingServices
	}

	// Friendly duplicate check; the name uniqueIndex is authoritative.
	if _, err := s.hospitals.FindByName(input.Name); err == nil {
		return nil, ErrHospitalExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing hospital: %w", err)
	}

	adminHash, err := utils.HashPassword(input.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	doctorHash, err := utils.HashPassword(input.DoctorPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash doctor password: %w", err)
	}
	receptionistHash, err := utils.HashPassword(input.ReceptionistPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash receptionist password: %w", err)
	}

	hospital := &models.Hospital{
		Name:                     input.Name,
		AdminPasswordHash:        adminHash,
		DoctorPasswordHash:       doctorHash,
		ReceptionistPasswordHash: receptionistHash,
		Coordinates:              input.Coordinates,
		Services:                 input.Services,
	}

	if err := s.hospitals.Create(hospital); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrHospitalExists
		}
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(creatorID, "hospital_create",
		fmt.Sprintf("Created hospital: %s", hospital.Name))

	view := hospital.PublicView()
	return &view, nil
}

// Update applies a partial update to a hospital. Only an admin of that
// hospital may call it; field constraints are re-checked on update.
func (s *HospitalService) Update(id uint, adminID uint, input *UpdateHospitalInput) (*models.HospitalResponse, error) {
	hospital, err := s.hospitals.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, fmt.Errorf("failed to fetch hospital: %w", err)
	}

	if err := s.requireHospitalAdmin(adminID, hospital.ID); err != nil {
		return nil, err
	}

	if input.Name != nil {
		if !validHospitalName(*input.Name) {
			return nil, ErrInvalidHospitalName
		}
		hospital.Name = *input.Name
	}
	if input.Coordinates != nil {
		if len(input.Coordinates) != 2 {
			return nil, ErrInvalidCoordinates
		}
		hospital.Coordinates = input.Coordinates
	}
	if input.Services != nil {
		if len(input.Services) == 0 {
			return nil, ErrMissingServices
		}
		hospital.Services = input.Services
	}

	if input.AdminPassword != nil {
		hash, err := utils.HashPassword(*input.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", err)
		}
		hospital.AdminPasswordHash = hash
	}
	if input.DoctorPassword != nil {
		hash, err := utils.HashPassword(*input.DoctorPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash doctor password: %w", err)
		}
		hospital.DoctorPasswordHash = hash
	}
	if input.ReceptionistPassword != nil {
		hash, err := utils.HashPassword(*input.ReceptionistPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash receptionist password: %w", err)
		}
		hospital.ReceptionistPasswordHash = hash
	}

	if err := s.hospitals.Update(hospital); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrHospitalExists
		}
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&adminID, "hospital_update",
		fmt.Sprintf("Updated hospital: %s (ID: %d)", hospital.Name, hospital.ID))

	view := hospital.PublicView()
	return &view, nil
}

// List retrieves all hospitals as public projections
func (s *HospitalService) List() ([]models.HospitalResponse, error) {
	hospitals, err := s.hospitals.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hospitals: %w", err)
	}
	views := make([]models.HospitalResponse, 0, len(hospitals))
	for i := range hospitals {
		views = append(views, hospitals[i].PublicView())
	}
	return views, nil
}

// Get retrieves a single hospital as its public projection
func (s *HospitalService) Get(id uint) (*models.HospitalResponse, error) {
	hospital, err := s.hospitals.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, fmt.Errorf("failed to fetch hospital: %w", err)
	}
	view := hospital.PublicView()
	return &view, nil
}

// Departments retrieves all departments of a hospital
func (s *HospitalService) Departments(hospitalID uint) ([]models.Department, error) {
	departments, err := s.departments.FindByHospital(hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departments: %w", err)
	}
	return departments, nil
}

// requireHospitalAdmin verifies that the caller's stored record places them
// at the given hospital. The hospital reference is fetched fresh from the
// store, not taken from the token.
func (s *HospitalService) requireHospitalAdmin(adminID, hospitalID uint) error {
	admin, err := s.users.FindByID(adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to fetch admin user: %w", err)
	}
	if admin.HospitalID == nil || *admin.HospitalID != hospitalID {
		return ErrWrongHospital
	}
	return nil
}
