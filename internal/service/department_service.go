package service

import (
	"errors"
	"fmt"

	"github.com/sanjaiduresh/Niral-backend/internal/models"
	"github.com/sanjaiduresh/Niral-backend/internal/repository"
)

type DepartmentService struct {
	departments DepartmentStore
	users       UserStore
	auditRepo   AuditStore
}

func NewDepartmentService(departments DepartmentStore, users UserStore, auditRepo AuditStore) *DepartmentService {
	return &DepartmentService{
		departments: departments,
		users:       users,
		auditRepo:   auditRepo,
	}
}

// Column sizes of departments.name and departments.description.
const (
	maxDepartmentNameLen = 50
	maxDescriptionLen    = 500
)

// validDepartmentName re-checks the name constraint wherever a name is
// written, so updates cannot blank a field that was mandatory at creation.
func validDepartmentName(name string) bool {
	return name != "" && len(name) <= maxDepartmentNameLen
}

// UpdateDepartmentInput is a partial patch; nil fields are left untouched.
type UpdateDepartmentInput struct {
	Name        *string
	Description *string
}

// Create adds a department under the calling admin's own hospital. The
// hospital scope comes from the admin's stored record, never the request.
func (s *DepartmentService) Create(adminID uint, name, description string) (*models.Department, error) {
	admin, err := s.users.FindByID(adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin user: %w", err)
	}
	if admin.HospitalID == nil {
		return nil, ErrWrongHospital
	}
	hospitalID := *admin.HospitalID

	if !validDepartmentName(name) {
		return nil, ErrInvalidDepartmentName
	}
	if len(description) > maxDescriptionLen {
		return nil, ErrDescriptionTooLong
	}

	// Friendly duplicate check; the compound (name, hospital_id)
	// uniqueIndex is authoritative.
	if _, err := s.departments.FindByNameAndHospital(name, hospitalID); err == nil {
		return nil, ErrDepartmentExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing department: %w", err)
	}

	department := &models.Department{
		Name:        name,
		HospitalID:  hospitalID,
		Description: description,
	}

	if err := s.departments.Create(department); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&adminID, "department_create",
		fmt.Sprintf("Created department %s in hospital %d", department.Name, hospitalID))

	return department, nil
}

// Update applies a partial update to a department. Only an admin of the
// department's hospital may call it.
func (s *DepartmentService) Update(id uint, adminID uint, input *UpdateDepartmentInput) (*models.Department, error) {
	department, err := s.departments.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to fetch department: %w", err)
	}

	admin, err := s.users.FindByID(adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin user: %w", err)
	}
	if admin.HospitalID == nil || *admin.HospitalID != department.HospitalID {
		return nil, ErrWrongHospital
	}

	if input.Name != nil {
		if !validDepartmentName(*input.Name) {
			return nil, ErrInvalidDepartmentName
		}
		department.Name = *input.Name
	}
	if input.Description != nil {
		if len(*input.Description) > maxDescriptionLen {
			return nil, ErrDescriptionTooLong
		}
		department.Description = *input.Description
	}

	if err := s.departments.Update(department); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, ErrDepartmentExists
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(&adminID, "department_update",
		fmt.Sprintf("Updated department %s (ID: %d)", department.Name, department.ID))

	return department, nil
}

// List retrieves departments, optionally filtered by hospital
func (s *DepartmentService) List(hospitalID *uint) ([]models.Department, error) {
	var (
		departments []models.Department
		err         error
	)
	if hospitalID != nil {
		departments, err = s.departments.FindByHospital(*hospitalID)
	} else {
		departments, err = s.departments.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departments: %w", err)
	}
	return departments, nil
}

// Get retrieves a single department
func (s *DepartmentService) Get(id uint) (*models.Department, error) {
	department, err := s.departments.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to fetch department: %w", err)
	}
	return department, nil
}

// Doctors retrieves the doctors of a department as redacted projections
func (s *DepartmentService) Doctors(departmentID uint) ([]models.ProfileResponse, error) {
	doctors, err := s.users.FindDoctorsByDepartment(departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	views := make([]models.ProfileResponse, 0, len(doctors))
	for i := range doctors {
		views = append(views, doctors[i].ProfileView())
	}
	return views, nil
}
