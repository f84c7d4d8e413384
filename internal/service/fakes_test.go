package service

import (
	"strings"
	"testing"

	"github.com/sanjaiduresh/Niral-backend/internal/models"
	"github.com/sanjaiduresh/Niral-backend/internal/repository"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"

	"github.com/stretchr/testify/require"
)

// In-memory store fakes. They return the same error classes the gorm
// repositories do, including duplicate-entry on unique-constraint hits.

type fakeUserStore struct {
	users  []*models.User
	nextID uint
	// createErr, when set, is returned by Create to simulate losing the
	// insert race after a clean pre-check.
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{}
}

func (s *fakeUserStore) Create(user *models.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEntry
		}
	}
	s.nextID++
	user.ID = s.nextID
	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

func (s *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindByEmailAndRole(email, role string) (*models.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) && u.Role == role {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindByID(id uint) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindDoctorsByDepartment(departmentID uint) ([]models.User, error) {
	var doctors []models.User
	for _, u := range s.users {
		if u.Role == models.RoleDoctor && u.DepartmentID != nil && *u.DepartmentID == departmentID {
			doctors = append(doctors, *u)
		}
	}
	return doctors, nil
}

type fakeHospitalStore struct {
	hospitals []*models.Hospital
	nextID    uint
}

func newFakeHospitalStore() *fakeHospitalStore {
	return &fakeHospitalStore{}
}

func (s *fakeHospitalStore) Create(hospital *models.Hospital) error {
	for _, h := range s.hospitals {
		if h.Name == hospital.Name {
			return repository.ErrDuplicateEntry
		}
	}
	s.nextID++
	hospital.ID = s.nextID
	clone := *hospital
	s.hospitals = append(s.hospitals, &clone)
	return nil
}

func (s *fakeHospitalStore) FindAll() ([]models.Hospital, error) {
	all := make([]models.Hospital, 0, len(s.hospitals))
	for _, h := range s.hospitals {
		all = append(all, *h)
	}
	return all, nil
}

func (s *fakeHospitalStore) FindByID(id uint) (*models.Hospital, error) {
	for _, h := range s.hospitals {
		if h.ID == id {
			clone := *h
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeHospitalStore) FindByName(name string) (*models.Hospital, error) {
	for _, h := range s.hospitals {
		if h.Name == name {
			clone := *h
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeHospitalStore) Update(hospital *models.Hospital) error {
	for _, h := range s.hospitals {
		if h.Name == hospital.Name && h.ID != hospital.ID {
			return repository.ErrDuplicateEntry
		}
	}
	for i, h := range s.hospitals {
		if h.ID == hospital.ID {
			clone := *hospital
			s.hospitals[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeDepartmentStore struct {
	departments []*models.Department
	nextID      uint
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{}
}

func (s *fakeDepartmentStore) Create(department *models.Department) error {
	for _, d := range s.departments {
		if d.Name == department.Name && d.HospitalID == department.HospitalID {
			return repository.ErrDuplicateEntry
		}
	}
	s.nextID++
	department.ID = s.nextID
	clone := *department
	s.departments = append(s.departments, &clone)
	return nil
}

func (s *fakeDepartmentStore) FindAll() ([]models.Department, error) {
	all := make([]models.Department, 0, len(s.departments))
	for _, d := range s.departments {
		all = append(all, *d)
	}
	return all, nil
}

func (s *fakeDepartmentStore) FindByID(id uint) (*models.Department, error) {
	for _, d := range s.departments {
		if d.ID == id {
			clone := *d
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeDepartmentStore) FindByIDAndHospital(id, hospitalID uint) (*models.Department, error) {
	for _, d := range s.departments {
		if d.ID == id && d.HospitalID == hospitalID {
			clone := *d
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeDepartmentStore) FindByNameAndHospital(name string, hospitalID uint) (*models.Department, error) {
	for _, d := range s.departments {
		if d.Name == name && d.HospitalID == hospitalID {
			clone := *d
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeDepartmentStore) FindByHospital(hospitalID uint) ([]models.Department, error) {
	var out []models.Department
	for _, d := range s.departments {
		if d.HospitalID == hospitalID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (s *fakeDepartmentStore) Update(department *models.Department) error {
	for _, d := range s.departments {
		if d.Name == department.Name && d.HospitalID == department.HospitalID && d.ID != department.ID {
			return repository.ErrDuplicateEntry
		}
	}
	for i, d := range s.departments {
		if d.ID == department.ID {
			clone := *department
			s.departments[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

type auditEntry struct {
	userID  *uint
	action  string
	details string
}

type fakeAuditStore struct {
	entries []auditEntry
}

func (s *fakeAuditStore) CreateAuditLog(userID *uint, action string, details string) error {
	s.entries = append(s.entries, auditEntry{userID: userID, action: action, details: details})
	return nil
}

// seedHospital stores a hospital with bcrypt-hashed role secrets.
func seedHospital(t *testing.T, hospitals *fakeHospitalStore, name, adminPass, doctorPass, receptionistPass string) *models.Hospital {
	t.Helper()

	adminHash, err := utils.HashPassword(adminPass)
	require.NoError(t, err)
	doctorHash, err := utils.HashPassword(doctorPass)
	require.NoError(t, err)
	receptionistHash, err := utils.HashPassword(receptionistPass)
	require.NoError(t, err)

	hospital := &models.Hospital{
		Name:                     name,
		AdminPasswordHash:        adminHash,
		DoctorPasswordHash:       doctorHash,
		ReceptionistPasswordHash: receptionistHash,
		Coordinates:              []float64{12.9, 77.6},
		Services:                 []string{"ER", "ICU"},
	}
	require.NoError(t, hospitals.Create(hospital))
	return hospital
}

// seedAdmin stores an admin user attached to a hospital.
func seedAdmin(t *testing.T, users *fakeUserStore, email string, hospitalID uint) *models.User {
	t.Helper()

	hash, err := utils.HashPassword("admin-password")
	require.NoError(t, err)

	admin := &models.User{
		Name:         "Admin " + email,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		HospitalID:   &hospitalID,
	}
	require.NoError(t, users.Create(admin))
	return admin
}
