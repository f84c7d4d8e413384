package service

import (
	"errors"
	"fmt"

	"github.com/sanjaiduresh/Niral-backend/internal/models"
	"github.com/sanjaiduresh/Niral-backend/internal/repository"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"
)

type AuthService struct {
	users       UserStore
	hospitals   HospitalStore
	departments DepartmentStore
	auditRepo   AuditStore
	tokens      *utils.JWTManager
}

func NewAuthService(
	users UserStore,
	hospitals HospitalStore,
	departments DepartmentStore,
	auditRepo AuditStore,
	tokens *utils.JWTManager,
) *AuthService {
	return &AuthService{
		users:       users,
		hospitals:   hospitals,
		departments: departments,
		auditRepo:   auditRepo,
		tokens:      tokens,
	}
}

// RegisterInput carries every field a registration request may supply. The
// role-specific constructors below decide which of them are mandatory, so
// there is no runtime "is this field required for this role" table.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string

	// Staff roles (Admin, Doctor, Receptionist)
	HospitalName     string
	HospitalPassword string

	// Doctor
	Specialty    string
	WorkingDays  []string
	DepartmentID uint
	Description  string

	// Patient
	Age       *int
	Contact   string
	BloodType string
}

// AuthResponse is returned from register and login: a session token plus
// the compact identity projection.
type AuthResponse struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

// Register validates a registration request against the role's rules and
// the hospital's scoped secrets, persists the new user and issues a
// session token for it.
func (s *AuthService) Register(input *RegisterInput) (*AuthResponse, error) {
	// Friendly duplicate check. The email uniqueIndex at insert time is the
	// authoritative one; this exists only for the nicer error.
	if _, err := s.users.FindByEmail(input.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user, err := s.buildUser(input)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = passwordHash

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// Lost the race against a concurrent registration with the same
			// email; reported exactly like the pre-check rejection.
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		// No transaction wraps insert + signing; the user row stays and the
		// operation is reported as an internal failure.
		return nil, fmt.Errorf("user created but failed to issue token: %w", err)
	}

	userID := user.ID
	_ = s.auditRepo.CreateAuditLog(&userID, "user_registration",
		fmt.Sprintf("User %s registered as %s", user.Email, user.Role))

	return &AuthResponse{Token: token, User: user.PublicView()}, nil
}

// Login authenticates email+password under a specific role and issues a
// session token.
func (s *AuthService) Login(email, password, role string) (*AuthResponse, error) {
	if email == "" || password == "" || role == "" {
		return nil, ErrMissingCredentials
	}

	// The lookup matches email AND role: the same email registered under a
	// different role is a different identity and must not match.
	user, err := s.users.FindByEmailAndRole(email, role)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	userID := user.ID
	_ = s.auditRepo.CreateAuditLog(&userID, "user_login",
		fmt.Sprintf("User %s logged in", user.Email))

	return &AuthResponse{Token: token, User: user.PublicView()}, nil
}

// Profile returns the caller's full identity projection.
func (s *AuthService) Profile(userID uint) (*models.ProfileResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	profile := user.ProfileView()
	return &profile, nil
}

// buildUser dispatches to the role-specific constructors. Each constructor
// checks its own mandatory field set and gating rules.
func (s *AuthService) buildUser(input *RegisterInput) (*models.User, error) {
	if !models.ValidRole(input.Role) {
		return nil, ErrInvalidRole
	}
	switch {
	case input.Role == models.RoleDoctor:
		return s.newDoctorUser(input)
	case models.StaffRole(input.Role):
		return s.newStaffUser(input)
	case input.Role == models.RolePatient:
		return newPatientUser(input)
	}
	return newBaseUser(input), nil
}

func newBaseUser(input *RegisterInput) *models.User {
	return &models.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  input.Role,
	}
}

// newStaffUser covers Admin and Receptionist: the hospital must resolve by
// name and the caller must know its secret for the requested role.
func (s *AuthService) newStaffUser(input *RegisterInput) (*models.User, error) {
	hospital, err := s.resolveHospital(input)
	if err != nil {
		return nil, err
	}
	user := newBaseUser(input)
	user.HospitalID = &hospital.ID
	return user, nil
}

// newDoctorUser adds the doctor-only requirements on top of the staff
// gating: specialty, working days and a department that belongs to the
// resolved hospital.
func (s *AuthService) newDoctorUser(input *RegisterInput) (*models.User, error) {
	hospital, err := s.resolveHospital(input)
	if err != nil {
		return nil, err
	}

	if input.Specialty == "" || len(input.WorkingDays) == 0 || input.DepartmentID == 0 {
		return nil, ErrMissingDoctorFields
	}

	// Scoped lookup: a department id that exists under another hospital
	// must not resolve here.
	department, err := s.departments.FindByIDAndHospital(input.DepartmentID, hospital.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDepartmentNotInHospital
		}
		return nil, fmt.Errorf("failed to resolve department: %w", err)
	}

	user := newBaseUser(input)
	user.HospitalID = &hospital.ID
	user.DepartmentID = &department.ID
	user.Specialty = input.Specialty
	user.WorkingDays = input.WorkingDays
	user.Description = input.Description
	return user, nil
}

func newPatientUser(input *RegisterInput) (*models.User, error) {
	if input.Age == nil || input.Contact == "" {
		return nil, ErrMissingPatientFields
	}
	user := newBaseUser(input)
	user.Age = input.Age
	user.Contact = input.Contact
	user.BloodType = input.BloodType
	return user, nil
}

// resolveHospital finds the hospital by name and verifies the supplied
// hospital password against the hash stored for the requested role.
func (s *AuthService) resolveHospital(input *RegisterInput) (*models.Hospital, error) {
	hospital, err := s.hospitals.FindByName(input.HospitalName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, fmt.Errorf("failed to resolve hospital: %w", err)
	}

	hash, ok := hospital.RolePasswordHash(input.Role)
	if !ok {
		return nil, ErrInvalidRole
	}
	if !utils.ComparePassword(hash, input.HospitalPassword) {
		return nil, &HospitalPasswordError{Role: input.Role}
	}

	return hospital, nil
}
