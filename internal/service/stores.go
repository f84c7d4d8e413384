package service

import "github.com/sanjaiduresh/Niral-backend/internal/models"

// Store interfaces consumed by the services. The gorm-backed repositories
// in internal/repository satisfy them; tests substitute in-memory fakes.

type UserStore interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByEmailAndRole(email, role string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	FindDoctorsByDepartment(departmentID uint) ([]models.User, error)
}

type HospitalStore interface {
	Create(hospital *models.Hospital) error
	FindAll() ([]models.Hospital, error)
	FindByID(id uint) (*models.Hospital, error)
	FindByName(name string) (*models.Hospital, error)
	Update(hospital *models.Hospital) error
}

type DepartmentStore interface {
	Create(department *models.Department) error
	FindAll() ([]models.Department, error)
	FindByID(id uint) (*models.Department, error)
	FindByIDAndHospital(id, hospitalID uint) (*models.Department, error)
	FindByNameAndHospital(name string, hospitalID uint) (*models.Department, error)
	FindByHospital(hospitalID uint) ([]models.Department, error)
	Update(department *models.Department) error
}

type AuditStore interface {
	CreateAuditLog(userID *uint, action string, details string) error
}
