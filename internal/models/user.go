package models

import "time"

// User roles
const (
	RoleAdmin        = "Admin"
	RolePatient      = "Patient"
	RoleDoctor       = "Doctor"
	RoleReceptionist = "Receptionist"
	RoleInventoryman = "Inventoryman"
)

// ValidRole reports whether role is one of the five supported roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RolePatient, RoleDoctor, RoleReceptionist, RoleInventoryman:
		return true
	}
	return false
}

// StaffRole reports whether role is gated by a hospital-scoped secret.
func StaffRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return true
	}
	return false
}

// User represents the users table. Role-conditional fields are pointers or
// zero-valued for roles that do not carry them: staff roles reference a
// hospital, doctors additionally reference a department, patients carry
// age and contact instead.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Role         string    `gorm:"type:enum('Admin','Patient','Doctor','Receptionist','Inventoryman');not null;index" json:"role"`
	HospitalID   *uint     `gorm:"index" json:"hospital_id,omitempty"`
	DepartmentID *uint     `gorm:"index" json:"department_id,omitempty"`
	Specialty    string    `gorm:"size:100" json:"specialty,omitempty"`
	WorkingDays  []string  `gorm:"serializer:json" json:"working_days,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Age          *int      `json:"age,omitempty"`
	BloodType    string    `gorm:"size:10" json:"blood_type,omitempty"`
	Contact      string    `gorm:"size:50" json:"contact,omitempty"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Hospital   *Hospital   `gorm:"foreignKey:HospitalID" json:"-"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"-"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// UserResponse is the compact identity projection returned from register and
// login. It is constructed field by field so the password hash can never be
// included, regardless of what the store returned.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// PublicView converts a stored user into its compact identity projection.
func (u *User) PublicView() UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// ProfileResponse is the full identity projection served to the
// authenticated caller. Like UserResponse it carries no secret fields.
type ProfileResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	HospitalID   *uint     `json:"hospital_id,omitempty"`
	DepartmentID *uint     `json:"department_id,omitempty"`
	Specialty    string    `json:"specialty,omitempty"`
	WorkingDays  []string  `json:"working_days,omitempty"`
	Description  string    `json:"description,omitempty"`
	Age          *int      `json:"age,omitempty"`
	BloodType    string    `json:"blood_type,omitempty"`
	Contact      string    `json:"contact,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProfileView converts a stored user into its full profile projection.
func (u *User) ProfileView() ProfileResponse {
	return ProfileResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		HospitalID:   u.HospitalID,
		DepartmentID: u.DepartmentID,
		Specialty:    u.Specialty,
		WorkingDays:  u.WorkingDays,
		Description:  u.Description,
		Age:          u.Age,
		BloodType:    u.BloodType,
		Contact:      u.Contact,
		CreatedAt:    u.CreatedAt,
	}
}
