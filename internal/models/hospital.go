package models

import "time"

// Hospital represents a registered medical facility. Each hospital carries
// three role-scoped access secrets that gate staff registration under it.
// The secrets are stored only as bcrypt hashes and are never serialized.
type Hospital struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	Name                     string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	AdminPasswordHash        string    `gorm:"size:255;not null" json:"-"`
	DoctorPasswordHash       string    `gorm:"size:255;not null" json:"-"`
	ReceptionistPasswordHash string    `gorm:"size:255;not null" json:"-"`
	Coordinates              []float64 `gorm:"serializer:json;not null" json:"coordinates"`
	Services                 []string  `gorm:"serializer:json;not null" json:"services"`
	CreatedAt                time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalResponse is the public projection of a hospital. It can only be
// built from non-secret fields, so role-password hashes cannot leak through
// any read path.
type HospitalResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Coordinates []float64 `json:"coordinates"`
	Services    []string  `json:"services"`
	CreatedAt   time.Time `json:"created_at"`
}

// PublicView converts a stored hospital into its public projection.
func (h *Hospital) PublicView() HospitalResponse {
	return HospitalResponse{
		ID:          h.ID,
		Name:        h.Name,
		Coordinates: h.Coordinates,
		Services:    h.Services,
		CreatedAt:   h.CreatedAt,
	}
}

// RolePasswordHash returns the stored secret hash that gates registration
// under the given staff role, or false when the role has no hospital secret.
func (h *Hospital) RolePasswordHash(role string) (string, bool) {
	switch role {
	case RoleAdmin:
		return h.AdminPasswordHash, true
	case RoleDoctor:
		return h.DoctorPasswordHash, true
	case RoleReceptionist:
		return h.ReceptionistPasswordHash, true
	}
	return "", false
}
