package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sanjaiduresh/Niral-backend/internal/models"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hospitalFixture struct {
	users       *fakeUserStore
	hospitals   *fakeHospitalStore
	departments *fakeDepartmentStore
	audit       *fakeAuditStore
	svc         *HospitalService
}

func newHospitalFixture() *hospitalFixture {
	users := newFakeUserStore()
	hospitals := newFakeHospitalStore()
	departments := newFakeDepartmentStore()
	audit := &fakeAuditStore{}
	return &hospitalFixture{
		users:       users,
		hospitals:   hospitals,
		departments: departments,
		audit:       audit,
		svc:         NewHospitalService(hospitals, departments, users, audit),
	}
}

func validHospitalInput(name string) *CreateHospitalInput {
	return &CreateHospitalInput{
		Name:                 name,
		AdminPassword:        "admin-secret",
		DoctorPassword:       "doctor-secret",
		ReceptionistPassword: "reception-secret",
		Coordinates:          []float64{12.9, 77.6},
		Services:             []string{"ER", "ICU"},
	}
}

func TestHospitalCreate(t *testing.T) {
	f := newHospitalFixture()

	view, err := f.svc.Create(validHospitalInput("General Hospital"), nil)
	require.NoError(t, err)
	assert.Equal(t, "General Hospital", view.Name)
	assert.Equal(t, []float64{12.9, 77.6}, view.Coordinates)
	assert.Equal(t, []string{"ER", "ICU"}, view.Services)

	// Stored secrets are hashed and verify against the plaintext
	stored, err := f.hospitals.FindByName("General Hospital")
	require.NoError(t, err)
	assert.NotEqual(t, "admin-secret", stored.AdminPasswordHash)
	assert.True(t, utils.ComparePassword(stored.AdminPasswordHash, "admin-secret"))
	assert.True(t, utils.ComparePassword(stored.DoctorPasswordHash, "doctor-secret"))
	assert.True(t, utils.ComparePassword(stored.ReceptionistPasswordHash, "reception-secret"))

	// The projection serializes without any password material
	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$")

	require.Len(t, f.audit.entries, 1)
	assert.Equal(t, "hospital_create", f.audit.entries[0].action)
	assert.Nil(t, f.audit.entries[0].userID)
}

func TestHospitalCreate_DuplicateName(t *testing.T) {
	f := newHospitalFixture()

	_, err := f.svc.Create(validHospitalInput("General Hospital"), nil)
	require.NoError(t, err)

	_, err = f.svc.Create(validHospitalInput("General Hospital"), nil)
	assert.ErrorIs(t, err, ErrHospitalExists)
	assert.Len(t, f.hospitals.hospitals, 1)
}

func TestHospitalCreate_InvalidCoordinates(t *testing.T) {
	f := newHospitalFixture()

	input := validHospitalInput("General Hospital")
	input.Coordinates = []float64{12.9}
	_, err := f.svc.Create(input, nil)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	input.Coordinates = []float64{12.9, 77.6, 1.0}
	_, err = f.svc.Create(input, nil)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestHospitalCreate_MissingServices(t *testing.T) {
	f := newHospitalFixture()

	input := validHospitalInput("General Hospital")
	input.Services = nil
	_, err := f.svc.Create(input, nil)
	assert.ErrorIs(t, err, ErrMissingServices)
}

func TestHospitalUpdate(t *testing.T) {
	f := newHospitalFixture()

	view, err := f.svc.Create(validHospitalInput("General Hospital"), nil)
	require.NoError(t, err)
	admin := seedAdmin(t, f.users, "admin@example.com", view.ID)

	newName := "General Hospital East"
	updated, err := f.svc.Update(view.ID, admin.ID, &UpdateHospitalInput{
		Name:     &newName,
		Services: []string{"ER", "ICU", "Maternity"},
	})
	require.NoError(t, err)
	assert.Equal(t, "General Hospital East", updated.Name)
	assert.Equal(t, []string{"ER", "ICU", "Maternity"}, updated.Services)
	// Untouched fields survive the patch
	assert.Equal(t, []float64{12.9, 77.6}, updated.Coordinates)

	stored, err := f.hospitals.FindByID(view.ID)
	require.NoError(t, err)
	// Secrets were not supplied, so the hashes are unchanged
	assert.True(t, utils.ComparePassword(stored.AdminPasswordHash, "admin-secret"))
}

func TestHospitalUpdate_RehashesSuppliedSecrets(t *testing.T) {
	f := newHospitalFixture()

	view, err := f.svc.Create(validHospitalInput("General Hospital"), nil)
	require.NoError(t, err)
	admin := seedAdmin(t, f.users, "admin@example.com", view.ID)

	newDoctorPass := "new-doctor-secret"
	_, err = f.svc.Update(view.ID, admin.ID, &UpdateHospitalInput{
		DoctorPassword: &newDoctorPass,
	})
	require.NoError(t, err)

	stored, err := f.hospitals.FindByID(view.ID)
	require.NoError(t, err)
	assert.NotEqual(t, newDoctorPass, stored.DoctorPasswordHash)
	assert.True(t, utils.ComparePassword(stored.DoctorPasswordHash, newDoctorPass))
	assert.False(t, utils.ComparePassword(stored.DoctorPasswordHash, "doctor-secret"))
	// The other two secrets are untouched
	assert.True(t, utils.ComparePassword(stored.AdminPasswordHash, "admin-secret"))
	assert.True(t, utils.ComparePassword(stored.ReceptionistPasswordHash, "reception-secret"))
}

func TestHospitalCreate_InvalidName(t *testing.T) {
	f := newHospitalFixture()

	input := validHospitalInput("")
	_, err := f.svc.Create(input, nil)
	assert.ErrorIs(t, err, ErrInvalidHospitalName)

	input = validHospitalInput(strings.Repeat("x", 51))
	_, err = f.svc.Create(input, nil)
	assert.ErrorIs(t, err, ErrInvalidHospitalName)
	assert.Empty(t, f.hospitals.hospitals)
}

func TestHospitalUpdate_EmptyName(t *testing.T) {
	f := newHospitalFixture()

	view, err := f.svc.Create(validHospitalInput("General Hospital"), nil)
	require.NoError(t, err)
	admin := seedAdmin(t, f.users, "admin@example.com", view.ID)

	// A field that was mandatory at creation cannot be blanked by an update
	empty := ""
	_, err = f.svc.Update(view.ID, admin.ID, &UpdateHospitalInput{Name: &empty})
	assert.ErrorIs(t, err, ErrInvalidHospitalName)

	tooLong := strings.Repeat("x", 51)
	_, err = f.svc.Update(view.ID, admin.ID, &UpdateHospitalInput{Name: &tooLong})
	assert.ErrorIs(t, err, ErrInvalidHospitalName)

	stored, err := f.hospitals.FindByID(view.ID)
	require.NoError(t, err)
	assert.Equal(t, "General Hospital", stored.Name)
}

func TestHospitalUpdate_WrongHospitalAdmin(t *testing.T) {
	f := newHospitalFixture()

	a, err := f.svc.Create(validHospitalInput("Hospital A"), nil)
	require.NoError(t, err)
	b, err := f.svc.Create(validHospitalInput("Hospital B"), nil)
	require.NoError(t, err)

	// Admin belongs to hospital B but targets hospital A
	adminB := seedAdmin(t, f.users, "admin-b@example.com", b.ID)

	newName := "Hijacked"
	_, err = f.svc.Update(a.ID, adminB.ID, &UpdateHospitalInput{Name: &newName})
	assert.ErrorIs(t, err, ErrWrongHospital)

	stored, err := f.hospitals.FindByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hospital A", stored.Name)
}

func TestHospitalUpdate_NotFound(t *testing.T) {
	f := newHospitalFixture()

	newName := "Ghost"
	_, err := f.svc.Update(999, 1, &UpdateHospitalInput{Name: &newName})
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}

func TestHospitalList(t *testing.T) {
	f := newHospitalFixture()

	_, err := f.svc.Create(validHospitalInput("Hospital A"), nil)
	require.NoError(t, err)
	_, err = f.svc.Create(validHospitalInput("Hospital B"), nil)
	require.NoError(t, err)

	views, err := f.svc.List()
	require.NoError(t, err)
	require.Len(t, views, 2)

	raw, err := json.Marshal(views)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$")
}

func TestHospitalGet_NotFound(t *testing.T) {
	f := newHospitalFixture()

	_, err := f.svc.Get(42)
	assert.ErrorIs(t, err, ErrHospitalNotFound)
}

func TestHospitalDepartments(t *testing.T) {
	f := newHospitalFixture()

	view, err := f.svc.Create(validHospitalInput("General Hospital"), nil)
	require.NoError(t, err)

	require.NoError(t, f.departments.Create(&models.Department{Name: "Cardiology", HospitalID: view.ID}))
	require.NoError(t, f.departments.Create(&models.Department{Name: "Oncology", HospitalID: view.ID}))
	require.NoError(t, f.departments.Create(&models.Department{Name: "Cardiology", HospitalID: view.ID + 1}))

	departments, err := f.svc.Departments(view.ID)
	require.NoError(t, err)
	assert.Len(t, departments, 2)
}
