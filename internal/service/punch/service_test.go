package punch

import (
	"context"
	"testing"
	"time"

	"github.com/atlashr/workforce-backend-go/internal/domain/employee"
	"github.com/atlashr/workforce-backend-go/internal/domain/geofence"
	"github.com/atlashr/workforce-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepo struct {
	punches []punch.Punch
}

func (r *fakePunchRepo) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	r.punches = append(r.punches, p)
	return p, nil
}

func (r *fakePunchRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, fromUTC, toUTC time.Time) ([]punch.Punch, error) {
	return r.punches, nil
}

func (r *fakePunchRepo) List(ctx context.Context, filter punch.PunchFilter) ([]punch.Punch, int64, error) {
	return r.punches, int64(len(r.punches)), nil
}

func (r *fakePunchRepo) Delete(ctx context.Context, id string) error {
	for i, p := range r.punches {
		if p.ID == id {
			r.punches = append(r.punches[:i], r.punches[i+1:]...)
			return nil
		}
	}
	return punch.ErrPunchNotFound
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) ListActive(ctx context.Context, search string) ([]employee.Employee, error) {
	return nil, nil
}

type fakeAreaRepo struct {
	areas map[string]geofence.Area
}

func (r *fakeAreaRepo) Create(ctx context.Context, a geofence.Area) (geofence.Area, error) {
	r.areas[a.ID] = a
	return a, nil
}

func (r *fakeAreaRepo) GetByID(ctx context.Context, id string) (geofence.Area, error) {
	a, ok := r.areas[id]
	if !ok {
		return geofence.Area{}, geofence.ErrAreaNotFound
	}
	return a, nil
}

func (r *fakeAreaRepo) ListActive(ctx context.Context) ([]geofence.Area, error) {
	return nil, nil
}

func newPunchService(areas map[string]geofence.Area) (*PunchServiceImpl, *fakePunchRepo) {
	repo := &fakePunchRepo{}
	svc := &PunchServiceImpl{
		PunchRepository: repo,
		EmployeeRepository: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", FullName: "Asha Rao", EmployeeCode: "1001-0001", IsActive: true},
		}},
		areaRepo: &fakeAreaRepo{areas: areas},
	}
	return svc, repo
}

// Head office in Bengaluru; a point ~150m away and one several km away.
var (
	officeArea = geofence.Area{
		ID:           "area-1",
		Name:         "Head Office",
		Latitude:     12.9716,
		Longitude:    77.5946,
		RadiusMeters: 200,
		IsActive:     true,
	}
)

func TestCreatePunch_NoAreaIsValid(t *testing.T) {
	svc, repo := newPunchService(map[string]geofence.Area{})

	resp, err := svc.CreatePunch(context.Background(), punch.CreatePunchRequest{
		EmployeeID: "emp-1",
		Type:       "IN",
		PunchedAt:  "2024-06-10T03:35:00Z",
		Latitude:   12.9716,
		Longitude:  77.5946,
	})
	require.NoError(t, err)

	assert.Equal(t, string(punch.ValidityValid), resp.Validity)
	assert.Equal(t, "2024-06-10T03:35:00Z", resp.PunchedAt)
	require.Len(t, repo.punches, 1)
	assert.NotEmpty(t, repo.punches[0].ID)
}

func TestCreatePunch_InsideGeofence(t *testing.T) {
	svc, _ := newPunchService(map[string]geofence.Area{"area-1": officeArea})
	areaID := "area-1"

	resp, err := svc.CreatePunch(context.Background(), punch.CreatePunchRequest{
		EmployeeID:     "emp-1",
		Type:           "IN",
		PunchedAt:      "2024-06-10T03:35:00Z",
		Latitude:       12.9717,
		Longitude:      77.5947,
		GeofenceAreaID: &areaID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(punch.ValidityValid), resp.Validity)
}

func TestCreatePunch_OutsideGeofence(t *testing.T) {
	svc, _ := newPunchService(map[string]geofence.Area{"area-1": officeArea})
	areaID := "area-1"

	resp, err := svc.CreatePunch(context.Background(), punch.CreatePunchRequest{
		EmployeeID:     "emp-1",
		Type:           "OUT",
		PunchedAt:      "2024-06-10T12:10:00Z",
		Latitude:       13.05,
		Longitude:      77.65,
		GeofenceAreaID: &areaID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(punch.ValidityOutsideGeofence), resp.Validity)
}

func TestCreatePunch_InactiveAreaIsInvalid(t *testing.T) {
	inactive := officeArea
	inactive.IsActive = false
	svc, _ := newPunchService(map[string]geofence.Area{"area-1": inactive})
	areaID := "area-1"

	resp, err := svc.CreatePunch(context.Background(), punch.CreatePunchRequest{
		EmployeeID:     "emp-1",
		Type:           "IN",
		PunchedAt:      "2024-06-10T03:35:00Z",
		Latitude:       12.9716,
		Longitude:      77.5946,
		GeofenceAreaID: &areaID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(punch.ValidityInvalid), resp.Validity)
}

func TestCreatePunch_UnknownArea(t *testing.T) {
	svc, _ := newPunchService(map[string]geofence.Area{})
	areaID := "missing"

	_, err := svc.CreatePunch(context.Background(), punch.CreatePunchRequest{
		EmployeeID:     "emp-1",
		Type:           "IN",
		PunchedAt:      "2024-06-10T03:35:00Z",
		Latitude:       12.9716,
		Longitude:      77.5946,
		GeofenceAreaID: &areaID,
	})
	assert.ErrorIs(t, err, geofence.ErrAreaNotFound)
}

func TestCreatePunch_UnknownEmployee(t *testing.T) {
	svc, _ := newPunchService(map[string]geofence.Area{})

	_, err := svc.CreatePunch(context.Background(), punch.CreatePunchRequest{
		EmployeeID: "nobody",
		Type:       "IN",
		PunchedAt:  "2024-06-10T03:35:00Z",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreatePunch_RejectsBadTimestamp(t *testing.T) {
	svc, repo := newPunchService(map[string]geofence.Area{})

	_, err := svc.CreatePunch(context.Background(), punch.CreatePunchRequest{
		EmployeeID: "emp-1",
		Type:       "IN",
		PunchedAt:  "10-06-2024 09:05",
	})
	assert.Error(t, err)
	// Never defaulted to the current time
	assert.Empty(t, repo.punches)
}

func TestCreatePunch_RejectsBadType(t *testing.T) {
	svc, _ := newPunchService(map[string]geofence.Area{})

	_, err := svc.CreatePunch(context.Background(), punch.CreatePunchRequest{
		EmployeeID: "emp-1",
		Type:       "BREAK",
		PunchedAt:  "2024-06-10T03:35:00Z",
	})
	assert.Error(t, err)
}

func TestDeletePunch_NotFound(t *testing.T) {
	svc, _ := newPunchService(map[string]geofence.Area{})

	err := svc.DeletePunch(context.Background(), "missing")
	assert.ErrorIs(t, err, punch.ErrPunchNotFound)
}
