package attendance

import (
	"testing"

	"github.com/asistenciapp/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAttendanceRequestValidate(t *testing.T) {
	req := CreateAttendanceRequest{Carnet: "EMP-001", ImageBase64: "aGVsbG8="}
	assert.NoError(t, req.Validate())

	req = CreateAttendanceRequest{}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "carnet")
	assert.Contains(t, details, "imageBase64")
}

func TestCreateAttendanceRequestValidateRecordedAt(t *testing.T) {
	good := "2026-03-10T09:00:00-04:00"
	req := CreateAttendanceRequest{Carnet: "EMP-001", ImageBase64: "aGVsbG8=", RecordedAt: &good}
	assert.NoError(t, req.Validate())

	bad := "10/03/2026 09:00"
	req.RecordedAt = &bad
	assert.Error(t, req.Validate())
}

func TestAttendanceFilterValidateDefaults(t *testing.T) {
	filter := AttendanceFilter{}
	require.NoError(t, filter.Validate())
	assert.Equal(t, 1, filter.Page)
	// Limit stays zero here; the service applies its configured default.
	assert.Equal(t, 0, filter.Limit)
}

func TestAttendanceFilterValidateBounds(t *testing.T) {
	filter := AttendanceFilter{Page: -1}
	assert.Error(t, filter.Validate())

	filter = AttendanceFilter{Limit: 101}
	assert.Error(t, filter.Validate())

	bad := "2026-13-40"
	filter = AttendanceFilter{StartDate: &bad}
	assert.Error(t, filter.Validate())
}

func TestDashboardFilterValidate(t *testing.T) {
	start, end := "2026-03-01", "2026-03-31"
	filter := DashboardFilter{StartDate: &start, EndDate: &end}
	require.NoError(t, filter.Validate())
	assert.Equal(t, 1, filter.Page)

	bad := "01-03-2026"
	filter = DashboardFilter{EndDate: &bad}
	assert.Error(t, filter.Validate())
}

func TestEventTypeOpposite(t *testing.T) {
	assert.Equal(t, TypeOut, TypeIn.Opposite())
	assert.Equal(t, TypeIn, TypeOut.Opposite())
	assert.True(t, TypeIn.Valid())
	assert.False(t, EventType("PAUSE").Valid())
}
