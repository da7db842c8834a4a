package attendance

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/attendance"
	"github.com/asistenciapp/attendance-backend-go/internal/domain/branch"
	"github.com/asistenciapp/attendance-backend-go/internal/domain/employee"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/database"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/imagestore"
	"github.com/asistenciapp/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// fakeStore avoids network calls in the ingestion path.
type fakeStore struct{}

func (fakeStore) Upload(ctx context.Context, base64Image string) (imagestore.UploadResult, error) {
	return imagestore.UploadResult{
		URL:      "https://res.example.com/test.jpg",
		PublicID: "test",
	}, nil
}

func dbTestInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	for _, table := range []string{"attendances", "employees", "branches"} {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestBranch(t *testing.T, ctx context.Context) string {
	t.Helper()
	b, err := postgresql.NewBranchRepository(testDB).Create(ctx, branch.Branch{Name: "Central"})
	require.NoError(t, err)
	return b.ID
}

func createTestEmployee(t *testing.T, ctx context.Context, carnet string, branchID string) {
	t.Helper()
	_, err := postgresql.NewEmployeeRepository(testDB).Create(ctx, employee.Employee{
		Carnet:    carnet,
		FirstName: "Maria",
		BranchID:  &branchID,
	})
	require.NoError(t, err)
}

func newTestService() attendance.AttendanceService {
	return NewAttendanceService(
		testDB,
		postgresql.NewAttendanceRepository(testDB),
		postgresql.NewEmployeeRepository(testDB),
		fakeStore{},
		"America/La_Paz",
		10,
	)
}

func TestRecordAlternatesTypes(t *testing.T) {
	dbTestInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	branchID := createTestBranch(t, ctx)
	createTestEmployee(t, ctx, "EMP-001", branchID)

	svc := newTestService()

	first, err := svc.Record(ctx, attendance.CreateAttendanceRequest{
		Carnet:      "EMP-001",
		ImageBase64: "aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, "IN", first.Type)
	assert.Equal(t, branchID, first.BranchID)
	assert.Equal(t, "https://res.example.com/test.jpg", first.ImageURL)

	second, err := svc.Record(ctx, attendance.CreateAttendanceRequest{
		Carnet:      "EMP-001",
		ImageBase64: "aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, "OUT", second.Type)

	third, err := svc.Record(ctx, attendance.CreateAttendanceRequest{
		Carnet:      "EMP-001",
		ImageBase64: "aGVsbG8=",
	})
	require.NoError(t, err)
	assert.Equal(t, "IN", third.Type)
}

func TestRecordUnknownEmployee(t *testing.T) {
	dbTestInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	svc := newTestService()

	_, err := svc.Record(ctx, attendance.CreateAttendanceRequest{
		Carnet:      "NOPE-404",
		ImageBase64: "aGVsbG8=",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecordConcurrentSamePair(t *testing.T) {
	dbTestInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	branchID := createTestBranch(t, ctx)
	createTestEmployee(t, ctx, "EMP-002", branchID)

	svc := newTestService()

	const n = 8
	errCh := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := svc.Record(ctx, attendance.CreateAttendanceRequest{
				Carnet:      "EMP-002",
				ImageBase64: "aGVsbG8=",
			})
			errCh <- err
		}()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-errCh)
	}

	// The advisory lock serializes resolve+insert, so the stored log must
	// alternate in insertion order: with an even number of scans that means
	// exactly half IN and half OUT. Without the lock, concurrent scans read
	// the same last event and skew the counts.
	var ins, outs int
	err := testDB.QueryRow(ctx,
		`SELECT
			COUNT(*) FILTER (WHERE type = 'IN'),
			COUNT(*) FILTER (WHERE type = 'OUT')
		 FROM attendances WHERE employee_carnet = $1`,
		"EMP-002",
	).Scan(&ins, &outs)
	require.NoError(t, err)

	assert.Equal(t, n/2, ins)
	assert.Equal(t, n/2, outs)
}

func TestResolveNextTypeRoundTrip(t *testing.T) {
	dbTestInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	branchID := createTestBranch(t, ctx)
	createTestEmployee(t, ctx, "EMP-003", branchID)

	svc := newTestService()

	next, err := svc.ResolveNextType(ctx, "EMP-003", branchID)
	require.NoError(t, err)
	assert.Equal(t, attendance.TypeIn, next)

	_, err = svc.Record(ctx, attendance.CreateAttendanceRequest{
		Carnet:      "EMP-003",
		ImageBase64: "aGVsbG8=",
	})
	require.NoError(t, err)

	next, err = svc.ResolveNextType(ctx, "EMP-003", branchID)
	require.NoError(t, err)
	assert.Equal(t, attendance.TypeOut, next)
}

func TestDashboardEndToEnd(t *testing.T) {
	dbTestInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	branchID := createTestBranch(t, ctx)
	createTestEmployee(t, ctx, "EMP-004", branchID)

	repo := postgresql.NewAttendanceRepository(testDB)
	loc, err := time.LoadLocation("America/La_Paz")
	require.NoError(t, err)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)
	for _, ev := range []struct {
		typ attendance.EventType
		at  time.Time
	}{
		{attendance.TypeIn, day.Add(9 * time.Hour)},
		{attendance.TypeOut, day.Add(17 * time.Hour)},
		{attendance.TypeIn, day.Add(18 * time.Hour)}, // dangling
	} {
		_, err := repo.Create(ctx, attendance.Attendance{
			EmployeeCarnet: "EMP-004",
			BranchID:       branchID,
			Type:           ev.typ,
			RecordedAt:     ev.at,
			ImageURL:       "https://res.example.com/test.jpg",
		})
		require.NoError(t, err)
	}

	svc := newTestService()

	start := "2026-03-10"
	result, err := svc.Dashboard(ctx, attendance.DashboardFilter{
		StartDate: &start,
		EndDate:   &start,
	})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Equal(t, "EMP-004", result.Data[0].Carnet)
	assert.Equal(t, "2026-03-10", result.Data[0].Date)
	assert.Equal(t, 8.00, result.Data[0].TotalHours)
	assert.Equal(t, int64(1), result.Meta.Total)
	assert.Equal(t, 1, result.Meta.LastPage)
}

func TestListFiltersAndCounts(t *testing.T) {
	dbTestInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	branchID := createTestBranch(t, ctx)
	createTestEmployee(t, ctx, "EMP-005", branchID)

	repo := postgresql.NewAttendanceRepository(testDB)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, attendance.Attendance{
			EmployeeCarnet: "EMP-005",
			BranchID:       branchID,
			Type:           attendance.TypeIn,
			RecordedAt:     base.Add(time.Duration(i) * time.Hour),
			ImageURL:       "https://res.example.com/test.jpg",
		})
		require.NoError(t, err)
	}

	svc := newTestService()

	result, err := svc.List(ctx, attendance.AttendanceFilter{Limit: 2})
	require.NoError(t, err)

	assert.Len(t, result.Data, 2)
	assert.Equal(t, int64(3), result.Meta.Total)
	assert.Equal(t, 2, result.Meta.LastPage)
	// Newest first.
	assert.True(t, result.Data[0].RecordedAt > result.Data[1].RecordedAt)
}
