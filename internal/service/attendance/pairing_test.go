package attendance

import (
	"testing"
	"time"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func event(carnet string, typ attendance.EventType, at time.Time) attendance.Attendance {
	return attendance.Attendance{
		EmployeeCarnet: carnet,
		BranchID:       "branch-1",
		Type:           typ,
		RecordedAt:     at,
	}
}

func TestNextEventType(t *testing.T) {
	assert.Equal(t, attendance.TypeIn, nextEventType(nil))

	last := event("E-1", attendance.TypeIn, time.Now())
	assert.Equal(t, attendance.TypeOut, nextEventType(&last))

	last.Type = attendance.TypeOut
	assert.Equal(t, attendance.TypeIn, nextEventType(&last))
}

func TestPairShiftsSimpleDay(t *testing.T) {
	loc := mustLoc(t, "America/La_Paz")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	events := []attendance.Attendance{
		event("E-1", attendance.TypeIn, day.Add(9*time.Hour)),
		event("E-1", attendance.TypeOut, day.Add(17*time.Hour)),
		event("E-1", attendance.TypeIn, day.Add(18*time.Hour)),
	}

	shifts, unpaired := pairShifts(events, loc)

	require.Len(t, shifts, 1)
	assert.Equal(t, 1, unpaired)
	assert.Equal(t, "E-1", shifts[0].Carnet)
	assert.Equal(t, "2026-03-10", shifts[0].Date)
	assert.Equal(t, 8.00, shifts[0].TotalHours)
}

func TestPairShiftsAdjacencyOnly(t *testing.T) {
	loc := mustLoc(t, "America/La_Paz")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	// A second IN right after the first means the first IN pairs with
	// nothing; only the second IN forms a shift with the OUT.
	events := []attendance.Attendance{
		event("E-1", attendance.TypeIn, day.Add(9*time.Hour)),
		event("E-1", attendance.TypeIn, day.Add(9*time.Hour+5*time.Minute)),
		event("E-1", attendance.TypeOut, day.Add(17*time.Hour)),
	}

	shifts, unpaired := pairShifts(events, loc)

	require.Len(t, shifts, 1)
	assert.Equal(t, 1, unpaired)
	assert.Equal(t, day.Add(9*time.Hour+5*time.Minute).In(loc).Format(time.RFC3339), shifts[0].CheckIn)
	assert.Equal(t, 7.92, shifts[0].TotalHours)
}

func TestPairShiftsMultipleCyclesPerDay(t *testing.T) {
	loc := mustLoc(t, "America/La_Paz")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	events := []attendance.Attendance{
		event("E-1", attendance.TypeIn, day.Add(8*time.Hour)),
		event("E-1", attendance.TypeOut, day.Add(12*time.Hour)),
		event("E-1", attendance.TypeIn, day.Add(13*time.Hour)),
		event("E-1", attendance.TypeOut, day.Add(17*time.Hour+30*time.Minute)),
	}

	shifts, unpaired := pairShifts(events, loc)

	require.Len(t, shifts, 2)
	assert.Equal(t, 0, unpaired)
	assert.Equal(t, 4.00, shifts[0].TotalHours)
	assert.Equal(t, 4.50, shifts[1].TotalHours)
}

func TestPairShiftsDoesNotCrossEmployees(t *testing.T) {
	loc := mustLoc(t, "America/La_Paz")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	// Input ordered by carnet then time, the repository's contract. A's IN
	// must not pair with B's OUT.
	events := []attendance.Attendance{
		event("A-1", attendance.TypeIn, day.Add(9*time.Hour)),
		event("B-1", attendance.TypeOut, day.Add(10*time.Hour)),
	}

	shifts, unpaired := pairShifts(events, loc)

	assert.Empty(t, shifts)
	assert.Equal(t, 1, unpaired)
}

func TestPairShiftsDoesNotCrossLocalDays(t *testing.T) {
	loc := mustLoc(t, "America/La_Paz")

	// IN at 23:00 local, OUT at 01:00 the next local day: different
	// partitions, no shift.
	in := time.Date(2026, 3, 10, 23, 0, 0, 0, loc)
	out := time.Date(2026, 3, 11, 1, 0, 0, 0, loc)

	shifts, unpaired := pairShifts([]attendance.Attendance{
		event("E-1", attendance.TypeIn, in),
		event("E-1", attendance.TypeOut, out),
	}, loc)

	assert.Empty(t, shifts)
	assert.Equal(t, 1, unpaired)
}

func TestPairShiftsLocalDayBucketing(t *testing.T) {
	loc := mustLoc(t, "America/La_Paz")

	// 23:50 local on March 10 is 03:50 UTC on March 11. The shift must land
	// on the local day, not the UTC one.
	in := time.Date(2026, 3, 11, 3, 50, 0, 0, time.UTC)
	out := in.Add(5 * time.Minute)

	shifts, unpaired := pairShifts([]attendance.Attendance{
		event("E-1", attendance.TypeIn, in),
		event("E-1", attendance.TypeOut, out),
	}, loc)

	require.Len(t, shifts, 1)
	assert.Equal(t, 0, unpaired)
	assert.Equal(t, "2026-03-10", shifts[0].Date)
}

func TestPairShiftsOrdering(t *testing.T) {
	loc := mustLoc(t, "America/La_Paz")
	day1 := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	day2 := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	events := []attendance.Attendance{
		event("A-1", attendance.TypeIn, day1.Add(9*time.Hour)),
		event("A-1", attendance.TypeOut, day1.Add(17*time.Hour)),
		event("A-1", attendance.TypeIn, day2.Add(9*time.Hour)),
		event("A-1", attendance.TypeOut, day2.Add(17*time.Hour)),
		event("B-1", attendance.TypeIn, day1.Add(8*time.Hour)),
		event("B-1", attendance.TypeOut, day1.Add(16*time.Hour)),
	}

	shifts, _ := pairShifts(events, loc)

	require.Len(t, shifts, 3)
	// Newest local date first, carnet ascending inside a date.
	assert.Equal(t, "2026-03-10", shifts[0].Date)
	assert.Equal(t, "A-1", shifts[0].Carnet)
	assert.Equal(t, "2026-03-09", shifts[1].Date)
	assert.Equal(t, "A-1", shifts[1].Carnet)
	assert.Equal(t, "2026-03-09", shifts[2].Date)
	assert.Equal(t, "B-1", shifts[2].Carnet)
}

func TestPairShiftsDeterministic(t *testing.T) {
	loc := mustLoc(t, "America/La_Paz")
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, loc)

	events := []attendance.Attendance{
		event("E-1", attendance.TypeIn, day.Add(9*time.Hour)),
		event("E-1", attendance.TypeOut, day.Add(17*time.Hour)),
		event("E-2", attendance.TypeIn, day.Add(9*time.Hour)),
		event("E-2", attendance.TypeOut, day.Add(17*time.Hour)),
	}

	first, _ := pairShifts(events, loc)
	second, _ := pairShifts(events, loc)
	assert.Equal(t, first, second)
}

func TestPaginate(t *testing.T) {
	loc := mustLoc(t, "America/La_Paz")

	var events []attendance.Attendance
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	for i := 0; i < 25; i++ {
		day := base.AddDate(0, 0, i)
		events = append(events,
			event("E-1", attendance.TypeIn, day.Add(9*time.Hour)),
			event("E-1", attendance.TypeOut, day.Add(17*time.Hour)),
		)
	}

	shifts, unpaired := pairShifts(events, loc)
	require.Len(t, shifts, 25)
	require.Equal(t, 0, unpaired)

	page1, meta := paginate(shifts, 1, 10)
	assert.Len(t, page1, 10)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.LastPage)

	page3, meta := paginate(shifts, 3, 10)
	assert.Len(t, page3, 5)
	assert.Equal(t, 3, meta.Page)

	page4, meta := paginate(shifts, 4, 10)
	assert.Empty(t, page4)
	assert.Equal(t, int64(25), meta.Total)
}
