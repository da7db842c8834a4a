package attendance

import (
	"math"
	"sort"
	"time"

	"github.com/asistenciapp/attendance-backend-go/internal/domain/attendance"
)

// nextEventType decides what the next scan for a pair should record. No
// prior event means IN; otherwise the opposite of the last stored type.
func nextEventType(last *attendance.Attendance) attendance.EventType {
	if last == nil {
		return attendance.TypeIn
	}
	return last.Type.Opposite()
}

// pairShifts reconstructs completed IN→OUT shifts from raw events. Events
// must already be ordered by employee carnet ascending, then recorded_at
// ascending. Pairing is by immediate adjacency inside each (employee, local
// calendar day) partition: an IN immediately followed by an OUT forms a
// shift; an IN followed by another IN, or by nothing, forms no shift.
// Adjacency is what keeps the report correct when an employee cycles in and
// out more than once a day.
//
// Returned shifts are sorted by local date descending, then carnet
// ascending, then check-in ascending; zero unpaired entries come back
// separately so the caller can log them.
func pairShifts(events []attendance.Attendance, loc *time.Location) (shifts []attendance.ShiftSummary, unpaired int) {
	for i := 0; i < len(events); i++ {
		cur := events[i]
		if cur.Type != attendance.TypeIn {
			continue
		}

		curLocal := cur.RecordedAt.In(loc)
		curDay := curLocal.Format("2006-01-02")

		if i+1 >= len(events) {
			unpaired++
			continue
		}

		next := events[i+1]
		nextLocal := next.RecordedAt.In(loc)

		samePartition := next.EmployeeCarnet == cur.EmployeeCarnet &&
			nextLocal.Format("2006-01-02") == curDay

		if !samePartition || next.Type != attendance.TypeOut {
			unpaired++
			continue
		}

		hours := next.RecordedAt.Sub(cur.RecordedAt).Hours()

		shifts = append(shifts, attendance.ShiftSummary{
			Carnet:       cur.EmployeeCarnet,
			EmployeeName: cur.EmployeeName,
			BranchID:     cur.BranchID,
			Date:         curDay,
			CheckIn:      curLocal.Format(time.RFC3339),
			CheckOut:     nextLocal.Format(time.RFC3339),
			TotalHours:   math.Round(hours*100) / 100,
		})

		// The OUT is consumed; it cannot pair with a later IN.
		i++
	}

	sort.SliceStable(shifts, func(a, b int) bool {
		if shifts[a].Date != shifts[b].Date {
			return shifts[a].Date > shifts[b].Date
		}
		if shifts[a].Carnet != shifts[b].Carnet {
			return shifts[a].Carnet < shifts[b].Carnet
		}
		return shifts[a].CheckIn < shifts[b].CheckIn
	})

	return shifts, unpaired
}

// paginate slices shifts into one page and builds the page metadata. Total
// is counted over the full reconstructed set, independent of the slice.
func paginate(shifts []attendance.ShiftSummary, page, limit int) ([]attendance.ShiftSummary, attendance.PageInfo) {
	total := int64(len(shifts))
	lastPage := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	if start > len(shifts) {
		start = len(shifts)
	}
	end := start + limit
	if end > len(shifts) {
		end = len(shifts)
	}

	meta := attendance.PageInfo{
		Total:    total,
		Page:     page,
		Limit:    limit,
		LastPage: lastPage,
	}

	return shifts[start:end], meta
}
