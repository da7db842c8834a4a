package attendance

import (
	"context"
)

type AttendanceService interface {
	// Record is the single write path into the scan log: validates the
	// employee, uploads the photo, resolves the event type and persists.
	Record(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// ResolveNextType reports which event type the next scan for the pair
	// should produce. Read-only; no prior event means IN.
	ResolveNextType(ctx context.Context, carnet string, branchID string) (EventType, error)

	// List returns paginated raw events.
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Dashboard reconstructs completed IN→OUT shifts per employee per local
	// calendar day and returns a paginated, deterministically sorted report.
	Dashboard(ctx context.Context, filter DashboardFilter) (DashboardResponse, error)
}
