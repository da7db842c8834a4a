package branch

import "time"

type Branch struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
}
