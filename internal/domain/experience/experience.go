package experience

import (
	"context"
	"time"
)

// WorkExperience describes one employment entry. A nil EndDate means the
// position is ongoing; the Current flag is stored as given and deliberately
// not cross-checked against EndDate.
type WorkExperience struct {
	ID          int64      `json:"id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Current     bool       `json:"current"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Repository interface {
	List(ctx context.Context) ([]WorkExperience, error)
	FindByID(ctx context.Context, id int64) (*WorkExperience, error)
	Create(ctx context.Context, w *WorkExperience) error
	Update(ctx context.Context, w *WorkExperience) error
	Delete(ctx context.Context, id int64) error
}
