package profile

import (
	"context"
	"time"
)

// Profile is the singleton owner record; the API never stores more than one.
type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Education *string   `json:"education"`
	Github    *string   `json:"github"`
	Linkedin  *string   `json:"linkedin"`
	Portfolio *string   `json:"portfolio"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	// Get returns the single profile row, or a not-found error.
	Get(ctx context.Context) (*Profile, error)
	Create(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
}
