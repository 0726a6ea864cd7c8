package commands

import (
	"context"
	"time"

	"hotel-frontdesk/internal/domain/user"
	"hotel-frontdesk/internal/pkg/jwt"

	"github.com/google/uuid"
)

// ChangeNotifier drops cached reads carrying any of tags and tells live
// subscribers which tags changed. It never fails the caller.
type ChangeNotifier interface {
	Invalidate(ctx context.Context, tags ...string)
}

// EventPublisher delivers an outbox event to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error)
	ValidateRefreshToken(tokenString string) (*jwt.Claims, error)
}

// HotelPolicy carries the property-wide settings the write side needs.
type HotelPolicy struct {
	RevenueCategory string
	CleaningDelay   time.Duration
	JobBatchSize    int
	// JobLease is how long a claimed job may stay processing before another
	// pass takes it over.
	JobLease time.Duration
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}
