package queries

import (
	"context"
	"time"
)

// Change tells live clients which cache tags a write invalidated.
type Change struct {
	Tags []string  `json:"tags"`
	At   time.Time `json:"at"`
}

// ChangeFeed streams changes until the returned stop func is called or ctx ends.
type ChangeFeed interface {
	Subscribe(ctx context.Context) (<-chan Change, func())
}
