package health

import "context"

// CorpusPinger checks corpus availability.
type CorpusPinger interface {
	Ping(ctx context.Context) error
}
