package archive

import (
	"context"
	"time"

	"adcraft/internal/creative"
)

// Round is one archived generation cycle: the inputs the engine worked
// from and the creatives it produced.
type Round struct {
	CreatedAt        time.Time           `json:"created_at"`
	Brand            creative.Brand      `json:"brand"`
	Brief            creative.Brief      `json:"brief"`
	Creatives        []creative.Creative `json:"creatives"`
	CreativeBrief    string              `json:"creative_brief"`
	PerformanceScore float64             `json:"performance_score"`
}

// Store persists generation rounds.
type Store interface {
	SaveRound(ctx context.Context, round Round) (string, error)
	Recent(ctx context.Context, n int) ([]string, error)
}
