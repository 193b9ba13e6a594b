package copywriter

import (
	"context"
	"fmt"

	"adcraft/internal/creative"
)

// StubWriter produces deterministic templated copy without calling any
// external model. It is the default provider and needs no credentials.
type StubWriter struct{}

func NewStubWriter() Provider {
	return &StubWriter{}
}

func (s *StubWriter) GenerateVariants(ctx context.Context, brand creative.Brand, brief creative.Brief, n int) ([]Variant, error) {
	variants := make([]Variant, 0, n)
	for i := 0; i < n; i++ {
		variants = append(variants, Variant{
			Headline:    stubHeadline(brief, i),
			PrimaryText: stubPrimaryText(brief, i),
		})
	}
	return variants, nil
}

// Transcreate returns the base copy unchanged: without a model there is
// no transcreation, only region re-tagging by the engine.
func (s *StubWriter) Transcreate(ctx context.Context, brand creative.Brand, brief creative.Brief, base Variant, region string) (Variant, error) {
	return base, nil
}

func stubHeadline(brief creative.Brief, i int) string {
	switch i % 3 {
	case 0:
		return fmt.Sprintf("%s is amazing!", brief.Product)
	case 1:
		return fmt.Sprintf("Level up with %s", brief.Product)
	default:
		return fmt.Sprintf("%s, built for %s", brief.Product, brief.Audience)
	}
}

func stubPrimaryText(brief creative.Brief, i int) string {
	base := fmt.Sprintf("Try %s for %s!", brief.Product, brief.Audience)
	if len(brief.ValueProps) == 0 {
		return base
	}
	return fmt.Sprintf("%s %s.", base, brief.ValueProps[i%len(brief.ValueProps)])
}
