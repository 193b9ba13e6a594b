package engine

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"adcraft/internal/archive"
	"adcraft/internal/copywriter"
	"adcraft/internal/creative"
)

const (
	defaultVariantCount   = 3
	defaultClickRate      = 0.3
	defaultSimulateRounds = 200

	placeholderImageURL = "https://via.placeholder.com/150"
)

// Precondition errors carry the messages served to API callers.
var (
	ErrNoCreatives = errors.New("Run /generate first")
	ErrNoLocalized = errors.New("Run /localize first")
)

// GenerateRequest is the body of a generation round.
type GenerateRequest struct {
	ProgramName    string `json:"program_name"`
	TargetAudience string `json:"target_audience"`
	Localize       bool   `json:"localize"`
}

// GenerateResponse is the result of a generation round. The first two ad
// copy fields mirror the first two creatives for clients that only render
// a summary.
type GenerateResponse struct {
	AdCopy1          string              `json:"ad_copy_1"`
	AdCopy2          string              `json:"ad_copy_2"`
	CreativeBrief    string              `json:"creative_brief"`
	PerformanceScore float64             `json:"performance_score"`
	Creatives        []creative.Creative `json:"creatives,omitempty"`
}

// DashboardData is the full campaign state snapshot.
type DashboardData struct {
	Brand     *creative.Brand                `json:"brand"`
	Brief     *creative.Brief                `json:"brief"`
	Creatives []creative.Creative            `json:"creatives"`
	Localized map[string][]creative.Creative `json:"localized"`
	Bandit    []ArmStats                     `json:"bandit"`
}

// Engine holds one campaign in memory: brand, brief, generated creatives,
// their per-region localizations, and the serving bandit.
type Engine struct {
	writer    copywriter.Provider
	archive   archive.Store
	bandit    *Bandit
	variants  int
	clickRate float64

	mu        sync.Mutex
	brand     *creative.Brand
	brief     *creative.Brief
	creatives []creative.Creative
	localized map[string][]creative.Creative
}

type Options struct {
	Writer    copywriter.Provider
	Archive   archive.Store
	Variants  int
	ClickRate float64
}

func New(opts Options) *Engine {
	variants := opts.Variants
	if variants <= 0 {
		variants = defaultVariantCount
	}
	clickRate := opts.ClickRate
	if clickRate <= 0 || clickRate > 1 {
		clickRate = defaultClickRate
	}

	return &Engine{
		writer:    opts.Writer,
		archive:   opts.Archive,
		bandit:    NewBandit(),
		variants:  variants,
		clickRate: clickRate,
		localized: make(map[string][]creative.Creative),
	}
}

// SetBrand replaces the campaign brand.
func (e *Engine) SetBrand(b creative.Brand) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.brand = &b
}

// SetBrief replaces the campaign brief.
func (e *Engine) SetBrief(b creative.Brief) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.brief = &b
}

// Generate runs one creative round: build a brief from the request, ask
// the copywriter for variants, and install the results as the campaign's
// base creatives. Earlier localizations are discarded because they derive
// from the replaced creatives.
func (e *Engine) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	brand := e.currentBrand()
	brief := buildBrief(req)

	slog.Info("Generating creatives...", "product", brief.Product, "variants", e.variants)
	variants, err := e.writer.GenerateVariants(ctx, brand, brief, e.variants)
	if err != nil {
		return nil, fmt.Errorf("generate variants: %w", err)
	}

	items := make([]creative.Creative, 0, len(variants))
	for _, v := range variants {
		items = append(items, creative.Creative{
			ID:          newCreativeID(),
			Region:      creative.BaseRegion,
			Headline:    creative.ClampHeadline(v.Headline),
			PrimaryText: creative.ClampPrimaryText(v.PrimaryText),
			ImageURL:    placeholderImageURL,
			Scores:      map[string]float64{"brand": brandScore()},
		})
	}

	resp := &GenerateResponse{
		AdCopy1:          adCopyAt(items, 0),
		AdCopy2:          adCopyAt(items, 1),
		CreativeBrief:    fmt.Sprintf("%s for %s — localized=%t", req.ProgramName, req.TargetAudience, req.Localize),
		PerformanceScore: performanceScore(),
		Creatives:        items,
	}

	e.mu.Lock()
	e.brand = &brand
	e.brief = &brief
	e.creatives = items
	e.localized = make(map[string][]creative.Creative)
	e.mu.Unlock()

	e.archiveRound(ctx, brand, brief, resp)
	return resp, nil
}

// Localize transcreates every base creative for every region in the
// brief and installs the result as the serving pool.
func (e *Engine) Localize(ctx context.Context) (map[string][]creative.Creative, error) {
	e.mu.Lock()
	items := append([]creative.Creative(nil), e.creatives...)
	var brand creative.Brand
	if e.brand != nil {
		brand = *e.brand
	}
	var brief creative.Brief
	if e.brief != nil {
		brief = *e.brief
	}
	e.mu.Unlock()

	if len(items) == 0 {
		return nil, ErrNoCreatives
	}

	slog.Info("Localizing creatives...", "regions", brief.Regions, "creatives", len(items))
	byRegion := make(map[string][]creative.Creative, len(brief.Regions))
	for _, region := range brief.Regions {
		byRegion[region] = []creative.Creative{}
	}

	for _, c := range items {
		base := copywriter.Variant{Headline: c.Headline, PrimaryText: c.PrimaryText}
		for _, region := range brief.Regions {
			loc, err := e.writer.Transcreate(ctx, brand, brief, base, region)
			if err != nil {
				return nil, fmt.Errorf("transcreate for %s: %w", region, err)
			}
			byRegion[region] = append(byRegion[region], creative.Creative{
				ID:          c.ID + "-" + region,
				Region:      region,
				Headline:    creative.ClampHeadline(loc.Headline),
				PrimaryText: creative.ClampPrimaryText(loc.PrimaryText),
				ImageURL:    c.ImageURL,
				Scores:      creative.CopyScores(c.Scores),
			})
		}
	}

	e.mu.Lock()
	e.localized = byRegion
	e.mu.Unlock()
	return byRegion, nil
}

// Serve picks one localized creative for the region via the bandit.
func (e *Engine) Serve(region string) (*creative.Creative, error) {
	loc := e.regionPool(region)
	if len(loc) == 0 {
		return nil, ErrNoLocalized
	}

	ids := make([]string, len(loc))
	for i, c := range loc {
		ids[i] = c.ID
	}
	chosen := e.bandit.Choose(region, ids)
	for i := range loc {
		if loc[i].ID == chosen {
			c := loc[i]
			return &c, nil
		}
	}
	return nil, ErrNoLocalized
}

// Feedback records one observed impression outcome for a served creative.
func (e *Engine) Feedback(region, creativeID string, clicked bool) {
	e.bandit.Update(region, creativeID, clicked)
}

// Simulate runs rounds of traffic against the region's pool, clicking
// with the configured probability, and returns the number of events.
func (e *Engine) Simulate(region string, rounds int) (int, error) {
	if rounds <= 0 {
		rounds = defaultSimulateRounds
	}

	loc := e.regionPool(region)
	if len(loc) == 0 {
		return 0, ErrNoLocalized
	}

	ids := make([]string, len(loc))
	for i, c := range loc {
		ids[i] = c.ID
	}
	for i := 0; i < rounds; i++ {
		id := e.bandit.Choose(region, ids)
		e.bandit.Update(region, id, rand.Float64() < e.clickRate)
	}
	return rounds, nil
}

// Dashboard snapshots the whole campaign state.
func (e *Engine) Dashboard() *DashboardData {
	e.mu.Lock()
	defer e.mu.Unlock()

	data := &DashboardData{
		Creatives: make([]creative.Creative, 0, len(e.creatives)),
		Localized: make(map[string][]creative.Creative, len(e.localized)),
	}
	if e.brand != nil {
		b := *e.brand
		data.Brand = &b
	}
	if e.brief != nil {
		b := *e.brief
		data.Brief = &b
	}
	data.Creatives = append(data.Creatives, e.creatives...)
	for region, items := range e.localized {
		data.Localized[region] = append([]creative.Creative(nil), items...)
	}
	data.Bandit = e.bandit.Snapshot()
	return data
}

func (e *Engine) currentBrand() creative.Brand {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.brand != nil {
		return *e.brand
	}
	return defaultBrand()
}

func (e *Engine) regionPool(region string) []creative.Creative {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]creative.Creative(nil), e.localized[region]...)
}

func (e *Engine) archiveRound(ctx context.Context, brand creative.Brand, brief creative.Brief, resp *GenerateResponse) {
	if e.archive == nil {
		return
	}

	name, err := e.archive.SaveRound(ctx, archive.Round{
		CreatedAt:        time.Now(),
		Brand:            brand,
		Brief:            brief,
		Creatives:        resp.Creatives,
		CreativeBrief:    resp.CreativeBrief,
		PerformanceScore: resp.PerformanceScore,
	})
	if err != nil {
		slog.Warn("Failed to archive round", "error", err)
		return
	}
	slog.Debug("Archived round", "name", name)
}

func defaultBrand() creative.Brand {
	return creative.Brand{
		Name:          "AdCraft Demo Brand",
		Palette:       []string{"#123456"},
		Tone:          []string{"playful"},
		BannedPhrases: []string{},
	}
}

func buildBrief(req GenerateRequest) creative.Brief {
	regions := []string{"IN"}
	if req.Localize {
		regions = []string{"IN", "US"}
	}
	return creative.Brief{
		Product:  req.ProgramName,
		Audience: req.TargetAudience,
		ValueProps: []string{
			fmt.Sprintf("%s helps %s upskill fast", req.ProgramName, req.TargetAudience),
			"Flexible schedule",
			"Industry mentors",
		},
		CTA:      "Apply now",
		Channels: []string{"Instagram"},
		Regions:  regions,
	}
}

func newCreativeID() string {
	id := uuid.New()
	return "C" + hex.EncodeToString(id[:])[:6]
}

func adCopyAt(items []creative.Creative, i int) string {
	if i >= len(items) {
		return "N/A"
	}
	return items[i].PrimaryText
}

func brandScore() float64 {
	return round2(0.6 + 0.4*rand.Float64())
}

func performanceScore() float64 {
	return round2(50 + 50*rand.Float64())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
