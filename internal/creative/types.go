package creative

// BaseRegion marks a creative that has not been localized yet.
const BaseRegion = "base"

// Copy length caps enforced at creative construction time.
const (
	MaxHeadlineLen    = 40
	MaxPrimaryTextLen = 120
)

// Brand is the advertiser identity creatives are generated for.
type Brand struct {
	Name          string   `json:"name" yaml:"name"`
	Palette       []string `json:"palette" yaml:"palette"`
	Tone          []string `json:"tone" yaml:"tone"`
	BannedPhrases []string `json:"banned_phrases" yaml:"banned_phrases"`
	LogoURL       string   `json:"logo_url" yaml:"logo_url"`
}

// Brief describes one campaign: what is advertised, to whom, and where.
type Brief struct {
	Product    string   `json:"product" yaml:"product"`
	Audience   string   `json:"audience" yaml:"audience"`
	ValueProps []string `json:"value_props" yaml:"value_props"`
	CTA        string   `json:"cta" yaml:"cta"`
	Channels   []string `json:"channels" yaml:"channels"`
	Regions    []string `json:"regions" yaml:"regions"`
}

// Creative is a single ad variant, either base or localized to a region.
type Creative struct {
	ID          string             `json:"id"`
	Region      string             `json:"region"`
	Headline    string             `json:"headline"`
	PrimaryText string             `json:"primary_text"`
	ImageURL    string             `json:"image_url"`
	Scores      map[string]float64 `json:"scores"`
}

// Feedback records one serving outcome for a localized creative.
// Clicked is 0 or 1.
type Feedback struct {
	CreativeID string `json:"creative_id"`
	Region     string `json:"region"`
	Clicked    int    `json:"clicked"`
}

// ClampHeadline truncates s to the headline cap, rune-safe.
func ClampHeadline(s string) string {
	return clamp(s, MaxHeadlineLen)
}

// ClampPrimaryText truncates s to the primary text cap, rune-safe.
func ClampPrimaryText(s string) string {
	return clamp(s, MaxPrimaryTextLen)
}

func clamp(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// CopyScores returns a shallow copy so localized creatives do not share
// score maps with their base creative.
func CopyScores(scores map[string]float64) map[string]float64 {
	if scores == nil {
		return nil
	}
	out := make(map[string]float64, len(scores))
	for k, v := range scores {
		out[k] = v
	}
	return out
}
