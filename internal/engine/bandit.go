package engine

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// banditKey identifies one arm: a creative serving in a region.
type banditKey struct {
	region     string
	creativeID string
}

type banditArm struct {
	alpha       float64
	beta        float64
	impressions int
	clicks      int
}

// Bandit allocates traffic across creatives per region with Thompson
// sampling. Each arm keeps a Beta(alpha, beta) posterior over its
// click-through rate.
type Bandit struct {
	mu   sync.Mutex
	arms map[banditKey]*banditArm
	rng  *rand.Rand
}

func NewBandit() *Bandit {
	return newBandit(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newBandit(rng *rand.Rand) *Bandit {
	return &Bandit{
		arms: make(map[banditKey]*banditArm),
		rng:  rng,
	}
}

// ensure returns the arm for key, creating it with a uniform Beta(1, 1)
// prior on first sight. Caller must hold the lock.
func (b *Bandit) ensure(key banditKey) *banditArm {
	arm, ok := b.arms[key]
	if !ok {
		arm = &banditArm{alpha: 1, beta: 1}
		b.arms[key] = arm
	}
	return arm
}

// Choose samples each candidate's posterior and returns the id with the
// highest draw. Returns "" when there are no candidates.
func (b *Bandit) Choose(region string, creativeIDs []string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	best := ""
	bestTheta := -1.0
	for _, id := range creativeIDs {
		arm := b.ensure(banditKey{region: region, creativeID: id})
		theta := b.sampleBeta(arm.alpha, arm.beta)
		if theta > bestTheta {
			bestTheta = theta
			best = id
		}
	}
	return best
}

// Update records one impression and shifts the arm's posterior toward the
// observed outcome.
func (b *Bandit) Update(region, creativeID string, clicked bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	arm := b.ensure(banditKey{region: region, creativeID: creativeID})
	arm.impressions++
	if clicked {
		arm.clicks++
		arm.alpha++
	} else {
		arm.beta++
	}
}

// ArmStats is one row of bandit state as exposed on the dashboard.
type ArmStats struct {
	Region      string  `json:"region"`
	CreativeID  string  `json:"creative_id"`
	Alpha       float64 `json:"alpha"`
	Beta        float64 `json:"beta"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	CTR         float64 `json:"ctr"`
}

// Snapshot returns all arms ordered by region, then creative id.
func (b *Bandit) Snapshot() []ArmStats {
	b.mu.Lock()
	defer b.mu.Unlock()

	rows := make([]ArmStats, 0, len(b.arms))
	for key, arm := range b.arms {
		var ctr float64
		if arm.impressions > 0 {
			ctr = float64(arm.clicks) / float64(arm.impressions)
		}
		rows = append(rows, ArmStats{
			Region:      key.region,
			CreativeID:  key.creativeID,
			Alpha:       arm.alpha,
			Beta:        arm.beta,
			Impressions: arm.impressions,
			Clicks:      arm.clicks,
			CTR:         math.Round(ctr*10000) / 10000,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Region != rows[j].Region {
			return rows[i].Region < rows[j].Region
		}
		return rows[i].CreativeID < rows[j].CreativeID
	})
	return rows
}

// sampleBeta draws theta ~ Beta(alpha, beta) as a ratio of gamma draws.
func (b *Bandit) sampleBeta(alpha, beta float64) float64 {
	x := b.sampleGamma(alpha)
	y := b.sampleGamma(beta)
	if x+y == 0 {
		return 0
	}
	return x / (x + y)
}

// sampleGamma draws from Gamma(shape, 1) using the Marsaglia-Tsang method.
func (b *Bandit) sampleGamma(shape float64) float64 {
	if shape < 1 {
		// Boost the shape above 1 and correct with a uniform power.
		return b.sampleGamma(shape+1) * math.Pow(b.rng.Float64(), 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		x := b.rng.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := b.rng.Float64()
		if u < 1.0-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v
		}
	}
}
