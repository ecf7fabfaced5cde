package history

import (
	"math"
	"time"

	"auction-insights/internal/config"
	model "auction-insights/internal/models"
)

// trendThresholdPct is the ±% band for the report's overall trend.
// Wider than the ±5% used by ComputeStats on purpose; see the note
// there.
const trendThresholdPct = 10.0

// minSnipeBids is the absolute floor on bids in the closing window
// before sniping is flagged
const minSnipeBids = 2

// snipeShareOfTotal is the fraction of all bids that must land in the
// closing window for sniping
const snipeShareOfTotal = 0.3

// TrendAnalyzer classifies trend, volatility and intensity for one
// auction's bid history. Volatility thresholds are in the currency's
// stored unit and come from configuration.
type TrendAnalyzer struct {
	sampleSize         int
	volatilityMedium   float64
	volatilityHigh     float64
	intensityHighGap   time.Duration
	intensityMediumGap time.Duration
	bidWarGap          time.Duration
	snipeWindow        float64
}

// NewTrendAnalyzer creates an analyzer from the configured thresholds
func NewTrendAnalyzer(cfg *config.Config) *TrendAnalyzer {
	return &TrendAnalyzer{
		sampleSize:         cfg.Analytics.TrendSampleSize,
		volatilityMedium:   cfg.Analytics.VolatilityMedium,
		volatilityHigh:     cfg.Analytics.VolatilityHigh,
		intensityHighGap:   cfg.Analytics.IntensityHighGap,
		intensityMediumGap: cfg.Analytics.IntensityMediumGap,
		bidWarGap:          cfg.Analytics.BidWarGap,
		snipeWindow:        cfg.Analytics.SnipeWindowFraction,
	}
}

// flatReport is returned when there are too few bids to classify
func flatReport() model.TrendReport {
	return model.TrendReport{
		OverallTrend:     model.TrendStable,
		Volatility:       model.LevelLow,
		BiddingIntensity: model.LevelLow,
	}
}

// Analyze builds a trend report over a time-ordered enriched bid
// sequence. Input beyond the configured sample size is truncated to
// the most recent bids to keep the work bounded.
func (a *TrendAnalyzer) Analyze(bids []model.EnrichedBid) model.TrendReport {
	if len(bids) > a.sampleSize {
		bids = bids[len(bids)-a.sampleSize:]
	}
	if len(bids) < 2 {
		return flatReport()
	}

	report := flatReport()
	n := len(bids)
	first, last := bids[0], bids[n-1]

	if !first.Amount.IsZero() {
		pct := last.Amount.Sub(first.Amount).Div(first.Amount).Mul(oneHundred).InexactFloat64()
		switch {
		case pct > trendThresholdPct:
			report.OverallTrend = model.TrendUp
		case pct < -trendThresholdPct:
			report.OverallTrend = model.TrendDown
		}
	}

	report.Volatility = a.classifyVolatility(bids)
	report.BiddingIntensity = a.classifyIntensity(bids)

	span := last.CreatedAt.Sub(first.CreatedAt)
	for i := 1; i < n; i++ {
		if bids[i].CreatedAt.Sub(bids[i-1].CreatedAt) < a.bidWarGap {
			report.HasBidWars = true
			break
		}
	}

	earlyCutoff := first.CreatedAt.Add(time.Duration(float64(span) * a.snipeWindow))
	lateCutoff := last.CreatedAt.Add(-time.Duration(float64(span) * a.snipeWindow))

	lateCount := 0
	for _, b := range bids {
		if !b.CreatedAt.After(earlyCutoff) {
			report.HasEarlyBidding = true
		}
		if !b.CreatedAt.Before(lateCutoff) {
			report.HasLateBidding = true
			lateCount++
		}
	}
	report.HasSniping = lateCount > minSnipeBids && float64(lateCount) > snipeShareOfTotal*float64(n)

	return report
}

// classifyVolatility buckets the standard deviation of consecutive
// price deltas
func (a *TrendAnalyzer) classifyVolatility(bids []model.EnrichedBid) model.Level {
	deltas := make([]float64, 0, len(bids)-1)
	for i := 1; i < len(bids); i++ {
		deltas = append(deltas, bids[i].Amount.Sub(bids[i-1].Amount).InexactFloat64())
	}

	mean := 0.0
	for _, d := range deltas {
		mean += d
	}
	mean /= float64(len(deltas))

	variance := 0.0
	for _, d := range deltas {
		variance += (d - mean) * (d - mean)
	}
	stddev := math.Sqrt(variance / float64(len(deltas)))

	switch {
	case stddev > a.volatilityHigh:
		return model.LevelHigh
	case stddev >= a.volatilityMedium:
		return model.LevelMedium
	default:
		return model.LevelLow
	}
}

// classifyIntensity buckets the mean inter-bid interval
func (a *TrendAnalyzer) classifyIntensity(bids []model.EnrichedBid) model.Level {
	n := len(bids)
	meanGap := bids[n-1].CreatedAt.Sub(bids[0].CreatedAt) / time.Duration(n-1)

	switch {
	case meanGap < a.intensityHighGap:
		return model.LevelHigh
	case meanGap < a.intensityMediumGap:
		return model.LevelMedium
	default:
		return model.LevelLow
	}
}
