// Package analysis provides lightweight, deterministic diagnostics for
// sampled distributions. Everything is plain arithmetic over the samples,
// the histogram and the journal.
//
// Key capabilities:
//   - Sample moments (mean, spread, skewness, kurtosis)
//   - Moment checks against the generator's theoretical values
//   - Histogram fit against the density curve via linear regression
//   - Outlier runs across the journal via Z-score analysis
package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/fvall/claydash/internal/database"
	"github.com/fvall/claydash/internal/stats"
	"github.com/fvall/claydash/pkg/timeutil"
)

// Analyzer runs the diagnostics that need journal history.
type Analyzer struct {
	store database.Store
}

// NewAnalyzer creates a new analysis engine backed by the given store.
// A nil store disables the journal passes.
func NewAnalyzer(store database.Store) *Analyzer {
	return &Analyzer{store: store}
}

// ============================================================
// Sample Summary
// ============================================================

// Summary holds the sample moments of one run.
type Summary struct {
	Count          int     `json:"count"`
	Mean           float64 `json:"mean"`
	StdDev         float64 `json:"std_dev"`
	Skewness       float64 `json:"skewness"`
	ExcessKurtosis float64 `json:"excess_kurtosis"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
}

// Variance returns the population variance.
func (s Summary) Variance() float64 { return s.StdDev * s.StdDev }

// Summarize computes population moments in two passes over samples.
// Skewness and kurtosis are zero when the samples have no spread.
func Summarize(samples []float64) Summary {
	s := Summary{Count: len(samples)}
	if s.Count == 0 {
		return s
	}
	s.Min, s.Max = stats.MinMax(samples)

	var sum float64
	for _, x := range samples {
		sum += x
	}
	n := float64(s.Count)
	s.Mean = sum / n

	var m2, m3, m4 float64
	for _, x := range samples {
		d := x - s.Mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	m2 /= n
	m3 /= n
	m4 /= n

	s.StdDev = math.Sqrt(m2)
	if m2 > 0 {
		s.Skewness = m3 / math.Pow(m2, 1.5)
		s.ExcessKurtosis = m4/(m2*m2) - 3
	}
	return s
}

// ============================================================
// Moment Check
// ============================================================

// MomentCheck compares sample moments with the generator's.
type MomentCheck struct {
	ExpectedMean     float64 `json:"expected_mean"`
	ExpectedVariance float64 `json:"expected_variance"`
	MeanZScore       float64 `json:"mean_z_score"`
	VarianceRatio    float64 `json:"variance_ratio"`
	Severity         string  `json:"severity"` // "ok", "low", "medium", "high"
}

// CheckMoments computes the Z-score of the sample mean against the
// theoretical mean, using the standard error sqrt(variance / n).
//
// A Z-score > 2.0 is suspicious ("medium" severity).
// A Z-score > 3.0 almost certainly means a broken generator ("high").
func CheckMoments(s Summary, d stats.Distribution) MomentCheck {
	c := MomentCheck{
		ExpectedMean:     d.Mean(),
		ExpectedVariance: d.Variance(),
		Severity:         "ok",
	}
	if s.Count == 0 || c.ExpectedVariance <= 0 {
		return c
	}

	stderr := math.Sqrt(c.ExpectedVariance / float64(s.Count))
	z := math.Abs(s.Mean-c.ExpectedMean) / stderr
	c.MeanZScore = math.Round(z*100) / 100
	c.VarianceRatio = math.Round(s.Variance()/c.ExpectedVariance*1000) / 1000
	c.Severity = severity(z)
	return c
}

func severity(z float64) string {
	switch {
	case z > 3.0:
		return "high"
	case z > 2.0:
		return "medium"
	case z > 1.5:
		return "low"
	default:
		return "ok"
	}
}

// ============================================================
// Histogram Fit
// ============================================================

// HistogramFit is the regression of observed bin densities on the
// density curve evaluated at the bin centres. A good generator gives a
// slope near 1, an intercept near 0 and a high R².
type HistogramFit struct {
	Bins      int     `json:"bins"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
}

// dataPoint is one (expected, observed) pair for regression analysis.
type dataPoint struct {
	x float64
	y float64
}

// FitHistogram normalizes counts over [lo, hi] into densities and
// regresses them on the curve (xs, ys), linearly interpolated at each bin
// centre. Bin centres outside the curve's domain are skipped.
func FitHistogram(counts []uint32, lo, hi float64, xs, ys []float64) HistogramFit {
	fit := HistogramFit{Bins: len(counts)}
	if len(counts) == 0 || len(xs) < 2 || len(xs) != len(ys) || hi <= lo {
		return fit
	}

	var total float64
	for _, c := range counts {
		total += float64(c)
	}
	if total == 0 {
		return fit
	}

	width := (hi - lo) / float64(len(counts))
	points := make([]dataPoint, 0, len(counts))
	for i, c := range counts {
		centre := lo + (float64(i)+0.5)*width
		expected, ok := interpolate(xs, ys, centre)
		if !ok {
			continue
		}
		points = append(points, dataPoint{
			x: expected,
			y: float64(c) / (total * width),
		})
	}

	slope, intercept, rSquared := linearRegression(points)
	fit.Slope = math.Round(slope*1000) / 1000
	fit.Intercept = math.Round(intercept*1000) / 1000
	fit.RSquared = math.Round(rSquared*1000) / 1000
	return fit
}

// interpolate evaluates the piecewise-linear curve through (xs, ys) at x.
// xs must be ascending.
func interpolate(xs, ys []float64, x float64) (float64, bool) {
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, false
	}
	i := sort.SearchFloat64s(xs, x)
	if i == 0 {
		return ys[0], true
	}
	if i >= len(xs) {
		return ys[len(ys)-1], true
	}
	return stats.Lerp(x, xs[i-1], xs[i], ys[i-1], ys[i]), true
}

// linearRegression computes ordinary least squares regression.
// Returns slope (m), intercept (b), and R-squared goodness of fit.
func linearRegression(points []dataPoint) (slope, intercept, rSquared float64) {
	n := float64(len(points))
	if n < 2 {
		return 0, 0, 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range points {
		sumX += p.x
		sumY += p.y
		sumXY += p.x * p.y
		sumX2 += p.x * p.x
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, sumY / n, 0
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n

	// R-squared
	meanY := sumY / n
	var ssRes, ssTot float64
	for _, p := range points {
		predicted := slope*p.x + intercept
		ssRes += (p.y - predicted) * (p.y - predicted)
		ssTot += (p.y - meanY) * (p.y - meanY)
	}

	if ssTot == 0 {
		rSquared = 1.0
	} else {
		rSquared = 1 - ssRes/ssTot
	}

	return slope, intercept, rSquared
}

// ============================================================
// Outlier Runs
// ============================================================

// RunOutlier identifies a journaled run whose sample mean is far from
// the other runs of the same distribution.
type RunOutlier struct {
	RunID     int64   `json:"run_id"`
	Seed      uint64  `json:"seed"`
	Mean      float64 `json:"mean"`
	CreatedAt string  `json:"created_at"`
	ZScore    float64 `json:"z_score"`
	Severity  string  `json:"severity"` // "low", "medium", "high"
}

// DetectOutlierRuns calculates the Z-score of each run's mean across the
// most recent journaled runs of one distribution.
//
// This answers: "Did any seed produce a suspicious chart?"
func (a *Analyzer) DetectOutlierRuns(distribution string, limit int) ([]RunOutlier, error) {
	if a.store == nil {
		return nil, nil
	}
	runs, err := a.store.QueryRuns(database.RunFilter{Distribution: &distribution, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("querying runs for outlier analysis: %w", err)
	}

	if len(runs) < 2 {
		// Not enough data for meaningful Z-score analysis
		return nil, nil
	}

	var sum, sumSq float64
	for _, r := range runs {
		sum += r.Mean
		sumSq += r.Mean * r.Mean
	}

	n := float64(len(runs))
	mean := sum / n
	variance := (sumSq / n) - (mean * mean)
	stddev := math.Sqrt(max(variance, 0))

	if stddev == 0 {
		return nil, nil
	}

	var outliers []RunOutlier
	for _, r := range runs {
		zScore := math.Abs(r.Mean-mean) / stddev
		if zScore <= 1.5 {
			continue
		}
		outliers = append(outliers, RunOutlier{
			RunID:     r.RunID,
			Seed:      r.Seed,
			Mean:      r.Mean,
			CreatedAt: timeutil.FormatTimestampFull(r.CreatedAt),
			ZScore:    math.Round(zScore*100) / 100,
			Severity:  severity(zScore),
		})
	}

	// Sort by Z-score descending
	sort.Slice(outliers, func(i, j int) bool {
		return outliers[i].ZScore > outliers[j].ZScore
	})

	return outliers, nil
}

// ============================================================
// Full Analysis Report
// ============================================================

// Report is the complete output of `claydash stats`.
type Report struct {
	Distribution string                      `json:"distribution"`
	Seed         uint64                      `json:"seed"`
	Bins         int                         `json:"bins"`
	GeneratedAt  string                      `json:"generated_at"`
	Summary      Summary                     `json:"summary"`
	Moments      MomentCheck                 `json:"moments"`
	Fit          HistogramFit                `json:"fit"`
	History      *database.DistributionStats `json:"history,omitempty"`
	Outliers     []RunOutlier                `json:"outliers,omitempty"`
	Warnings     []string                    `json:"warnings"`
}

// Analyze runs the pure passes over one run. d must be the generator the
// samples were drawn from; only its density and moments are read.
func Analyze(d stats.Distribution, samples []float64, bins int) *Report {
	report := &Report{
		Distribution: d.Kind().String(),
		Seed:         d.Seed(),
		Bins:         bins,
		GeneratedAt:  time.Now().Format(time.RFC3339),
		Summary:      Summarize(samples),
	}
	report.Moments = CheckMoments(report.Summary, d)

	counts := stats.Cut(nil, samples, bins)
	xs, ys := d.Density(nil, nil)
	report.Fit = FitHistogram(counts, report.Summary.Min, report.Summary.Max, xs, ys)

	if report.Moments.Severity == "high" {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("⚠ MEAN MISMATCH: sample mean %.4f vs expected %.4f (Z-score: %.2f).",
				report.Summary.Mean, report.Moments.ExpectedMean, report.Moments.MeanZScore))
	}
	if report.Fit.RSquared > 0 && report.Fit.RSquared < 0.9 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("⚠ POOR HISTOGRAM FIT: R²=%.3f against the density curve.", report.Fit.RSquared))
	}
	return report
}

// FullAnalysis runs Analyze and, when a journal is attached, the history
// passes for the same distribution.
func (a *Analyzer) FullAnalysis(d stats.Distribution, samples []float64, bins int) (*Report, error) {
	report := Analyze(d, samples, bins)
	if a.store == nil {
		return report, nil
	}

	history, err := a.store.GetDistributionStats(report.Distribution)
	if err != nil {
		return nil, fmt.Errorf("gathering distribution stats: %w", err)
	}
	report.History = history

	outliers, err := a.DetectOutlierRuns(report.Distribution, 100)
	if err != nil {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("Outlier analysis failed: %v", err))
	} else {
		report.Outliers = outliers
	}

	for _, o := range outliers {
		if o.Severity == "high" {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("⚠ OUTLIER RUN: run %d (seed %d) has mean %.4f (Z-score: %.2f).",
					o.RunID, o.Seed, o.Mean, o.ZScore))
		}
	}

	return report, nil
}

// FormatReport generates a human-readable markdown report.
func FormatReport(report *Report) string {
	var b strings.Builder

	b.WriteString("# Claydash Distribution Report\n\n")
	b.WriteString(fmt.Sprintf("**Distribution:** `%s`\n", report.Distribution))
	b.WriteString(fmt.Sprintf("**Seed:** `%d`\n", report.Seed))
	b.WriteString(fmt.Sprintf("**Generated:** %s\n\n", report.GeneratedAt))

	s := report.Summary
	b.WriteString("## Sample Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Samples | %d |\n", s.Count))
	b.WriteString(fmt.Sprintf("| Mean | %.4f |\n", s.Mean))
	b.WriteString(fmt.Sprintf("| Std Dev | %.4f |\n", s.StdDev))
	b.WriteString(fmt.Sprintf("| Skewness | %.4f |\n", s.Skewness))
	b.WriteString(fmt.Sprintf("| Excess Kurtosis | %.4f |\n", s.ExcessKurtosis))
	b.WriteString(fmt.Sprintf("| Range | [%.4f, %.4f] |\n\n", s.Min, s.Max))

	m := report.Moments
	b.WriteString("## Moment Check\n\n")
	b.WriteString(fmt.Sprintf("- **Expected Mean:** %.4f\n", m.ExpectedMean))
	b.WriteString(fmt.Sprintf("- **Expected Variance:** %.4f\n", m.ExpectedVariance))
	b.WriteString(fmt.Sprintf("- **Mean Z-Score:** %.2f (%s)\n", m.MeanZScore, m.Severity))
	b.WriteString(fmt.Sprintf("- **Variance Ratio:** %.3f\n\n", m.VarianceRatio))

	f := report.Fit
	b.WriteString("## Histogram Fit\n\n")
	b.WriteString(fmt.Sprintf("- **Bins:** %d\n", f.Bins))
	b.WriteString(fmt.Sprintf("- **Slope:** %.3f\n", f.Slope))
	b.WriteString(fmt.Sprintf("- **Intercept:** %.3f\n", f.Intercept))
	b.WriteString(fmt.Sprintf("- **R² Fit:** %.3f\n\n", f.RSquared))

	if h := report.History; h != nil && h.Runs > 0 {
		b.WriteString("## Journal History\n\n")
		b.WriteString("| Metric | Value |\n")
		b.WriteString("|--------|-------|\n")
		b.WriteString(fmt.Sprintf("| Runs | %d |\n", h.Runs))
		b.WriteString(fmt.Sprintf("| Total Samples | %d |\n", h.TotalSamples))
		b.WriteString(fmt.Sprintf("| Mean of Means | %.4f |\n", h.AvgMean))
		b.WriteString(fmt.Sprintf("| Mean Range | [%.4f, %.4f] |\n", h.MinMean, h.MaxMean))
		b.WriteString(fmt.Sprintf("| First Run | %s |\n", timeutil.FormatTimestampFull(h.FirstRun)))
		b.WriteString(fmt.Sprintf("| Last Run | %s |\n\n", timeutil.RelativeTime(h.LastRun)))
	}

	if len(report.Outliers) > 0 {
		b.WriteString("## Outlier Runs\n\n")
		b.WriteString("| Run | Seed | Mean | Z-Score | Severity |\n")
		b.WriteString("|-----|------|------|---------|----------|\n")
		for _, o := range report.Outliers {
			b.WriteString(fmt.Sprintf("| %d | %d | %.4f | %.2f | %s |\n",
				o.RunID, o.Seed, o.Mean, o.ZScore, o.Severity))
		}
		b.WriteString("\n")
	}

	// Warnings
	if len(report.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range report.Warnings {
			b.WriteString(fmt.Sprintf("- %s\n", w))
		}
	}

	return b.String()
}
