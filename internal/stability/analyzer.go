// Package stability scores career stability from the employment
// timeline: tenure lengths, gaps, job hopping, and seniority
// regressions, adjusted for context such as layoffs, contract work,
// and startup stage.
package stability

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/career-analyzer/internal/knowledge"
	"github.com/jonathan/career-analyzer/internal/types"
)

// Penalty values subtracted from the 100-point baseline.
const (
	penaltyVeryShortTenure  = 20.0
	penaltyShortTenure      = 10.0
	penaltyJobHopper        = 15.0
	penaltyFrequentMoves    = 5.0
	penaltyEmploymentGap    = 10.0
	penaltyConsecutiveShort = 15.0
	penaltyRegression       = 20.0
)

// Tenure thresholds in months.
const (
	veryShortTenureMonths = 12
	shortTenureMonths     = 18
	longTenureMonths      = 36
	stableTenureMonths    = 24
)

// minGapMonths is the smallest between-jobs span recorded as a gap.
const minGapMonths = 6

// Pandemic-era gap years. Gaps starting in these years are recorded
// but never penalized.
const (
	pandemicStart = 2020
	pandemicEnd   = 2021
)

// Job-hopper threshold: distinct employers within the last five years.
// Contract workers change employers often, so any PJ or freelance
// history relaxes the threshold by one.
const (
	hopperWindowYears    = 5
	hopperThreshold      = 4
	hopperThresholdPJ    = 5
	frequentMovesMinimum = 3
)

const emptyTimelineScore = 50.0

// Analyzer scores career stability. Safe for concurrent use.
type Analyzer struct {
	logger  *zap.Logger
	nowYear func() int
}

// NewAnalyzer returns an Analyzer. A nil logger disables logging.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		logger:  logger,
		nowYear: func() int { return time.Now().Year() },
	}
}

// Analyze builds the annotated timeline and scores it. A résumé with
// no experience entries scores a neutral 50.
func (a *Analyzer) Analyze(resume *types.Resume) *types.StabilityResult {
	if len(resume.Experiences) == 0 {
		return &types.StabilityResult{
			Score:         emptyTimelineScore,
			Timeline:      []types.TimelineEntry{},
			Gaps:          []types.Gap{},
			Flags:         []types.StabilityFlag{},
			Indicators:    []string{"No work experience to analyze"},
			PositiveNotes: []string{},
		}
	}

	timeline := a.buildTimeline(resume.Experiences)
	gaps := a.findGaps(timeline)
	avgTenure := averageTenure(timeline)

	result := &types.StabilityResult{
		Score:               100,
		Timeline:            timeline,
		Gaps:                gaps,
		Flags:               []types.StabilityFlag{},
		AverageTenureMonths: avgTenure,
		Indicators:          []string{},
		PositiveNotes:       []string{},
	}

	a.applyTenurePenalties(result)
	a.applyHopperPenalty(result)
	a.applyGapPenalties(result)
	a.applyRegressionPenalty(result)
	a.addPositiveNotes(result)

	result.Score = clamp(result.Score, 0, 100)

	a.logger.Debug("stability analyzed",
		zap.Float64("score", result.Score),
		zap.Int("entries", len(timeline)),
		zap.Int("gaps", len(gaps)))

	return result
}

// buildTimeline back-fills missing years from durations, annotates each
// entry with contract, stage, and layoff context, and orders the result
// most recent first.
func (a *Analyzer) buildTimeline(experiences []types.Experience) []types.TimelineEntry {
	currentYear := a.nowYear()

	timeline := make([]types.TimelineEntry, 0, len(experiences))
	for _, exp := range experiences {
		entry := types.TimelineEntry{
			Title:          exp.Title,
			Company:        exp.Company,
			DurationMonths: exp.DurationMonths,
			ContractType:   knowledge.DetectContractType(exp.Title, exp.Company),
			StartupStage:   knowledge.DetectStartupStage(exp.Title, exp.Company),
		}

		durationYears := exp.DurationMonths / 12
		switch {
		case exp.StartYear != nil && exp.EndYear != nil:
			entry.StartYear = *exp.StartYear
			entry.EndYear = *exp.EndYear
		case exp.StartYear != nil:
			entry.StartYear = *exp.StartYear
			entry.EndYear = entry.StartYear + durationYears
		case exp.EndYear != nil:
			entry.EndYear = *exp.EndYear
			entry.StartYear = entry.EndYear - durationYears
		default:
			entry.EndYear = currentYear
			entry.StartYear = currentYear - durationYears
		}
		if entry.EndYear > currentYear {
			entry.EndYear = currentYear
		}
		if entry.DurationMonths == 0 && entry.EndYear >= entry.StartYear {
			entry.DurationMonths = (entry.EndYear - entry.StartYear) * 12
		}

		entry.IsLayoffPeriod = knowledge.IsLayoffCompany(entry.Company) &&
			knowledge.InLayoffWindow(entry.EndYear)

		timeline = append(timeline, entry)
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].StartYear > timeline[j].StartYear
	})
	return timeline
}

// findGaps walks the timeline oldest to newest and records spans of six
// months or more between jobs. Gaps starting in the pandemic years are
// marked and excluded from penalties.
func (a *Analyzer) findGaps(timeline []types.TimelineEntry) []types.Gap {
	gaps := []types.Gap{}

	for i := len(timeline) - 1; i > 0; i-- {
		older := timeline[i]
		newer := timeline[i-1]

		gapMonths := (newer.StartYear - older.EndYear) * 12
		if gapMonths < minGapMonths {
			continue
		}

		gap := types.Gap{
			StartYear:      older.EndYear,
			EndYear:        newer.StartYear,
			DurationMonths: gapMonths,
			IsPandemicEra:  older.EndYear >= pandemicStart && older.EndYear <= pandemicEnd,
		}
		if gap.IsPandemicEra {
			gap.Description = fmt.Sprintf(
				"Employment gap of %d months between %d and %d (COVID period)",
				gapMonths, gap.StartYear, gap.EndYear)
		} else {
			gap.Description = fmt.Sprintf(
				"Employment gap of %d months between %d and %d",
				gapMonths, gap.StartYear, gap.EndYear)
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

func averageTenure(timeline []types.TimelineEntry) float64 {
	if len(timeline) == 0 {
		return 0
	}
	total := 0
	for _, entry := range timeline {
		total += entry.DurationMonths
	}
	return float64(total) / float64(len(timeline))
}

// applyTenurePenalties penalizes short average tenure, scaled down by
// the context reduction factor so layoffs, contract work, and
// early-stage startups are not punished as instability.
func (a *Analyzer) applyTenurePenalties(result *types.StabilityResult) {
	avg := result.AverageTenureMonths
	factor := reductionFactor(result.Timeline)

	switch {
	case avg < veryShortTenureMonths:
		penalty := penaltyVeryShortTenure * factor
		if penalty > 0 {
			result.Score -= penalty
			result.Flags = append(result.Flags, types.FlagShortTenure)
			result.Indicators = append(result.Indicators, fmt.Sprintf(
				"Very short average tenure of %.0f months (below %d months)",
				avg, veryShortTenureMonths))
		} else {
			result.Indicators = append(result.Indicators,
				"Short tenures explained by layoffs or contract work")
		}
	case avg < shortTenureMonths:
		result.Score -= penaltyShortTenure * factor
	}

	if consecutiveShortJobs(result.Timeline) >= 2 {
		penalty := penaltyConsecutiveShort * factor
		if penalty > 0 {
			result.Score -= penalty
			result.Flags = append(result.Flags, types.FlagConsecutiveShort)
			result.Indicators = append(result.Indicators,
				"Multiple consecutive jobs under 12 months")
		}
	}
}

// reductionFactor averages the per-entry penalty multiplier over the
// short-tenure entries, falling back to the whole timeline. A layoff
// zeroes the entry's multiplier, contract work halves it, and startup
// stage scales it.
func reductionFactor(timeline []types.TimelineEntry) float64 {
	entries := shortEntries(timeline)
	if len(entries) == 0 {
		entries = timeline
	}
	if len(entries) == 0 {
		return 1.0
	}

	sum := 0.0
	for _, entry := range entries {
		sum += entryFactor(entry)
	}
	return sum / float64(len(entries))
}

func entryFactor(entry types.TimelineEntry) float64 {
	if entry.IsLayoffPeriod {
		return 0.0
	}
	if entry.ContractType == types.ContractPJ || entry.ContractType == types.ContractFreelancer {
		return 0.5
	}
	return knowledge.StageReductionFactor(entry.StartupStage)
}

func shortEntries(timeline []types.TimelineEntry) []types.TimelineEntry {
	var short []types.TimelineEntry
	for _, entry := range timeline {
		if entry.DurationMonths < veryShortTenureMonths {
			short = append(short, entry)
		}
	}
	return short
}

func consecutiveShortJobs(timeline []types.TimelineEntry) int {
	longest, run := 0, 0
	for _, entry := range timeline {
		if entry.DurationMonths < veryShortTenureMonths {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return longest
}

// applyHopperPenalty counts employers active within the last five
// years. Any PJ or freelance history relaxes the threshold by one.
func (a *Analyzer) applyHopperPenalty(result *types.StabilityResult) {
	windowStart := a.nowYear() - hopperWindowYears

	companies := make(map[string]bool)
	hasContractWork := false
	for _, entry := range result.Timeline {
		if entry.ContractType == types.ContractPJ || entry.ContractType == types.ContractFreelancer {
			hasContractWork = true
		}
		if entry.EndYear >= windowStart {
			companies[entry.Company] = true
		}
	}

	threshold := hopperThreshold
	if hasContractWork {
		threshold = hopperThresholdPJ
	}

	count := len(companies)
	switch {
	case count > threshold:
		result.Score -= penaltyJobHopper
		result.Flags = append(result.Flags, types.FlagJobHopper)
		result.Indicators = append(result.Indicators, fmt.Sprintf(
			"%d companies in the last %d years", count, hopperWindowYears))
	case count > frequentMovesMinimum:
		result.Score -= penaltyFrequentMoves
	}
}

func (a *Analyzer) applyGapPenalties(result *types.StabilityResult) {
	flagged := false
	for _, gap := range result.Gaps {
		result.Indicators = append(result.Indicators, gap.Description)
		if gap.IsPandemicEra {
			continue
		}
		result.Score -= penaltyEmploymentGap
		if !flagged {
			result.Flags = append(result.Flags, types.FlagEmploymentGap)
			flagged = true
		}
	}
}

// applyRegressionPenalty flags moves to a lower seniority rung between
// adjacent positions, oldest to newest.
func (a *Analyzer) applyRegressionPenalty(result *types.StabilityResult) {
	timeline := result.Timeline
	for i := len(timeline) - 1; i > 0; i-- {
		older := knowledge.TitleLevel(timeline[i].Title)
		newer := knowledge.TitleLevel(timeline[i-1].Title)
		if newer < older {
			result.Score -= penaltyRegression
			result.Flags = append(result.Flags, types.FlagSeniorityRegression)
			result.Indicators = append(result.Indicators,
				"Career regression detected - moved to lower seniority role")
			return
		}
	}
}

func (a *Analyzer) addPositiveNotes(result *types.StabilityResult) {
	timeline := result.Timeline
	if len(timeline) == 0 {
		return
	}

	if timeline[0].DurationMonths >= longTenureMonths {
		result.PositiveNotes = append(result.PositiveNotes, fmt.Sprintf(
			"Long tenure at %s demonstrates commitment", timeline[0].Company))
	}
	if result.AverageTenureMonths >= stableTenureMonths {
		result.PositiveNotes = append(result.PositiveNotes, fmt.Sprintf(
			"Stable average tenure of %.0f months", result.AverageTenureMonths))
	}

	oldest := knowledge.TitleLevel(timeline[len(timeline)-1].Title)
	newest := knowledge.TitleLevel(timeline[0].Title)
	if newest > oldest {
		result.PositiveNotes = append(result.PositiveNotes,
			"Clear career progression from junior to senior levels")
	}

	if domain, ok := singleDomain(timeline); ok && len(timeline) > 1 {
		result.PositiveNotes = append(result.PositiveNotes, fmt.Sprintf(
			"Consistent career focus in %s", domain))
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
