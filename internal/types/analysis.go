package types

import "time"

// RoleType identifies the job vertical used to select ATS scoring weights.
type RoleType string

// Supported role types. Unrecognized postings default to RoleTypeTechnical.
const (
	RoleTypeTechnical RoleType = "technical"
	RoleTypeDesign    RoleType = "design"
	RoleTypeData      RoleType = "data"
	RoleTypeProduct   RoleType = "product"
)

// AxisScore is one scored component of an ATSResult. TotalScore is always
// the exact sum of the component scores.
type AxisScore struct {
	Axis  string  `json:"axis"`
	Score float64 `json:"score"`
	Max   float64 `json:"max"`
}

// ATSResult is the applicant-tracking compatibility score for one
// resume/job pair.
type ATSResult struct {
	JobID           string      `json:"job_id"`
	RoleType        RoleType    `json:"role_type"`
	TotalScore      float64     `json:"total_score"`
	Components      []AxisScore `json:"components"`
	MatchedKeywords []string    `json:"matched_keywords"`
	MissingKeywords []string    `json:"missing_keywords"`
	FormatIssues    []string    `json:"format_issues"`
	Suggestions     []string    `json:"suggestions"`
}

// MatchLevel buckets a match percentage into a coarse grade.
type MatchLevel string

// Match level buckets at 80/60/40.
const (
	MatchLevelExcellent MatchLevel = "excellent"
	MatchLevelGood      MatchLevel = "good"
	MatchLevelFair      MatchLevel = "fair"
	MatchLevelPoor      MatchLevel = "poor"
)

// SkillGap describes one job skill the resume lacks, with canned
// learning resources selected by skill category.
type SkillGap struct {
	Skill             string   `json:"skill"`
	IsRequired        bool     `json:"is_required"`
	Suggestion        string   `json:"suggestion"`
	LearningResources []string `json:"learning_resources"`
}

// RequirementMatch grades one individual job requirement at 0, 70, or 100
// percent (absent, one-hop related, direct).
type RequirementMatch struct {
	Requirement         string  `json:"requirement"`
	CandidateExperience string  `json:"candidate_experience"`
	MatchPercentage     float64 `json:"match_percentage"`
	Logic               string  `json:"logic"`
}

// JobMatch is the fit record for one (resume, job) pair within a ranked batch.
type JobMatch struct {
	JobID              string             `json:"job_id"`
	JobTitle           string             `json:"job_title"`
	MatchPercentage    float64            `json:"match_percentage"`
	MatchLevel         MatchLevel         `json:"match_level"`
	IsBestFit          bool               `json:"is_best_fit"`
	MatchedSkills      []string           `json:"matched_skills"`
	MissingSkills      []string           `json:"missing_skills"`
	SkillGaps          []SkillGap         `json:"skill_gaps"`
	Strengths          []string           `json:"strengths"`
	Concerns           []string           `json:"concerns"`
	RequirementMatrix  []RequirementMatch `json:"requirement_matrix"`
	TransferableSkills []string           `json:"transferable_skills"`
}

// SeniorityLevel is the three-tier candidate classification.
type SeniorityLevel string

// Seniority tiers.
const (
	SeniorityJunior SeniorityLevel = "junior"
	SeniorityMid    SeniorityLevel = "mid"
	SenioritySenior SeniorityLevel = "senior"
)

// AxisSignal is one of the six weighted seniority signals, scored 0-1.
type AxisSignal struct {
	Axis     string   `json:"axis"`
	Score    float64  `json:"score"`
	Weight   float64  `json:"weight"`
	Evidence []string `json:"evidence"`
}

// AxisComparison compares one candidate axis against the level the job
// is expected to demand.
type AxisComparison struct {
	Axis             string  `json:"axis"`
	CandidateLevel   float64 `json:"candidate_level"`
	JobExpectedLevel float64 `json:"job_expected_level"`
	Meets            bool    `json:"meets"`
}

// JobFit is the optional comparison of a seniority result against a job's
// inferred expected level.
type JobFit struct {
	ExpectedLevel  SeniorityLevel   `json:"expected_level"`
	Verdict        string           `json:"verdict"`
	SeniorityMatch string           `json:"seniority_match"`
	AxisComparison []AxisComparison `json:"axis_comparison"`
	Gaps           []string         `json:"gaps"`
}

// SeniorityResult classifies the candidate's level from six signal axes.
type SeniorityResult struct {
	Level      SeniorityLevel `json:"level"`
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Signals    []AxisSignal   `json:"signals"`
	Indicators []string       `json:"indicators"`
	JobFit     *JobFit        `json:"job_fit,omitempty"`
}

// ContractType classifies an employment entry's engagement model.
type ContractType string

// Contract types recognized from bilingual title/company keywords.
const (
	ContractPJ         ContractType = "pj"
	ContractCLT        ContractType = "clt"
	ContractFreelancer ContractType = "freelancer"
	ContractUnknown    ContractType = "unknown"
)

// StartupStage classifies an employer's funding stage when detectable.
type StartupStage string

// Startup stages recognized from company/description keywords.
const (
	StageEarly    StartupStage = "early_stage"
	StageSeriesA  StartupStage = "series_a"
	StageSeriesB  StartupStage = "series_b"
	StageLate     StartupStage = "late_stage"
	StageUnknown  StartupStage = "unknown"
)

// StabilityFlag names a negative pattern detected in the employment timeline.
type StabilityFlag string

// Stability flags.
const (
	FlagJobHopper           StabilityFlag = "job_hopper"
	FlagShortTenure         StabilityFlag = "short_tenure"
	FlagEmploymentGap       StabilityFlag = "employment_gap"
	FlagConsecutiveShort    StabilityFlag = "consecutive_short_jobs"
	FlagSeniorityRegression StabilityFlag = "seniority_regression"
)

// TimelineEntry is one annotated employment entry, most recent first.
type TimelineEntry struct {
	Title          string       `json:"title"`
	Company        string       `json:"company"`
	StartYear      int          `json:"start_year"`
	EndYear        int          `json:"end_year"`
	DurationMonths int          `json:"duration_months"`
	ContractType   ContractType `json:"contract_type"`
	StartupStage   StartupStage `json:"startup_stage"`
	IsLayoffPeriod bool         `json:"is_layoff_period"`
}

// Gap is a span of more than six months between consecutive jobs.
// Pandemic-era gaps (starting 2020-2021) are recorded but never penalized.
type Gap struct {
	StartYear      int    `json:"start_year"`
	EndYear        int    `json:"end_year"`
	DurationMonths int    `json:"duration_months"`
	IsPandemicEra  bool   `json:"is_pandemic_era"`
	Description    string `json:"description"`
}

// StabilityResult is the context-adjusted career stability assessment.
type StabilityResult struct {
	Score               float64         `json:"score"`
	Timeline            []TimelineEntry `json:"timeline"`
	Gaps                []Gap           `json:"gaps"`
	Flags               []StabilityFlag `json:"flags"`
	AverageTenureMonths float64         `json:"average_tenure_months"`
	Indicators          []string        `json:"indicators"`
	PositiveNotes       []string        `json:"positive_notes"`
}

// Report aggregates every analysis for one resume against a batch of jobs.
// ATSResults is parallel to the input job order; Matches is ranked.
type Report struct {
	ID         string          `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	Seniority  SeniorityResult `json:"seniority"`
	Stability  StabilityResult `json:"stability"`
	Matches    []JobMatch      `json:"matches"`
	ATSResults []ATSResult     `json:"ats_results"`
}
