// Package scoring asks a language model for job requirements and for a scored
// evaluation of a resume against them.
package scoring

// Result is the structured evaluation returned by the model.
type Result struct {
	Scores          []CriterionScore `json:"scores"`
	TotalScore      string           `json:"total_score"`
	SummaryFeedback string           `json:"summary_feedback"`
}

// CriterionScore holds the score and feedback for one weighted criterion.
type CriterionScore struct {
	Criterion string `json:"criterion"`
	Score     string `json:"score"`
	Positive  string `json:"positive"`
	Negative  string `json:"negative"`
}
