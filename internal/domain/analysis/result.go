package analysis

import "fmt"

// TermFlag marks how a single contract term reads for the buyer.
type TermFlag string

const (
	FlagNormal  TermFlag = "normal"
	FlagWarning TermFlag = "warning"
	FlagHigh    TermFlag = "high"
	FlagGood    TermFlag = "good"
)

// IssueSeverity classifies a flagged contract issue.
type IssueSeverity string

const (
	SeverityHigh    IssueSeverity = "high"
	SeverityWarning IssueSeverity = "warning"
	SeverityGood    IssueSeverity = "good"
)

// Trustworthiness score bands used for qualitative interpretation.
const (
	ScoreBandCautionMin = 60
	ScoreBandGoodMin    = 80
	ScoreMax            = 100
)

// ContractTerm is one extracted term with the model's assessment.
type ContractTerm struct {
	Term    string   `json:"term"`
	Value   string   `json:"value"`
	Flag    TermFlag `json:"flag"`
	Details string   `json:"details,omitempty"`
}

// PotentialIssue is one flagged problem with the contract.
type PotentialIssue struct {
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Severity       IssueSeverity `json:"severity"`
	Recommendation string        `json:"recommendation,omitempty"`
}

// Result is the parsed output contract of one analysis.
type Result struct {
	ContractTerms        []ContractTerm   `json:"contractTerms"`
	PotentialIssues      []PotentialIssue `json:"potentialIssues"`
	TrustworthinessScore int              `json:"trustworthinessScore"`
	Summary              string           `json:"summary"`
}

// Validate checks the schema the model was asked to honor: enum membership
// for every flag and severity, and the score inside [0,100]. The model is
// not trusted to follow the prompt.
func (r *Result) Validate() error {
	if r.TrustworthinessScore < 0 || r.TrustworthinessScore > ScoreMax {
		return fmt.Errorf("trustworthiness score %d outside [0,%d]", r.TrustworthinessScore, ScoreMax)
	}
	for i, t := range r.ContractTerms {
		switch t.Flag {
		case FlagNormal, FlagWarning, FlagHigh, FlagGood:
		default:
			return fmt.Errorf("contract term %d: unknown flag %q", i, t.Flag)
		}
	}
	for i, p := range r.PotentialIssues {
		switch p.Severity {
		case SeverityHigh, SeverityWarning, SeverityGood:
		default:
			return fmt.Errorf("potential issue %d: unknown severity %q", i, p.Severity)
		}
	}
	return nil
}
