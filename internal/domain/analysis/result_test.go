package analysis

import (
	"strings"
	"testing"
)

func validResult() *Result {
	return &Result{
		ContractTerms: []ContractTerm{
			{Term: "Purchase Price", Value: "$24,500", Flag: FlagNormal},
			{Term: "APR", Value: "21.9%", Flag: FlagHigh, Details: "Well above market rate"},
		},
		PotentialIssues: []PotentialIssue{
			{Title: "Mandatory arbitration", Description: "Clause 14 waives court access", Severity: SeverityWarning, Recommendation: "Negotiate removal"},
		},
		TrustworthinessScore: 62,
		Summary:              "Caution advised; financing terms are unfavorable.",
	}
}

func TestResultValidateAccepts(t *testing.T) {
	if err := validResult().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	empty := &Result{Summary: "nothing extracted"}
	if err := empty.Validate(); err != nil {
		t.Fatalf("Validate(empty sequences) = %v, want nil", err)
	}
}

func TestResultValidateScoreBounds(t *testing.T) {
	for _, score := range []int{-1, 101, 250} {
		r := validResult()
		r.TrustworthinessScore = score
		err := r.Validate()
		if err == nil {
			t.Fatalf("Validate(score=%d) = nil, want error", score)
		}
		if !strings.Contains(err.Error(), "trustworthiness score") {
			t.Fatalf("Validate(score=%d) = %v, want score error", score, err)
		}
	}
	for _, score := range []int{0, 59, 60, 79, 80, 100} {
		r := validResult()
		r.TrustworthinessScore = score
		if err := r.Validate(); err != nil {
			t.Fatalf("Validate(score=%d) = %v, want nil", score, err)
		}
	}
}

func TestResultValidateEnums(t *testing.T) {
	r := validResult()
	r.ContractTerms[0].Flag = "critical"
	if err := r.Validate(); err == nil || !strings.Contains(err.Error(), "unknown flag") {
		t.Fatalf("Validate(bad flag) = %v, want unknown flag error", err)
	}

	r = validResult()
	r.PotentialIssues[0].Severity = "medium"
	if err := r.Validate(); err == nil || !strings.Contains(err.Error(), "unknown severity") {
		t.Fatalf("Validate(bad severity) = %v, want unknown severity error", err)
	}
}
