package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lsanchezo/cv-match/internal/matching"
	"github.com/lsanchezo/cv-match/internal/profile"
)

func TestReport(t *testing.T) {
	report := &matching.MatchReport{
		OverallScore:  78.5,
		CandidateName: "Jane Roe",
		JobTitle:      "Senior Backend Engineer",
		TechnologyMatch: matching.CategoryMatch{
			Matched: []matching.MatchedEntry{
				{Name: "python", Category: profile.CategoryProgrammingLanguages, Importance: 5, CVScore: 90},
			},
			Missing: []matching.MissingEntry{
				{Name: "mysql", Category: profile.CategoryDatabases, Importance: 3, Required: false},
			},
			Score:             75.0,
			MatchedCount:      1,
			TotalRequirements: 2,
		},
		SoftSkillsMatch: matching.CategoryMatch{
			Matched:           []matching.MatchedEntry{},
			Missing:           []matching.MissingEntry{},
			Score:             0,
			TotalRequirements: 0,
		},
		ExperienceMatch: matching.ExperienceMatch{
			CVExperience:       "6 years",
			RequiredExperience: "5 years",
			Score:              100,
			MeetsRequirement:   true,
		},
	}

	var buf bytes.Buffer
	Report(&buf, report)
	out := buf.String()

	for _, want := range []string{
		"Jane Roe", "Senior Backend Engineer", "78.5%",
		"python", "mysql", "Missing technologies",
		"meets", "6 years",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "Matched soft skills") {
		t.Fatalf("empty soft-skill section should be omitted:\n%s", out)
	}
}

func TestReportNil(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output for nil report, got %q", buf.String())
	}
}

func TestProfile(t *testing.T) {
	p := &profile.CandidateProfile{
		Name:              "Jane Roe",
		YearsOfExperience: "6 years",
		Technologies: profile.TechnologyGroup{
			ProgrammingLanguages: []profile.TechnologyItem{{Name: "Go", Probability: 80}},
		},
		SoftSkills: profile.SoftSkillGroup{
			LeadershipManagement: []profile.SoftSkillItem{{Skill: "Team Leadership", Confidence: 82}},
		},
	}

	var buf bytes.Buffer
	Profile(&buf, p)
	out := buf.String()

	for _, want := range []string{"Jane Roe", "6 years", "go", "team leadership"} {
		if !strings.Contains(out, want) {
			t.Fatalf("profile output missing %q:\n%s", want, out)
		}
	}
}

func TestRanking(t *testing.T) {
	rows := []RankingRow{
		{Rank: 1, File: "a.pdf", Candidate: "Jane Roe", Score: 91.2},
		{Rank: 2, File: "b.pdf", Err: errors.New("extraction failed")},
	}

	var buf bytes.Buffer
	Ranking(&buf, rows)
	out := buf.String()

	for _, want := range []string{"a.pdf", "Jane Roe", "91.2%", "b.pdf", "extraction failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("ranking output missing %q:\n%s", want, out)
		}
	}
}
