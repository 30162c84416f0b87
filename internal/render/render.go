// Package render prints match reports, candidate profiles, and batch
// rankings as terminal tables.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/lsanchezo/cv-match/internal/matching"
	"github.com/lsanchezo/cv-match/internal/profile"
)

// Report writes the full match report: header, per-axis breakdown, matched
// and missing requirement tables, and the experience comparison.
func Report(w io.Writer, report *matching.MatchReport) {
	if report == nil {
		return
	}

	fmt.Fprintf(w, "\nMatch report: %s vs %s\n", report.CandidateName, report.JobTitle)
	fmt.Fprintf(w, "Overall score: %.1f%%\n\n", report.OverallScore)

	breakdown := tablewriter.NewWriter(w)
	breakdown.SetHeader([]string{"Axis", "Score", "Matched", "Required"})
	breakdown.SetAutoWrapText(false)
	breakdown.Append([]string{
		"Technologies",
		formatScore(report.TechnologyMatch.Score),
		strconv.Itoa(report.TechnologyMatch.MatchedCount),
		strconv.Itoa(report.TechnologyMatch.TotalRequirements),
	})
	breakdown.Append([]string{
		"Soft skills",
		formatScore(report.SoftSkillsMatch.Score),
		strconv.Itoa(report.SoftSkillsMatch.MatchedCount),
		strconv.Itoa(report.SoftSkillsMatch.TotalRequirements),
	})
	breakdown.Append([]string{
		"Experience",
		formatScore(report.ExperienceMatch.Score),
		meetsLabel(report.ExperienceMatch.MeetsRequirement),
		report.ExperienceMatch.RequiredExperience,
	})
	breakdown.Render()

	renderMatched(w, "Matched technologies", report.TechnologyMatch.Matched)
	renderMissing(w, "Missing technologies", report.TechnologyMatch.Missing)
	renderMatched(w, "Matched soft skills", report.SoftSkillsMatch.Matched)
	renderMissing(w, "Missing soft skills", report.SoftSkillsMatch.Missing)

	fmt.Fprintf(w, "\nExperience: candidate has %q, position asks for %q\n",
		report.ExperienceMatch.CVExperience, report.ExperienceMatch.RequiredExperience)
}

func renderMatched(w io.Writer, title string, entries []matching.MatchedEntry) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", title)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Category", "Importance", "CV Score"})
	table.SetAutoWrapText(false)
	for _, e := range entries {
		table.Append([]string{
			e.Name,
			e.Category,
			strconv.Itoa(e.Importance),
			strconv.Itoa(e.CVScore),
		})
	}
	table.Render()
}

func renderMissing(w io.Writer, title string, entries []matching.MissingEntry) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", title)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Category", "Importance", "Required"})
	table.SetAutoWrapText(false)
	for _, e := range entries {
		required := "no"
		if e.Required {
			required = "yes"
		}
		table.Append([]string{
			e.Name,
			e.Category,
			strconv.Itoa(e.Importance),
			required,
		})
	}
	table.Render()
}

// Profile writes the extracted candidate profile as grouped tables.
func Profile(w io.Writer, p *profile.CandidateProfile) {
	if p == nil {
		return
	}

	fmt.Fprintf(w, "\nCandidate: %s\n", p.Name)
	fmt.Fprintf(w, "Experience: %s\n", p.YearsOfExperience)

	techs := p.Technologies.Flatten()
	if len(techs) > 0 {
		fmt.Fprintf(w, "\nTechnologies\n")
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Name", "Category", "Probability"})
		table.SetAutoWrapText(false)
		for _, t := range techs {
			table.Append([]string{t.Name, t.Category, strconv.Itoa(t.Score)})
		}
		table.Render()
	}

	skills := p.SoftSkills.Flatten()
	if len(skills) > 0 {
		fmt.Fprintf(w, "\nSoft skills\n")
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Skill", "Category", "Confidence"})
		table.SetAutoWrapText(false)
		for _, s := range skills {
			table.Append([]string{s.Name, s.Category, strconv.Itoa(s.Score)})
		}
		table.Render()
	}
}

// RankingRow is one line of a batch ranking table.
type RankingRow struct {
	Rank      int
	File      string
	Candidate string
	Score     float64
	Err       error
}

// Ranking writes the batch results ordered by rank. Failed documents show
// the error instead of a score.
func Ranking(w io.Writer, rows []RankingRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "File", "Candidate", "Score"})
	table.SetAutoWrapText(false)
	for _, row := range rows {
		score := formatScore(row.Score)
		candidate := row.Candidate
		if row.Err != nil {
			score = "error: " + row.Err.Error()
			candidate = "-"
		}
		table.Append([]string{
			strconv.Itoa(row.Rank),
			row.File,
			candidate,
			score,
		})
	}
	table.Render()
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 1, 64) + "%"
}

func meetsLabel(meets bool) string {
	if meets {
		return "meets"
	}
	return "below"
}
