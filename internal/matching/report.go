// Package matching reconciles a candidate profile with a job requirement
// set under fuzzy name equality and produces an importance-weighted,
// fully attributed match report. Every entry point is a pure function of
// its inputs; the package holds no state and is safe for concurrent use.
package matching

import "math"

// MatchedEntry is a requirement satisfied by the profile. CVScore is the
// candidate's own recorded probability/confidence for the matching item,
// not a similarity measure.
type MatchedEntry struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Importance int    `json:"importance"`
	CVScore    int    `json:"cv_score"`
}

// MissingEntry is a requirement with no satisfying profile item.
type MissingEntry struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Importance int    `json:"importance"`
	Required   bool   `json:"required"`
}

// CategoryMatch aggregates the outcome for one requirement axis.
// MatchedCount + len(Missing) always equals TotalRequirements.
type CategoryMatch struct {
	Matched           []MatchedEntry `json:"matched"`
	Missing           []MissingEntry `json:"missing"`
	Score             float64        `json:"score"`
	MatchedCount      int            `json:"matched_count"`
	TotalRequirements int            `json:"total_requirements"`
}

// ExperienceMatch is the reconciled years-of-experience comparison.
type ExperienceMatch struct {
	CVExperience       string  `json:"cv_experience"`
	RequiredExperience string  `json:"required_experience"`
	Score              float64 `json:"score"`
	MeetsRequirement   bool    `json:"meets_requirement"`
}

// MatchReport is the final output value for one (profile, requirements)
// pair. Never mutated after construction.
type MatchReport struct {
	OverallScore    float64         `json:"overall_score"`
	TechnologyMatch CategoryMatch   `json:"technology_match"`
	SoftSkillsMatch CategoryMatch   `json:"soft_skills_match"`
	ExperienceMatch ExperienceMatch `json:"experience_match"`
	CandidateName   string          `json:"candidate_name"`
	JobTitle        string          `json:"job_title"`
}

// Weights blend the three category scores into the overall score. The
// defaults reproduce the 50/30/20 split; alternate values come from the
// configuration file.
type Weights struct {
	Technology float64 `json:"technology" mapstructure:"technology"`
	SoftSkills float64 `json:"soft_skills" mapstructure:"soft-skills"`
	Experience float64 `json:"experience" mapstructure:"experience"`
}

// DefaultWeights returns the standard technology/soft-skills/experience blend.
func DefaultWeights() Weights {
	return Weights{Technology: 0.5, SoftSkills: 0.3, Experience: 0.2}
}

// IsZero reports whether no weight is set, i.e. the config left them out.
func (w Weights) IsZero() bool {
	return w.Technology == 0 && w.SoftSkills == 0 && w.Experience == 0
}

// round1 rounds to one decimal place, the precision of every score in the
// report.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
