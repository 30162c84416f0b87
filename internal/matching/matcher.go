package matching

import (
	"errors"

	"github.com/lsanchezo/cv-match/internal/profile"
)

// NoRequirementsScore is the category score when a requirement axis is
// empty. Zero was chosen over the experience comparator's opposite policy
// so an empty axis never inflates the overall blend; the divergence is
// deliberate and pinned by tests.
const NoRequirementsScore = 0.0

var (
	// ErrEmptyProfile is returned when the candidate document is absent or
	// carries no claims, usually because upstream extraction failed.
	ErrEmptyProfile = errors.New("candidate profile is empty")
	// ErrEmptyRequirements is returned when the job document is absent or
	// carries nothing to match against.
	ErrEmptyRequirements = errors.New("job requirements are empty")
)

// Engine evaluates candidate profiles against job requirements. It holds
// only configuration, so a single Engine may serve concurrent callers.
type Engine struct {
	weights Weights
	substr  EquivalenceRule
	overlap EquivalenceRule
}

// NewEngine creates an engine with the provided weights. Zero-value weights
// fall back to the 50/30/20 defaults.
func NewEngine(weights Weights) *Engine {
	if weights.IsZero() {
		weights = DefaultWeights()
	}

	return &Engine{
		weights: weights,
		substr:  SubstringRule{},
		overlap: TokenOverlapRule{Threshold: DefaultTokenOverlapThreshold},
	}
}

// Weights returns the blend the engine was built with.
func (e *Engine) Weights() Weights {
	return e.weights
}

// BuildReport runs the full pipeline: flatten both axes, match them,
// reconcile experience, and blend the category scores. It fails outright
// on absent or structurally empty inputs rather than producing a
// misleadingly confident report.
func (e *Engine) BuildReport(p *profile.CandidateProfile, req *profile.JobRequirements) (*MatchReport, error) {
	if p.IsEmpty() {
		return nil, ErrEmptyProfile
	}
	if req.IsEmpty() {
		return nil, ErrEmptyRequirements
	}

	tech := e.MatchTechnologies(p, req)
	soft := e.MatchSoftSkills(p, req)
	exp := MatchExperience(p.YearsOfExperience, req.ExperienceRequired)

	overall := round1(tech.Score*e.weights.Technology +
		soft.Score*e.weights.SoftSkills +
		exp.Score*e.weights.Experience)

	name := p.Name
	if name == "" {
		name = "Unknown"
	}
	title := req.JobTitle
	if title == "" {
		title = "Unknown Position"
	}

	return &MatchReport{
		OverallScore:    overall,
		TechnologyMatch: tech,
		SoftSkillsMatch: soft,
		ExperienceMatch: exp,
		CandidateName:   name,
		JobTitle:        title,
	}, nil
}

// MatchTechnologies scores every technology requirement against the
// flattened candidate taxonomy using the substring rule.
func (e *Engine) MatchTechnologies(p *profile.CandidateProfile, req *profile.JobRequirements) CategoryMatch {
	flat := p.Technologies.Flatten()

	cm := CategoryMatch{Matched: []MatchedEntry{}, Missing: []MissingEntry{}}
	totalImportance := 0
	matchedImportance := 0

	req.RequiredTechnologies.ForEach(func(category string, r profile.TechnologyRequirement) {
		totalImportance += r.Importance

		if score, ok := lookupTechnology(flat, r.Name, e.substr); ok {
			cm.Matched = append(cm.Matched, MatchedEntry{
				Name:       r.Name,
				Category:   category,
				Importance: r.Importance,
				CVScore:    score,
			})
			matchedImportance += r.Importance
			return
		}

		cm.Missing = append(cm.Missing, MissingEntry{
			Name:       r.Name,
			Category:   category,
			Importance: r.Importance,
			Required:   r.Required,
		})
	})

	cm.MatchedCount = len(cm.Matched)
	cm.TotalRequirements = cm.MatchedCount + len(cm.Missing)
	cm.Score = categoryScore(matchedImportance, totalImportance)

	return cm
}

// MatchSoftSkills scores every soft-skill requirement against the flattened
// candidate skills. A requirement is satisfied by the substring rule or,
// failing that, by token overlap, so paraphrased phrasings still match.
func (e *Engine) MatchSoftSkills(p *profile.CandidateProfile, req *profile.JobRequirements) CategoryMatch {
	flat := p.SoftSkills.Flatten()

	cm := CategoryMatch{Matched: []MatchedEntry{}, Missing: []MissingEntry{}}
	totalImportance := 0
	matchedImportance := 0

	req.RequiredSoftSkills.ForEach(func(category string, r profile.SoftSkillRequirement) {
		totalImportance += r.Importance

		if score, ok := lookupSkill(flat, r.Skill, e.substr, e.overlap); ok {
			cm.Matched = append(cm.Matched, MatchedEntry{
				Name:       r.Skill,
				Category:   category,
				Importance: r.Importance,
				CVScore:    score,
			})
			matchedImportance += r.Importance
			return
		}

		cm.Missing = append(cm.Missing, MissingEntry{
			Name:       r.Skill,
			Category:   category,
			Importance: r.Importance,
			Required:   r.Required,
		})
	})

	cm.MatchedCount = len(cm.Matched)
	cm.TotalRequirements = cm.MatchedCount + len(cm.Missing)
	cm.Score = categoryScore(matchedImportance, totalImportance)

	return cm
}

func categoryScore(matchedImportance, totalImportance int) float64 {
	if totalImportance == 0 {
		return NoRequirementsScore
	}
	return round1(float64(matchedImportance) / float64(totalImportance) * 100)
}

// lookupTechnology returns the candidate's recorded authenticity score for
// the first flattened item satisfying the rule. The flat list preserves
// per-item provenance, so this is the structured-profile lookup.
func lookupTechnology(flat []profile.FlatTechnology, name string, rule EquivalenceRule) (int, bool) {
	for _, item := range flat {
		if rule.Match(name, item.Name) {
			return item.Score, true
		}
	}
	return 0, false
}

func lookupSkill(flat []profile.FlatSkill, name string, substr, overlap EquivalenceRule) (int, bool) {
	for _, item := range flat {
		if substr.Match(name, item.Name) || overlap.Match(name, item.Name) {
			return item.Score, true
		}
	}
	return 0, false
}
