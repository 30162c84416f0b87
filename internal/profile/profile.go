// Package profile holds the structured documents exchanged with the
// extraction stage: the candidate profile parsed from a CV and the
// requirement set parsed from a job description. Both sides share the same
// fixed grouping (technology categories with nested cloud providers, eight
// soft-skill buckets) so their JSON encodings round-trip losslessly.
package profile

import "strings"

// Display names used for match attribution. They follow the grouping keys,
// humanized for reports.
const (
	CategoryProgrammingLanguages = "Programming Languages"
	CategoryAWSCloud             = "AWS Cloud"
	CategoryAzureCloud           = "Azure Cloud"
	CategoryGCPCloud             = "GCP Cloud"
	CategoryOtherCloud           = "Other Cloud"
	CategoryDatabases            = "Databases"
	CategoryDevOps               = "DevOps"
	CategoryOtherTechnologies    = "Others"

	CategoryLeadership     = "Leadership & Management"
	CategoryCommunication  = "Communication & Collaboration"
	CategoryProblemSolving = "Problem Solving & Analytical"
	CategoryAdaptability   = "Adaptability & Learning"
	CategoryTimeManagement = "Time Management & Organization"
	CategoryCreativity     = "Creativity & Innovation"
	CategoryInterpersonal  = "Interpersonal Skills"
	CategoryOtherSkills    = "Other Soft Skills"
)

// TechnologyItem is a single technology claimed by a candidate. Probability
// is the extraction stage's authenticity estimate for the claim.
type TechnologyItem struct {
	Name        string `json:"name"`
	Probability int    `json:"probability" validate:"min=0,max=100"`
}

// SoftSkillItem is a single soft skill claimed by a candidate, with the
// extraction stage's confidence and the CV passage backing it.
type SoftSkillItem struct {
	Skill      string `json:"skill"`
	Confidence int    `json:"confidence" validate:"min=0,max=100"`
	Evidence   string `json:"evidence,omitempty"`
}

// CloudServiceGroup splits cloud technologies by provider. The shape is
// fixed: unknown providers land in Others so the flattening walk stays
// exhaustive.
type CloudServiceGroup struct {
	AWS    []TechnologyItem `json:"aws" validate:"dive"`
	Azure  []TechnologyItem `json:"azure" validate:"dive"`
	GCP    []TechnologyItem `json:"gcp" validate:"dive"`
	Others []TechnologyItem `json:"others" validate:"dive"`
}

// TechnologyGroup is the candidate-side technology taxonomy.
type TechnologyGroup struct {
	ProgrammingLanguages []TechnologyItem  `json:"programming_languages" validate:"dive"`
	CloudServices        CloudServiceGroup `json:"cloud_services"`
	Databases            []TechnologyItem  `json:"databases" validate:"dive"`
	DevOps               []TechnologyItem  `json:"devops" validate:"dive"`
	Others               []TechnologyItem  `json:"others" validate:"dive"`
}

// SoftSkillGroup is the candidate-side soft-skill taxonomy (eight fixed buckets).
type SoftSkillGroup struct {
	LeadershipManagement       []SoftSkillItem `json:"leadership_management" validate:"dive"`
	CommunicationCollaboration []SoftSkillItem `json:"communication_collaboration" validate:"dive"`
	ProblemSolvingAnalytical   []SoftSkillItem `json:"problem_solving_analytical" validate:"dive"`
	AdaptabilityLearning       []SoftSkillItem `json:"adaptability_learning" validate:"dive"`
	TimeManagementOrganization []SoftSkillItem `json:"time_management_organization" validate:"dive"`
	CreativityInnovation       []SoftSkillItem `json:"creativity_innovation" validate:"dive"`
	Interpersonal              []SoftSkillItem `json:"interpersonal" validate:"dive"`
	Others                     []SoftSkillItem `json:"others" validate:"dive"`
}

// CandidateProfile is the structured document produced from one CV. It is
// read-only input to the matching engine.
type CandidateProfile struct {
	Name              string          `json:"name"`
	YearsOfExperience string          `json:"years_of_experience"`
	Technologies      TechnologyGroup `json:"technologies"`
	SoftSkills        SoftSkillGroup  `json:"soft_skills"`
}

// FlatTechnology is one leaf of the technology taxonomy, projected for
// comparison. Name is case-folded; Category and Score carry provenance.
type FlatTechnology struct {
	Name     string
	Category string
	Score    int
}

// FlatSkill mirrors FlatTechnology for soft skills.
type FlatSkill struct {
	Name     string
	Category string
	Score    int
}

// Flatten projects the grouped technologies into a flat comparable list.
// The walk covers every bucket, including the nested cloud providers, in
// declaration order so the result is deterministic.
func (g TechnologyGroup) Flatten() []FlatTechnology {
	var flat []FlatTechnology
	appendItems := func(category string, items []TechnologyItem) {
		for _, item := range items {
			flat = append(flat, FlatTechnology{
				Name:     strings.ToLower(item.Name),
				Category: category,
				Score:    item.Probability,
			})
		}
	}

	appendItems(CategoryProgrammingLanguages, g.ProgrammingLanguages)
	appendItems(CategoryAWSCloud, g.CloudServices.AWS)
	appendItems(CategoryAzureCloud, g.CloudServices.Azure)
	appendItems(CategoryGCPCloud, g.CloudServices.GCP)
	appendItems(CategoryOtherCloud, g.CloudServices.Others)
	appendItems(CategoryDatabases, g.Databases)
	appendItems(CategoryDevOps, g.DevOps)
	appendItems(CategoryOtherTechnologies, g.Others)

	return flat
}

// Flatten projects the grouped soft skills into a flat comparable list.
func (g SoftSkillGroup) Flatten() []FlatSkill {
	var flat []FlatSkill
	appendItems := func(category string, items []SoftSkillItem) {
		for _, item := range items {
			flat = append(flat, FlatSkill{
				Name:     strings.ToLower(item.Skill),
				Category: category,
				Score:    item.Confidence,
			})
		}
	}

	appendItems(CategoryLeadership, g.LeadershipManagement)
	appendItems(CategoryCommunication, g.CommunicationCollaboration)
	appendItems(CategoryProblemSolving, g.ProblemSolvingAnalytical)
	appendItems(CategoryAdaptability, g.AdaptabilityLearning)
	appendItems(CategoryTimeManagement, g.TimeManagementOrganization)
	appendItems(CategoryCreativity, g.CreativityInnovation)
	appendItems(CategoryInterpersonal, g.Interpersonal)
	appendItems(CategoryOtherSkills, g.Others)

	return flat
}

// IsEmpty reports whether the profile carries no claims at all, the usual
// sign of a failed upstream extraction.
func (p *CandidateProfile) IsEmpty() bool {
	if p == nil {
		return true
	}
	return len(p.Technologies.Flatten()) == 0 && len(p.SoftSkills.Flatten()) == 0
}
