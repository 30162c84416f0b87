package profile

import "strings"

// TechnologyRequirement is a technology a job calls for. Importance runs
// 1 (nice to have) to 5 (critical); Required marks hard requirements.
type TechnologyRequirement struct {
	Name       string `json:"name"`
	Importance int    `json:"importance" validate:"min=1,max=5"`
	Required   bool   `json:"required"`
}

// SoftSkillRequirement mirrors TechnologyRequirement for soft skills.
type SoftSkillRequirement struct {
	Skill      string `json:"skill"`
	Importance int    `json:"importance" validate:"min=1,max=5"`
	Required   bool   `json:"required"`
}

// CloudRequirementGroup splits cloud requirements by provider.
type CloudRequirementGroup struct {
	AWS    []TechnologyRequirement `json:"aws" validate:"dive"`
	Azure  []TechnologyRequirement `json:"azure" validate:"dive"`
	GCP    []TechnologyRequirement `json:"gcp" validate:"dive"`
	Others []TechnologyRequirement `json:"others" validate:"dive"`
}

// TechnologyRequirementGroup is the requirement-side technology taxonomy.
type TechnologyRequirementGroup struct {
	ProgrammingLanguages []TechnologyRequirement `json:"programming_languages" validate:"dive"`
	CloudServices        CloudRequirementGroup   `json:"cloud_services"`
	Databases            []TechnologyRequirement `json:"databases" validate:"dive"`
	DevOps               []TechnologyRequirement `json:"devops" validate:"dive"`
	Others               []TechnologyRequirement `json:"others" validate:"dive"`
}

// SoftSkillRequirementGroup is the requirement-side soft-skill taxonomy.
type SoftSkillRequirementGroup struct {
	LeadershipManagement       []SoftSkillRequirement `json:"leadership_management" validate:"dive"`
	CommunicationCollaboration []SoftSkillRequirement `json:"communication_collaboration" validate:"dive"`
	ProblemSolvingAnalytical   []SoftSkillRequirement `json:"problem_solving_analytical" validate:"dive"`
	AdaptabilityLearning       []SoftSkillRequirement `json:"adaptability_learning" validate:"dive"`
	TimeManagementOrganization []SoftSkillRequirement `json:"time_management_organization" validate:"dive"`
	CreativityInnovation       []SoftSkillRequirement `json:"creativity_innovation" validate:"dive"`
	Interpersonal              []SoftSkillRequirement `json:"interpersonal" validate:"dive"`
	Others                     []SoftSkillRequirement `json:"others" validate:"dive"`
}

// JobRequirements is the structured document produced from one job
// description. Read-only input to the matching engine.
type JobRequirements struct {
	JobTitle             string                     `json:"job_title"`
	SeniorityLevel       string                     `json:"seniority_level"`
	ExperienceRequired   string                     `json:"experience_required"`
	RequiredTechnologies TechnologyRequirementGroup `json:"required_technologies"`
	RequiredSoftSkills   SoftSkillRequirementGroup  `json:"required_soft_skills"`
	KeyResponsibilities  []string                   `json:"key_responsibilities"`
	NiceToHave           []string                   `json:"nice_to_have"`
}

// ForEach visits every technology requirement with its display category, in
// declaration order. The nested cloud providers are walked explicitly so no
// bucket can be skipped silently.
func (g TechnologyRequirementGroup) ForEach(fn func(category string, r TechnologyRequirement)) {
	visit := func(category string, reqs []TechnologyRequirement) {
		for _, r := range reqs {
			fn(category, r)
		}
	}

	visit(CategoryProgrammingLanguages, g.ProgrammingLanguages)
	visit(CategoryAWSCloud, g.CloudServices.AWS)
	visit(CategoryAzureCloud, g.CloudServices.Azure)
	visit(CategoryGCPCloud, g.CloudServices.GCP)
	visit(CategoryOtherCloud, g.CloudServices.Others)
	visit(CategoryDatabases, g.Databases)
	visit(CategoryDevOps, g.DevOps)
	visit(CategoryOtherTechnologies, g.Others)
}

// ForEach visits every soft-skill requirement with its display category.
func (g SoftSkillRequirementGroup) ForEach(fn func(category string, r SoftSkillRequirement)) {
	visit := func(category string, reqs []SoftSkillRequirement) {
		for _, r := range reqs {
			fn(category, r)
		}
	}

	visit(CategoryLeadership, g.LeadershipManagement)
	visit(CategoryCommunication, g.CommunicationCollaboration)
	visit(CategoryProblemSolving, g.ProblemSolvingAnalytical)
	visit(CategoryAdaptability, g.AdaptabilityLearning)
	visit(CategoryTimeManagement, g.TimeManagementOrganization)
	visit(CategoryCreativity, g.CreativityInnovation)
	visit(CategoryInterpersonal, g.Interpersonal)
	visit(CategoryOtherSkills, g.Others)
}

// Len counts technology requirements across all buckets.
func (g TechnologyRequirementGroup) Len() int {
	n := 0
	g.ForEach(func(string, TechnologyRequirement) { n++ })
	return n
}

// Len counts soft-skill requirements across all buckets.
func (g SoftSkillRequirementGroup) Len() int {
	n := 0
	g.ForEach(func(string, SoftSkillRequirement) { n++ })
	return n
}

// IsEmpty reports whether the document carries nothing to match against.
func (r *JobRequirements) IsEmpty() bool {
	if r == nil {
		return true
	}
	return strings.TrimSpace(r.JobTitle) == "" &&
		r.RequiredTechnologies.Len() == 0 &&
		r.RequiredSoftSkills.Len() == 0
}
