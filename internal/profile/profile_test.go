package profile

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTechnologyGroupFlatten(t *testing.T) {
	group := TechnologyGroup{
		ProgrammingLanguages: []TechnologyItem{{Name: "Python", Probability: 90}},
		CloudServices: CloudServiceGroup{
			AWS:    []TechnologyItem{{Name: "Lambda", Probability: 85}},
			Azure:  []TechnologyItem{{Name: "AKS", Probability: 60}},
			GCP:    []TechnologyItem{{Name: "BigQuery", Probability: 70}},
			Others: []TechnologyItem{{Name: "DigitalOcean", Probability: 50}},
		},
		Databases: []TechnologyItem{{Name: "PostgreSQL", Probability: 88}},
		DevOps:    []TechnologyItem{{Name: "Terraform", Probability: 75}},
		Others:    []TechnologyItem{{Name: "Kafka", Probability: 65}},
	}

	flat := group.Flatten()

	want := []FlatTechnology{
		{Name: "python", Category: CategoryProgrammingLanguages, Score: 90},
		{Name: "lambda", Category: CategoryAWSCloud, Score: 85},
		{Name: "aks", Category: CategoryAzureCloud, Score: 60},
		{Name: "bigquery", Category: CategoryGCPCloud, Score: 70},
		{Name: "digitalocean", Category: CategoryOtherCloud, Score: 50},
		{Name: "postgresql", Category: CategoryDatabases, Score: 88},
		{Name: "terraform", Category: CategoryDevOps, Score: 75},
		{Name: "kafka", Category: CategoryOtherTechnologies, Score: 65},
	}

	if !reflect.DeepEqual(flat, want) {
		t.Fatalf("unexpected flattening:\ngot  %+v\nwant %+v", flat, want)
	}
}

func TestSoftSkillGroupFlatten(t *testing.T) {
	group := SoftSkillGroup{
		LeadershipManagement:       []SoftSkillItem{{Skill: "Team Leadership", Confidence: 82}},
		CommunicationCollaboration: []SoftSkillItem{{Skill: "Public Speaking", Confidence: 70}},
		Others:                     []SoftSkillItem{{Skill: "Mentoring", Confidence: 60}},
	}

	flat := group.Flatten()

	want := []FlatSkill{
		{Name: "team leadership", Category: CategoryLeadership, Score: 82},
		{Name: "public speaking", Category: CategoryCommunication, Score: 70},
		{Name: "mentoring", Category: CategoryOtherSkills, Score: 60},
	}

	if !reflect.DeepEqual(flat, want) {
		t.Fatalf("unexpected flattening:\ngot  %+v\nwant %+v", flat, want)
	}
}

func TestCandidateProfileIsEmpty(t *testing.T) {
	var nilProfile *CandidateProfile
	if !nilProfile.IsEmpty() {
		t.Fatalf("nil profile must be empty")
	}

	if !(&CandidateProfile{Name: "Jane"}).IsEmpty() {
		t.Fatalf("profile without claims must be empty")
	}

	populated := &CandidateProfile{
		Technologies: TechnologyGroup{
			Databases: []TechnologyItem{{Name: "Redis", Probability: 80}},
		},
	}
	if populated.IsEmpty() {
		t.Fatalf("profile with a technology claim must not be empty")
	}
}

func TestJobRequirementsIsEmpty(t *testing.T) {
	var nilReq *JobRequirements
	if !nilReq.IsEmpty() {
		t.Fatalf("nil requirements must be empty")
	}

	if !(&JobRequirements{JobTitle: "   "}).IsEmpty() {
		t.Fatalf("blank title with no requirements must be empty")
	}

	titled := &JobRequirements{JobTitle: "DBA"}
	if titled.IsEmpty() {
		t.Fatalf("a titled document is not empty")
	}
}

// The grouped structure must round-trip through JSON with the nested cloud
// buckets intact, since documents cross the extraction boundary encoded.
func TestJobRequirementsJSONRoundTrip(t *testing.T) {
	original := JobRequirements{
		JobTitle:           "Platform Engineer",
		SeniorityLevel:     "Mid",
		ExperienceRequired: "3 years",
		RequiredTechnologies: TechnologyRequirementGroup{
			CloudServices: CloudRequirementGroup{
				AWS:    []TechnologyRequirement{{Name: "ECS", Importance: 4, Required: true}},
				Others: []TechnologyRequirement{{Name: "Cloudflare", Importance: 2, Required: false}},
			},
			DevOps: []TechnologyRequirement{{Name: "Kubernetes", Importance: 5, Required: true}},
		},
		RequiredSoftSkills: SoftSkillRequirementGroup{
			ProblemSolvingAnalytical: []SoftSkillRequirement{{Skill: "Debugging", Importance: 3, Required: false}},
		},
		KeyResponsibilities: []string{"Operate the platform"},
		NiceToHave:          []string{"Rust"},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded JobRequirements
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip changed the document:\ngot  %+v\nwant %+v", decoded, original)
	}
}

func TestRequirementGroupLen(t *testing.T) {
	group := TechnologyRequirementGroup{
		ProgrammingLanguages: []TechnologyRequirement{{Name: "Go", Importance: 5}},
		CloudServices: CloudRequirementGroup{
			GCP: []TechnologyRequirement{{Name: "GKE", Importance: 3}},
		},
		Others: []TechnologyRequirement{{Name: "gRPC", Importance: 2}},
	}

	if got := group.Len(); got != 3 {
		t.Fatalf("expected 3 requirements, got %d", got)
	}
}
