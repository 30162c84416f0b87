package matching

import "testing"

func TestMatchExperience(t *testing.T) {
	cases := []struct {
		name      string
		cv        string
		required  string
		wantScore float64
		wantMeets bool
	}{
		{name: "exceeds requirement", cv: "5 years", required: "3 years", wantScore: 100.0, wantMeets: true},
		{name: "below requirement", cv: "2 years", required: "4 years", wantScore: 50.0, wantMeets: false},
		{name: "exact requirement", cv: "3 years", required: "3 years", wantScore: 100.0, wantMeets: true},
		{name: "partial ratio rounded", cv: "1 year", required: "3 years", wantScore: 33.3, wantMeets: false},
		{name: "no stated requirement", cv: "2 years", required: "not specified", wantScore: NoExperienceRequirementScore, wantMeets: true},
		{name: "empty requirement", cv: "2 years", required: "", wantScore: NoExperienceRequirementScore, wantMeets: true},
		{name: "unparseable cv years", cv: "several years", required: "4 years", wantScore: 0.0, wantMeets: false},
		{name: "both unparseable", cv: "unknown", required: "unknown", wantScore: NoExperienceRequirementScore, wantMeets: true},
		{name: "first integer wins", cv: "8 years (3 in management)", required: "5+ years", wantScore: 100.0, wantMeets: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchExperience(tc.cv, tc.required)

			if got.Score != tc.wantScore {
				t.Fatalf("score = %v, want %v", got.Score, tc.wantScore)
			}
			if got.MeetsRequirement != tc.wantMeets {
				t.Fatalf("meets_requirement = %v, want %v", got.MeetsRequirement, tc.wantMeets)
			}
			if got.CVExperience != tc.cv || got.RequiredExperience != tc.required {
				t.Fatalf("input strings must be echoed verbatim, got %+v", got)
			}
			if got.Score < 0 || got.Score > 100 {
				t.Fatalf("score out of range: %v", got.Score)
			}
		})
	}
}
