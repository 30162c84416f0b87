package matching

import (
	"regexp"
	"strconv"
)

// NoExperienceRequirementScore is the score when the job states no parseable
// experience requirement: with nothing to fall short of, the candidate gets
// full credit. This is the opposite branch of NoRequirementsScore; both
// policies are named and tested rather than hidden.
const NoExperienceRequirementScore = 100.0

var yearsPattern = regexp.MustCompile(`\d+`)

// MatchExperience reconciles two free-text experience strings. The first
// integer token in each string is taken as the year count; absent numbers
// count as zero, since the extraction stage never guarantees a parseable
// value.
func MatchExperience(cvExperience, requiredExperience string) ExperienceMatch {
	cvYears := firstInt(cvExperience)
	requiredYears := firstInt(requiredExperience)

	var score float64
	switch {
	case requiredYears == 0:
		score = NoExperienceRequirementScore
	case cvYears >= requiredYears:
		score = 100
	default:
		score = round1(float64(cvYears) / float64(requiredYears) * 100)
		if score > 100 {
			score = 100
		}
	}

	return ExperienceMatch{
		CVExperience:       cvExperience,
		RequiredExperience: requiredExperience,
		Score:              score,
		MeetsRequirement:   cvYears >= requiredYears,
	}
}

func firstInt(s string) int {
	match := yearsPattern.FindString(s)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}
