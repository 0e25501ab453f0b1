package analysis

import (
	"math"

	"jobportal-backend/internal/parse"
)

// Analyze scores a profile and derives its issue, strength, and suggestion
// lists. Pure function of the profile: no I/O, deterministic, idempotent.
func Analyze(p parse.Profile) Result {
	r := Result{
		Completeness:  Completeness(p),
		ATSScore:      ATSScore(p),
		Issues:        issues(p),
		MissingFields: missingFields(p),
		StrengthAreas: strengths(p),
		WeaknessAreas: weaknesses(p),
	}
	r.Suggestions = Suggestions(p, r.Completeness, r.ATSScore)
	return r
}

// completenessChecks is the fixed checklist behind the completeness score.
// Keys double as the missing-field names exposed in responses.
var completenessChecks = []struct {
	field string
	met   func(parse.Profile) bool
}{
	{"fullName", func(p parse.Profile) bool { return p.FullName != "" }},
	{"email", func(p parse.Profile) bool { return p.Email != "" }},
	{"phone", func(p parse.Profile) bool { return p.Phone != "" }},
	{"location", func(p parse.Profile) bool { return p.Location != "" }},
	{"summary", func(p parse.Profile) bool { return p.Summary != "" }},
	{"skills", func(p parse.Profile) bool { return len(p.Skills) > 0 }},
	{"workExperience", func(p parse.Profile) bool { return len(p.Experience) > 0 }},
	{"education", func(p parse.Profile) bool { return len(p.Education) > 0 }},
}

// Completeness is the percentage of the expected-fields checklist satisfied.
func Completeness(p parse.Profile) int {
	met := 0
	for _, check := range completenessChecks {
		if check.met(p) {
			met++
		}
	}
	return int(math.Round(float64(met) / float64(len(completenessChecks)) * 100))
}

// ATSScore estimates how well the resume's structure and keywords would
// survive applicant-tracking filters. Weighted presence of the essential
// fields plus count thresholds, capped at 100. Adding recognized skills
// never lowers the score.
func ATSScore(p parse.Profile) int {
	score := 0

	if p.FullName != "" {
		score += 10
	}
	if p.Email != "" {
		score += 10
	}
	if p.Phone != "" {
		score += 10
	}
	if p.Summary != "" {
		score += 15
	}
	if len(p.Skills) > 0 {
		score += 15
	}
	if len(p.Education) > 0 {
		score += 15
	}
	if len(p.Experience) > 0 {
		score += 15
	}

	if len(p.Skills) >= 3 {
		score += 3
	}
	if len(p.Skills) >= 8 {
		score += 3
	}
	if len(p.Experience) >= 2 {
		score += 3
	}
	if len(p.Summary) >= 50 {
		score += 3
	}
	if len(p.Certifications) > 0 {
		score += 3
	}

	if score > 100 {
		score = 100
	}
	return score
}

func issues(p parse.Profile) []string {
	out := []string{}
	if p.FullName == "" {
		out = append(out, "Missing full name")
	}
	if p.Email == "" {
		out = append(out, "Missing email address")
	}
	if p.Phone == "" {
		out = append(out, "Missing phone number")
	}
	if p.Summary == "" {
		out = append(out, "Missing professional summary")
	}
	if len(p.Skills) == 0 {
		out = append(out, "No skills listed")
	}
	if len(p.Education) == 0 {
		out = append(out, "No education history")
	}
	if len(p.Experience) == 0 {
		out = append(out, "No work experience")
	}
	if p.Summary != "" && len(p.Summary) < 50 {
		out = append(out, "Professional summary is too short")
	}
	if len(p.Summary) > 500 {
		out = append(out, "Professional summary is too long")
	}
	return out
}

func missingFields(p parse.Profile) []string {
	out := []string{}
	for _, check := range completenessChecks {
		if !check.met(p) {
			out = append(out, check.field)
		}
	}
	return out
}

func strengths(p parse.Profile) []string {
	out := []string{}
	if len(p.Skills) >= 5 {
		out = append(out, "Strong skill set")
	}
	if len(p.Education) >= 1 {
		out = append(out, "Good educational background")
	}
	if len(p.Experience) >= 1 {
		out = append(out, "Relevant work experience")
	}
	if len(p.Summary) >= 100 {
		out = append(out, "Comprehensive professional summary")
	}
	if len(p.Certifications) > 0 {
		out = append(out, "Professional certifications")
	}
	return out
}

func weaknesses(p parse.Profile) []string {
	out := []string{}
	if len(p.Skills) < 3 {
		out = append(out, "Limited skill set")
	}
	if len(p.Education) == 0 {
		out = append(out, "No education information")
	}
	if len(p.Experience) == 0 {
		out = append(out, "No work experience")
	}
	if p.Summary == "" {
		out = append(out, "Missing professional summary")
	}
	if len(p.Certifications) == 0 {
		out = append(out, "No professional certifications")
	}
	return out
}
