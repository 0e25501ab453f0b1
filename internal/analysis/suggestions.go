package analysis

import "jobportal-backend/internal/parse"

const (
	maxSuggestions       = 5
	praiseScoreThreshold = 80
	praiseMessage        = "Your resume covers the essentials well, keep it updated as you grow"
)

// suggestionRules maps unmet profile conditions to advice, in a fixed order:
// contact info first, then content depth. Ordering is the rule order, never
// re-sorted by severity.
var suggestionRules = []struct {
	unmet   func(parse.Profile) bool
	message string
}{
	{func(p parse.Profile) bool { return p.Email == "" }, "Add an email address"},
	{func(p parse.Profile) bool { return p.Phone == "" }, "Add a phone number"},
	{func(p parse.Profile) bool { return len(p.Skills) < 3 }, "Add more technical skills"},
	{func(p parse.Profile) bool { return len(p.Experience) == 0 }, "Add your work experience"},
	{func(p parse.Profile) bool { return len(p.Education) == 0 }, "Include your educational background"},
	{func(p parse.Profile) bool { return p.Summary == "" || len(p.Summary) < 50 }, "Write a professional summary of at least a few sentences"},
	{func(p parse.Profile) bool { return p.LinkedIn == "" }, "Add your LinkedIn profile"},
	{func(p parse.Profile) bool { return len(p.Certifications) == 0 }, "List relevant certifications"},
}

// Suggestions derives the ordered improvement list: one entry per unmet
// rule, a positive message when both scores clear the praise threshold,
// truncated to maxSuggestions. Issues come before praise.
func Suggestions(p parse.Profile, completeness, atsScore int) []string {
	out := []string{}
	for _, rule := range suggestionRules {
		if rule.unmet(p) {
			out = append(out, rule.message)
		}
	}

	if completeness >= praiseScoreThreshold && atsScore >= praiseScoreThreshold {
		out = append(out, praiseMessage)
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
