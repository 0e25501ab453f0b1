package analysis

import (
	"fmt"
	"strings"

	"jobportal-backend/internal/parse"
)

var starterSkills = []string{
	"Communication", "Problem Solving", "Teamwork", "Leadership", "Project Management",
}

// Enhance returns a copy of the profile with a generated summary when the
// existing one is missing or thin, and starter soft skills when none were
// extracted. The input profile is not modified.
func Enhance(p parse.Profile) parse.Profile {
	enhanced := p

	if len(enhanced.Summary) < 100 {
		enhanced.Summary = generateSummary(p)
	}
	if len(enhanced.Skills) == 0 {
		enhanced.Skills = append([]string{}, starterSkills...)
	}
	return enhanced
}

func generateSummary(p parse.Profile) string {
	var b strings.Builder
	if n := len(p.Experience); n > 0 {
		fmt.Fprintf(&b, "Experienced professional with %d previous role", n)
		if n > 1 {
			b.WriteString("s")
		}
		b.WriteString(" in ")
	} else {
		b.WriteString("Professional with expertise in ")
	}

	if len(p.Skills) > 0 {
		top := p.Skills
		if len(top) > 3 {
			top = top[:3]
		}
		b.WriteString(strings.Join(top, ", "))
		b.WriteString(". ")
	} else {
		b.WriteString("various domains. ")
	}

	b.WriteString("Passionate about delivering high-quality results and continuous learning. ")
	b.WriteString("Seeking opportunities to contribute to innovative projects and grow professionally.")
	return b.String()
}
