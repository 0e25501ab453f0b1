package parse

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+?\d[\d\s\-().]{7,}\d`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/([A-Za-z0-9-]+)`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/([A-Za-z0-9-]+)`)
	urlRe      = regexp.MustCompile(`(?i)https?://|www\.|\.com|\.io|\.dev`)
	digitRe    = regexp.MustCompile(`\d`)

	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+,\s*[A-Z]{2}\b`),
		regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z]{2}\b`),
		regexp.MustCompile(`[A-Z][a-z]+,\s*[A-Z][a-z]+`),
	}
)

// Parse extracts a structured Profile from plain resume text. It never
// fails: when nothing matches, every field keeps its empty default and
// confidence is 0.
func Parse(text string) Profile {
	p := EmptyProfile()
	if strings.TrimSpace(text) == "" {
		return p
	}

	p.Email = emailRe.FindString(text)
	p.Phone = normalizePhone(phoneRe.FindString(text))
	p.Location = findLocation(text)

	if m := linkedinRe.FindStringSubmatch(text); m != nil {
		p.LinkedIn = "https://linkedin.com/in/" + m[1]
	}
	if m := githubRe.FindStringSubmatch(text); m != nil {
		p.GitHub = "https://github.com/" + m[1]
	}

	p.FullName = findName(text)
	p.Skills = extractSkills(text)

	sections := splitSections(text)
	p.Summary = firstParagraph(sections["summary"])
	p.Experience = parseExperience(sections["experience"])
	p.Education = parseEducation(sections["education"])
	p.Certifications = listLines(sections["certifications"])
	p.Languages = listLines(sections["languages"])

	p.Confidence = confidence(p)
	return p
}

func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	fields := strings.Fields(raw)
	return strings.Join(fields, " ")
}

func findLocation(text string) string {
	for _, re := range locationRes {
		if loc := re.FindString(text); loc != "" {
			return loc
		}
	}
	return ""
}

// findName walks the first lines of the document for something that looks
// like a person's name: short, no digits, no contact info, not a section
// header. The result is title-cased.
func findName(text string) string {
	lines := strings.Split(text, "\n")
	checked := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		checked++
		if checked > 10 {
			break
		}
		if emailRe.MatchString(line) || phoneRe.MatchString(line) || urlRe.MatchString(line) {
			continue
		}
		if digitRe.MatchString(line) {
			continue
		}
		if sectionFor(line) != "" {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 4 {
			continue
		}
		return titleCase(line)
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func firstParagraph(lines []string) string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(out) > 0 {
				break
			}
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, " ")
}

func listLines(lines []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, line := range lines {
		line = strings.Trim(strings.TrimSpace(line), "•-* \t")
		if line == "" {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, line)
	}
	return out
}

// Weights favor contact info and skills; see confidence scoring in the
// field-extraction contract.
func confidence(p Profile) int {
	score := 0
	if p.Email != "" {
		score += 20
	}
	if p.Phone != "" {
		score += 15
	}
	if p.FullName != "" {
		score += 15
	}
	if len(p.Skills) > 0 {
		score += 20
	}
	if len(p.Experience) > 0 {
		score += 10
	}
	if len(p.Education) > 0 {
		score += 10
	}
	if p.Location != "" {
		score += 5
	}
	if p.Summary != "" {
		score += 5
	}
	return score
}
