package parse

import (
	"regexp"
	"strings"
)

var sectionKeywords = []struct {
	name     string
	keywords []string
}{
	{"experience", []string{"experience", "employment", "work history", "professional background"}},
	{"education", []string{"education", "academic"}},
	{"skills", []string{"skills", "technologies", "technical proficiencies"}},
	{"summary", []string{"summary", "objective", "about me", "profile"}},
	{"certifications", []string{"certifications", "certificates", "licenses"}},
	{"languages", []string{"languages"}},
	{"projects", []string{"projects"}},
}

var dateRangeRe = regexp.MustCompile(`(?i)((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|(?:19|20)\d{2})\s*(?:-|–|—|to)\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|(?:19|20)\d{2}|present|current)`)

var yearRe = regexp.MustCompile(`(?:19|20)\d{2}`)

// sectionFor returns the canonical section name when line is a section
// header, or "" otherwise. Headers are short lines matching a keyword.
func sectionFor(line string) string {
	clean := strings.ToLower(strings.TrimSpace(line))
	clean = strings.Trim(clean, ":-_ \t")
	if clean == "" || len(strings.Fields(clean)) > 4 {
		return ""
	}
	for _, section := range sectionKeywords {
		for _, kw := range section.keywords {
			if clean == kw || strings.HasPrefix(clean, kw+" ") || strings.HasSuffix(clean, " "+kw) {
				return section.name
			}
		}
	}
	return ""
}

// splitSections segments the raw text into named sections keyed by the
// canonical section names. Lines before the first recognized header are
// dropped here; contact fields are matched against the full text instead.
func splitSections(text string) map[string][]string {
	sections := make(map[string][]string)
	current := ""
	for _, line := range strings.Split(text, "\n") {
		if name := sectionFor(line); name != "" {
			current = name
			continue
		}
		if current == "" {
			continue
		}
		sections[current] = append(sections[current], line)
	}
	return sections
}

// parseExperience splits an experience section into entries on blank-line
// or date-pattern boundaries and parses each entry's header and date range.
func parseExperience(lines []string) []ExperienceEntry {
	entries := []ExperienceEntry{}
	for _, block := range splitEntries(lines) {
		entry := ExperienceEntry{}
		header := block[0]

		title, company := splitTitleCompany(stripDates(header))
		entry.Title = title
		entry.Company = company

		joined := strings.Join(block, "\n")
		if m := dateRangeRe.FindStringSubmatch(joined); m != nil {
			entry.StartDate = strings.TrimSpace(m[1])
			end := strings.TrimSpace(m[2])
			if isCurrent(end) {
				entry.Current = true
				entry.EndDate = "Present"
			} else {
				entry.EndDate = end
			}
		}

		if len(block) > 1 {
			desc := make([]string, 0, len(block)-1)
			for _, line := range block[1:] {
				line = strings.Trim(strings.TrimSpace(line), "•-* \t")
				if line == "" || stripDates(line) == "" {
					continue
				}
				desc = append(desc, line)
			}
			entry.Description = strings.Join(desc, "; ")
		}

		entries = append(entries, entry)
	}
	return entries
}

func parseEducation(lines []string) []EducationEntry {
	entries := []EducationEntry{}
	for _, block := range splitEntries(lines) {
		entry := EducationEntry{}
		for _, line := range block {
			line = strings.TrimSpace(line)
			if entry.Institution == "" && institutionRe.MatchString(line) {
				entry.Institution = stripDates(line)
			}
			if entry.Degree == "" && degreeRe.MatchString(line) {
				entry.Degree = stripDates(line)
			}
		}
		if entry.Institution == "" && entry.Degree == "" {
			continue
		}

		joined := strings.Join(block, "\n")
		if m := dateRangeRe.FindStringSubmatch(joined); m != nil {
			entry.StartDate = strings.TrimSpace(m[1])
			end := strings.TrimSpace(m[2])
			if isCurrent(end) {
				entry.EndDate = "Present"
			} else {
				entry.EndDate = end
			}
		} else if year := yearRe.FindString(joined); year != "" {
			entry.EndDate = year
		}

		entries = append(entries, entry)
	}
	return entries
}

var (
	institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy)\b`)
	degreeRe      = regexp.MustCompile(`(?i)\b(bachelor|master|phd|ph\.d|doctorate|diploma|b\.?\s?(?:a|s|sc|tech|e)|m\.?\s?(?:a|s|sc|tech|ba)|degree)\b`)
)

// splitEntries groups section lines into entry blocks. A blank line always
// starts a new block. A second date range inside one block starts a new
// block too, so resumes without blank separators still split per position;
// the line right above the new date is treated as that entry's header and
// moves with it.
func splitEntries(lines []string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		if dateRangeRe.MatchString(trimmed) && blockHasDate(current) {
			var carried []string
			if n := len(current); n > 1 && looksLikeHeader(current[n-1]) && !dateRangeRe.MatchString(current[n-1]) {
				carried = []string{current[n-1]}
				current = current[:n-1]
			}
			blocks = append(blocks, current)
			current = carried
		}
		current = append(current, trimmed)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func blockHasDate(block []string) bool {
	for _, line := range block {
		if dateRangeRe.MatchString(line) {
			return true
		}
	}
	return false
}

// looksLikeHeader guards the date-boundary split: bullet lines that merely
// mention a date range stay with their entry.
func looksLikeHeader(line string) bool {
	return !strings.HasPrefix(line, "•") && !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "*")
}

func isCurrent(end string) bool {
	switch strings.ToLower(end) {
	case "present", "current":
		return true
	default:
		return false
	}
}

func stripDates(line string) string {
	line = dateRangeRe.ReplaceAllString(line, "")
	return strings.Trim(strings.TrimSpace(line), "|,-–— \t()")
}

// splitTitleCompany pulls "Title at Company" style headers apart. Falls back
// to treating the whole header as the title.
func splitTitleCompany(header string) (title, company string) {
	seps := []string{" at ", " @ ", " | ", " - ", " – ", ", "}
	for _, sep := range seps {
		if idx := strings.Index(header, sep); idx > 0 {
			return strings.TrimSpace(header[:idx]), strings.TrimSpace(header[idx+len(sep):])
		}
	}
	return strings.TrimSpace(header), ""
}
