package parse

import (
	_ "embed"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed skills.yaml
var skillsYAML []byte

const maxSkills = 20

var skillVocabulary = loadVocabulary()

// loadVocabulary flattens the embedded category lists into matching terms.
// A broken vocabulary file is a programmer error, hence the panic.
func loadVocabulary() []string {
	var categories map[string][]string
	if err := yaml.Unmarshal(skillsYAML, &categories); err != nil {
		panic("parse: invalid skills.yaml: " + err.Error())
	}

	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var terms []string
	seen := make(map[string]bool)
	for _, name := range names {
		for _, term := range categories[name] {
			key := strings.ToLower(strings.TrimSpace(term))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			terms = append(terms, strings.TrimSpace(term))
		}
	}
	return terms
}

// extractSkills matches the curated vocabulary against the text,
// case-insensitive, deduped, in first-seen order, capped at maxSkills.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)

	type hit struct {
		term string
		pos  int
	}
	hits := make([]hit, 0, 16)
	for _, term := range skillVocabulary {
		pos := findTerm(lower, strings.ToLower(term))
		if pos >= 0 {
			hits = append(hits, hit{term: term, pos: pos})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	skills := make([]string, 0, len(hits))
	for _, h := range hits {
		skills = append(skills, h.term)
		if len(skills) == maxSkills {
			break
		}
	}
	return skills
}

// findTerm locates term in lower-cased text, requiring word boundaries when
// the term itself starts or ends with a letter or digit. Terms like "c++"
// or ".net" only get the boundary check on their alphanumeric side.
func findTerm(lower, term string) int {
	if term == "" {
		return -1
	}
	from := 0
	for {
		idx := strings.Index(lower[from:], term)
		if idx < 0 {
			return -1
		}
		idx += from
		if boundaryOK(lower, idx, term) {
			return idx
		}
		from = idx + 1
		if from >= len(lower) {
			return -1
		}
	}
}

func boundaryOK(lower string, idx int, term string) bool {
	if isWordByte(term[0]) && idx > 0 && isWordByte(lower[idx-1]) {
		return false
	}
	end := idx + len(term)
	if isWordByte(term[len(term)-1]) && end < len(lower) && isWordByte(lower[end]) {
		return false
	}
	return true
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}
