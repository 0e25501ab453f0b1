package parse

import (
	"reflect"
	"testing"
)

const sampleResume = `John Doe
Senior Software Engineer
San Francisco, CA
john.doe@example.com
+1 555 123 4567
linkedin.com/in/johndoe
github.com/johndoe

Summary
Seasoned engineer building distributed systems with Go and PostgreSQL.

Experience

Senior Software Engineer at Acme Corp
Jan 2020 - Present
• Built APIs in Go and PostgreSQL
• Led a team of four engineers

Software Engineer at Widgets Inc
2016 - 2019
• Shipped a React frontend

Education

Bachelor of Science in Computer Science
Stanford University
2012 - 2016

Certifications
AWS Certified Developer

Languages
English
Spanish
`

func TestParseFullResume(t *testing.T) {
	p := Parse(sampleResume)

	if p.FullName != "John Doe" {
		t.Errorf("FullName = %q", p.FullName)
	}
	if p.Email != "john.doe@example.com" {
		t.Errorf("Email = %q", p.Email)
	}
	if p.Phone != "+1 555 123 4567" {
		t.Errorf("Phone = %q", p.Phone)
	}
	if p.Location != "San Francisco, CA" {
		t.Errorf("Location = %q", p.Location)
	}
	if p.LinkedIn != "https://linkedin.com/in/johndoe" {
		t.Errorf("LinkedIn = %q", p.LinkedIn)
	}
	if p.GitHub != "https://github.com/johndoe" {
		t.Errorf("GitHub = %q", p.GitHub)
	}
	if p.Summary == "" {
		t.Error("expected summary")
	}

	if len(p.Experience) != 2 {
		t.Fatalf("expected 2 experience entries, got %d: %+v", len(p.Experience), p.Experience)
	}
	first := p.Experience[0]
	if first.Title != "Senior Software Engineer" || first.Company != "Acme Corp" {
		t.Errorf("first entry header = %q / %q", first.Title, first.Company)
	}
	if first.StartDate != "Jan 2020" || !first.Current || first.EndDate != "Present" {
		t.Errorf("first entry dates = %q..%q current=%v", first.StartDate, first.EndDate, first.Current)
	}
	second := p.Experience[1]
	if second.Company != "Widgets Inc" || second.StartDate != "2016" || second.EndDate != "2019" || second.Current {
		t.Errorf("second entry = %+v", second)
	}

	if len(p.Education) != 1 {
		t.Fatalf("expected 1 education entry, got %d: %+v", len(p.Education), p.Education)
	}
	edu := p.Education[0]
	if edu.Institution != "Stanford University" {
		t.Errorf("Institution = %q", edu.Institution)
	}
	if edu.Degree == "" {
		t.Error("expected degree")
	}
	if edu.StartDate != "2012" || edu.EndDate != "2016" {
		t.Errorf("education dates = %q..%q", edu.StartDate, edu.EndDate)
	}

	if !reflect.DeepEqual(p.Certifications, []string{"AWS Certified Developer"}) {
		t.Errorf("Certifications = %v", p.Certifications)
	}
	if !reflect.DeepEqual(p.Languages, []string{"English", "Spanish"}) {
		t.Errorf("Languages = %v", p.Languages)
	}
	if p.Confidence != 100 {
		t.Errorf("Confidence = %d", p.Confidence)
	}
}

func TestParseEmptyTextYieldsDefaults(t *testing.T) {
	p := Parse("   \n\t ")

	if p.Confidence != 0 {
		t.Errorf("Confidence = %d, want 0", p.Confidence)
	}
	if p.Skills == nil || p.Experience == nil || p.Education == nil || p.Certifications == nil || p.Languages == nil {
		t.Error("list fields must never be nil")
	}
	if len(p.Skills)+len(p.Experience)+len(p.Education) != 0 {
		t.Errorf("expected empty lists, got %+v", p)
	}
}

func TestParseNeverReturnsNilLists(t *testing.T) {
	p := Parse("completely unstructured blob of words without anything useful")
	if p.Skills == nil || p.Experience == nil || p.Education == nil || p.Certifications == nil || p.Languages == nil {
		t.Error("list fields must never be nil")
	}
}

func TestExtractSkillsOrderAndDedupe(t *testing.T) {
	got := extractSkills("JavaScript and React on Node.js. More JavaScript later. Docker too.")
	want := []string{"JavaScript", "React", "Node.js", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("skills = %v, want %v", got, want)
	}
}

func TestExtractSkillsWordBoundaries(t *testing.T) {
	got := extractSkills("We use JavaScript heavily.")
	for _, s := range got {
		if s == "Java" {
			t.Error("Java must not match inside JavaScript")
		}
	}

	got = extractSkills("Fluent in Java and Go.")
	if !reflect.DeepEqual(got, []string{"Java", "Go"}) {
		t.Errorf("skills = %v", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := normalizePhone("+1  555   123\t4567"); got != "+1 555 123 4567" {
		t.Errorf("normalizePhone = %q", got)
	}
}

func TestSectionForHeaders(t *testing.T) {
	cases := map[string]string{
		"EXPERIENCE":           "experience",
		"Work History":         "experience",
		"Education:":           "education",
		"Technical Skills":     "skills",
		"Summary":              "summary",
		"John Doe":             "",
		"Built APIs with Go":   "",
		"Professional Summary": "summary",
	}
	for line, want := range cases {
		if got := sectionFor(line); got != want {
			t.Errorf("sectionFor(%q) = %q, want %q", line, got, want)
		}
	}
}

func TestNormalizeFillsNilLists(t *testing.T) {
	p := Profile{FullName: "Jane Smith", Email: "jane@example.com"}
	got := p.Normalize()

	if got.Skills == nil || got.Experience == nil || got.Education == nil ||
		got.Certifications == nil || got.Languages == nil {
		t.Fatalf("expected all lists initialized, got %+v", got)
	}
	if got.FullName != "Jane Smith" || got.Email != "jane@example.com" {
		t.Fatalf("expected scalar fields preserved, got %+v", got)
	}

	filled := Profile{Skills: []string{"Go"}}.Normalize()
	if !reflect.DeepEqual(filled.Skills, []string{"Go"}) {
		t.Fatalf("expected existing skills kept, got %v", filled.Skills)
	}
}
