package parse

// Profile is the structured record extracted from resume text. All list
// fields default to empty slices, never nil, so consumers can iterate
// unconditionally.
type Profile struct {
	FullName       string            `json:"fullName"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone"`
	Location       string            `json:"location"`
	LinkedIn       string            `json:"linkedin"`
	GitHub         string            `json:"github"`
	Summary        string            `json:"summary"`
	Skills         []string          `json:"skills"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Certifications []string          `json:"certifications"`
	Languages      []string          `json:"languages"`
	Confidence     int               `json:"confidence"`
}

// ExperienceEntry is a single work-history item.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationEntry is a single education-history item.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Normalize returns a copy with nil list fields replaced by empty slices.
// Profiles decoded from client JSON can arrive with lists omitted; this
// restores the no-nil guarantee before they re-enter the pipeline.
func (p Profile) Normalize() Profile {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []ExperienceEntry{}
	}
	if p.Education == nil {
		p.Education = []EducationEntry{}
	}
	if p.Certifications == nil {
		p.Certifications = []string{}
	}
	if p.Languages == nil {
		p.Languages = []string{}
	}
	return p
}

// EmptyProfile returns a Profile with every list initialized.
func EmptyProfile() Profile {
	return Profile{
		Skills:         []string{},
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Certifications: []string{},
		Languages:      []string{},
	}
}
