package jobs

import "time"

// Job is a normalized posting from any provider.
type Job struct {
	ID          string     `json:"id"`
	Source      string     `json:"source"`
	SourceID    string     `json:"sourceId"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	URL         string     `json:"url,omitempty"`
	SalaryMin   float64    `json:"salaryMin,omitempty"`
	SalaryMax   float64    `json:"salaryMax,omitempty"`
	Remote      bool       `json:"remote,omitempty"`
	PostedAt    *time.Time `json:"postedAt,omitempty"`
	CreatedAt   time.Time  `json:"-"`
}
