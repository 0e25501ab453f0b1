package analysis

// Result is the stateless outcome of scoring a resume profile. It is
// recomputed on every request and never persisted beyond the response.
type Result struct {
	Completeness  int      `json:"completeness"`
	ATSScore      int      `json:"atsScore"`
	Issues        []string `json:"issues"`
	Suggestions   []string `json:"suggestions"`
	MissingFields []string `json:"missingFields"`
	StrengthAreas []string `json:"strengthAreas"`
	WeaknessAreas []string `json:"weaknessAreas"`
}

// Empty returns a Result with zero scores and initialized lists, used as the
// scoring-stage fallback.
func Empty() Result {
	return Result{
		Issues:        []string{},
		Suggestions:   []string{},
		MissingFields: []string{},
		StrengthAreas: []string{},
		WeaknessAreas: []string{},
	}
}
