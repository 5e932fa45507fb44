package models

// AdvisorLoad is one advisor and the number of students they supervise.
type AdvisorLoad struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// SupervisionSummary describes how supervision load is spread across
// advisors for the current dataset.
type SupervisionSummary struct {
	TotalStudents  int           `json:"totalStudents"`
	TotalAdvisors  int           `json:"totalAdvisors"`
	MeanAdvisees   float64       `json:"meanAdvisees"`
	MedianAdvisees float64       `json:"medianAdvisees"`
	MaxAdvisees    float64       `json:"maxAdvisees"`
	TopAdvisors    []AdvisorLoad `json:"topAdvisors"`
}
