package models

// UrgencyLevel classifies how urgently a report should be followed up.
type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "low"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyHigh   UrgencyLevel = "high"
)

// Valid reports whether the level is one of the three known values.
func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// MedicalAnalysis is the structured result of analyzing a patient's report.
// Questions drives the follow-up Q&A phase of the workflow and must contain
// at least one entry for the analysis to be usable.
type MedicalAnalysis struct {
	KeyFindings         []string     `json:"keyFindings"`
	PotentialConditions []string     `json:"potentialConditions"`
	UrgencyLevel        UrgencyLevel `json:"urgencyLevel"`
	Questions           []string     `json:"questions"`
}

// ReportData bundles everything the report generator needs: the raw report
// text, the analysis derived from it, and the patient's answers keyed by
// question text.
type ReportData struct {
	PatientResponses map[string]string `json:"patientResponses"`
	OriginalReport   string            `json:"originalReport"`
	Analysis         *MedicalAnalysis  `json:"analysis"`
}

// ReportKind selects the audience of a generated report.
type ReportKind string

const (
	ReportPersonal     ReportKind = "personal"
	ReportProfessional ReportKind = "professional"
)

// Valid reports whether the kind is one of the two supported values.
func (k ReportKind) Valid() bool {
	return k == ReportPersonal || k == ReportProfessional
}

// GeneratedReport is the terminal artifact of the workflow.
type GeneratedReport struct {
	Content         string   `json:"content"`
	Recommendations []string `json:"recommendations"`
}
