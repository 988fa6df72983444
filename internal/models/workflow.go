package models

// WorkflowState is the strictly forward-moving pointer through the report
// analysis workflow. The only backward transition is a full reset to
// StateProfile.
type WorkflowState string

const (
	StateProfile     WorkflowState = "profile"
	StateUpload      WorkflowState = "upload"
	StateQuestions   WorkflowState = "questions"
	StateReportType  WorkflowState = "report-type"
	StateFinalReport WorkflowState = "final-report"
)
