package workflow

import (
	"errors"
	"strings"
	"sync"

	"healthmate-server/internal/models"
)

var (
	// ErrConsentRequired is returned when analysis is started before the
	// one-time data-processing consent has been given.
	ErrConsentRequired = errors.New("data processing consent required before analysis")

	// ErrInvalidTransition is returned when a transition method is called
	// from a state that does not allow it.
	ErrInvalidTransition = errors.New("operation not allowed in current workflow state")

	// ErrRequestInFlight is returned when a second AI call is attempted
	// while one is still outstanding.
	ErrRequestInFlight = errors.New("a request is already in progress")

	// ErrEmptyAnswer is returned for blank answer submissions.
	ErrEmptyAnswer = errors.New("answer must not be empty")

	// ErrNoQuestions is returned when an analysis without questions is
	// applied to the session.
	ErrNoQuestions = errors.New("analysis contains no questions")

	// ErrEmptyReport is returned when a generated report without content is
	// applied to the session.
	ErrEmptyReport = errors.New("generated report has no content")
)

// Session owns one user's traversal of the report analysis workflow:
// upload -> questions -> report-type -> final-report. State only moves
// forward; the single backward transition is Reset. All mutation goes
// through the transition methods.
type Session struct {
	mu sync.Mutex

	id            string
	state         models.WorkflowState
	reportText    string
	analysis      *models.MedicalAnalysis
	questionIndex int
	answers       map[string]string
	reportKind    models.ReportKind
	report        *models.GeneratedReport
	consentGiven  bool

	analysisInFlight   bool
	generationInFlight bool
}

// NewSession creates a session at the profile step.
func NewSession(id string) *Session {
	return &Session{
		id:      id,
		state:   models.StateProfile,
		answers: make(map[string]string),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current workflow state.
func (s *Session) State() models.WorkflowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start moves the session from the profile step to the upload step.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != models.StateProfile {
		return ErrInvalidTransition
	}
	s.state = models.StateUpload
	return nil
}

// GiveConsent records the one-time data-processing acknowledgment. It is
// idempotent within a session.
func (s *Session) GiveConsent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consentGiven = true
}

// ConsentGiven reports whether the consent gate has been passed.
func (s *Session) ConsentGiven() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consentGiven
}

// BeginAnalysis reserves the single analysis slot and records the report
// text. It fails without consent, outside the upload step, with empty text,
// or while another analysis is outstanding.
func (s *Session) BeginAnalysis(reportText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != models.StateUpload {
		return ErrInvalidTransition
	}
	if !s.consentGiven {
		return ErrConsentRequired
	}
	if strings.TrimSpace(reportText) == "" {
		return errors.New("no report text provided")
	}
	if s.analysisInFlight {
		return ErrRequestInFlight
	}
	s.analysisInFlight = true
	s.reportText = reportText
	return nil
}

// CompleteAnalysis applies a successful analysis and advances to the
// questions step. Analyses without questions are rejected and leave the
// session at the upload step.
func (s *Session) CompleteAnalysis(analysis *models.MedicalAnalysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.analysisInFlight {
		return ErrInvalidTransition
	}
	s.analysisInFlight = false
	if analysis == nil || len(analysis.Questions) == 0 {
		return ErrNoQuestions
	}
	s.analysis = analysis
	s.questionIndex = 0
	s.state = models.StateQuestions
	return nil
}

// FailAnalysis releases the analysis slot after a failed call. The session
// stays at the upload step so the user can retry.
func (s *Session) FailAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysisInFlight = false
}

// CurrentQuestion returns the question awaiting an answer, or false when the
// session is not in the questions step.
func (s *Session) CurrentQuestion() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != models.StateQuestions || s.analysis == nil {
		return "", false
	}
	return s.analysis.Questions[s.questionIndex], true
}

// SubmitAnswer records a non-empty answer against the current question and
// advances the pointer. Answering the last question moves the session to the
// report-type step.
func (s *Session) SubmitAnswer(answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != models.StateQuestions {
		return ErrInvalidTransition
	}
	if strings.TrimSpace(answer) == "" {
		return ErrEmptyAnswer
	}
	question := s.analysis.Questions[s.questionIndex]
	s.answers[question] = answer
	if s.questionIndex < len(s.analysis.Questions)-1 {
		s.questionIndex++
	} else {
		s.state = models.StateReportType
	}
	return nil
}

// BeginGeneration reserves the single report-generation slot and records the
// chosen report kind.
func (s *Session) BeginGeneration(kind models.ReportKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != models.StateReportType {
		return ErrInvalidTransition
	}
	if !kind.Valid() {
		return errors.New("invalid report type")
	}
	if s.generationInFlight {
		return ErrRequestInFlight
	}
	s.generationInFlight = true
	s.reportKind = kind
	return nil
}

// CompleteGeneration applies the generated report and advances to the final
// step. Reports without content are rejected and leave the session at the
// report-type step.
func (s *Session) CompleteGeneration(report *models.GeneratedReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.generationInFlight {
		return ErrInvalidTransition
	}
	s.generationInFlight = false
	if report == nil || strings.TrimSpace(report.Content) == "" {
		return ErrEmptyReport
	}
	s.report = report
	s.state = models.StateFinalReport
	return nil
}

// FailGeneration releases the generation slot after a failed call. The
// session stays at the report-type step so the user can retry.
func (s *Session) FailGeneration() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generationInFlight = false
}

// ReportData assembles the payload for report generation from the
// accumulated state: original text, analysis, and a copy of the answers.
func (s *Session) ReportData() *models.ReportData {
	s.mu.Lock()
	defer s.mu.Unlock()
	responses := make(map[string]string, len(s.answers))
	for q, a := range s.answers {
		responses[q] = a
	}
	return &models.ReportData{
		PatientResponses: responses,
		OriginalReport:   s.reportText,
		Analysis:         s.analysis,
	}
}

// Reset clears every accumulated entity, including the consent flag, and
// returns the session to the profile step. Valid from any state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.StateProfile
	s.reportText = ""
	s.analysis = nil
	s.questionIndex = 0
	s.answers = make(map[string]string)
	s.reportKind = ""
	s.report = nil
	s.consentGiven = false
	s.analysisInFlight = false
	s.generationInFlight = false
}

// Snapshot is a read-only view of the session for API responses.
type Snapshot struct {
	ID              string                  `json:"sessionId"`
	State           models.WorkflowState    `json:"state"`
	ConsentGiven    bool                    `json:"consentGiven"`
	Analysis        *models.MedicalAnalysis `json:"analysis,omitempty"`
	CurrentQuestion string                  `json:"currentQuestion,omitempty"`
	QuestionIndex   int                     `json:"questionIndex"`
	AnsweredCount   int                     `json:"answeredCount"`
	ReportType      models.ReportKind       `json:"reportType,omitempty"`
	Report          *models.GeneratedReport `json:"report,omitempty"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		ID:            s.id,
		State:         s.state,
		ConsentGiven:  s.consentGiven,
		Analysis:      s.analysis,
		QuestionIndex: s.questionIndex,
		AnsweredCount: len(s.answers),
		ReportType:    s.reportKind,
		Report:        s.report,
	}
	if s.state == models.StateQuestions && s.analysis != nil {
		snap.CurrentQuestion = s.analysis.Questions[s.questionIndex]
	}
	return snap
}
