package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"nextkey_landing_go/models"
	"nextkey_landing_go/services/leadapi"
	"nextkey_landing_go/services/leadform"

	"go.uber.org/zap"
)

// Visitor-facing notification texts
const (
	MsgSubmitted   = "Your request has been submitted successfully! Redirecting..."
	MsgUnreachable = "Unable to connect to server. Please check your internet connection and try again."
	MsgModal       = "Your request has been submitted successfully."
)

// RedirectDelay is how long the success toast stays before the confirmation page loads
const RedirectDelay = 1000 * time.Millisecond

// ConfirmationRoute is the site-relative path shown after a successful submission
const ConfirmationRoute = "/thank-you"

// CaptchaField is the pseudo-field flagged when the CAPTCHA check fails
const CaptchaField = "captcha"

// ErrSubmissionInFlight is returned when a form instance is already submitting
var ErrSubmissionInFlight = errors.New("submission already in progress for this form")

// State of a form instance in the submission flow
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Outcome describes what the visitor sees after one submit attempt
type Outcome struct {
	State  State
	Result string // models.Outcome* value

	// Errors is set when validation stopped the submission
	Errors leadform.Errors

	// Notification text; empty for validation failures
	Message string

	// NavigateTo is a site-relative path to load after NavigateAfter
	NavigateTo    string
	NavigateAfter time.Duration

	ShowModal  bool
	ClearForm  bool
	StatusCode int
}

// Succeeded reports whether the lead was accepted
func (o Outcome) Succeeded() bool {
	return o.State == StateSucceeded
}

// LeadSubmitter is the part of the lead API client the network strategy needs
type LeadSubmitter interface {
	Submit(ctx context.Context, lead models.LeadSubmission) (*leadapi.Result, error)
}

// Strategy decides what a valid submission does
type Strategy interface {
	Name() string
	Submit(ctx context.Context, lead models.LeadSubmission) Outcome
}

// NetworkStrategy posts the lead to the intake API
type NetworkStrategy struct {
	Client LeadSubmitter
}

func (NetworkStrategy) Name() string { return "network" }

func (s NetworkStrategy) Submit(ctx context.Context, lead models.LeadSubmission) Outcome {
	res, err := s.Client.Submit(ctx, lead)
	if err == nil {
		return Outcome{
			State:         StateSucceeded,
			Result:        models.OutcomeSucceeded,
			Message:       MsgSubmitted,
			NavigateTo:    ConfirmationRoute,
			NavigateAfter: RedirectDelay,
			StatusCode:    res.StatusCode,
		}
	}

	var rejected *leadapi.RejectedError
	if errors.As(err, &rejected) {
		return Outcome{
			State:      StateFailed,
			Result:     models.OutcomeRejected,
			Message:    rejected.Message(),
			StatusCode: rejected.StatusCode,
		}
	}

	return Outcome{
		State:   StateFailed,
		Result:  models.OutcomeUnreachable,
		Message: MsgUnreachable,
	}
}

// LocalStrategy accepts the lead without any external call
type LocalStrategy struct{}

func (LocalStrategy) Name() string { return "local" }

func (LocalStrategy) Submit(ctx context.Context, lead models.LeadSubmission) Outcome {
	return Outcome{
		State:     StateSucceeded,
		Result:    models.OutcomeLocal,
		Message:   MsgModal,
		ShowModal: true,
		ClearForm: true,
	}
}

// CaptchaVerifier checks a CAPTCHA token before a lead is accepted
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// EventRecorder stores submission outcomes
type EventRecorder interface {
	Record(event models.SubmissionEvent)
}

// SubmitRequest carries one submit attempt
type SubmitRequest struct {
	Form         *leadform.Form
	OriginDomain string
	RequestID    string
	CaptchaToken string
	RemoteIP     string
}

// Submitter runs the submission flow of one form on one site:
// Idle -> Submitting -> Succeeded|Failed -> Idle.
type Submitter struct {
	Site     string
	Strategy Strategy
	Captcha  CaptchaVerifier // optional
	Events   EventRecorder   // optional
	Logger   *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewSubmitter creates a submitter for the given site and strategy
func NewSubmitter(site string, strategy Strategy, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		Site:     site,
		Strategy: strategy,
		Logger:   logger.Named("submission").With(zap.String("site", site), zap.String("strategy", strategy.Name())),
		inFlight: make(map[string]struct{}),
	}
}

// State returns the current state of a form instance
func (s *Submitter) State(formID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[formID]; ok {
		return StateSubmitting
	}
	return StateIdle
}

// Submit validates the form and, when it is valid, hands the lead to the strategy.
// Invalid input never reaches the strategy. The strategy call runs detached
// from ctx cancellation so a visitor leaving mid-request does not abort it.
func (s *Submitter) Submit(ctx context.Context, req SubmitRequest) (Outcome, error) {
	form := req.Form
	source := form.Fields.Source

	if errs := form.Validate(); errs.Any() {
		s.finish(source, req.RequestID, Outcome{State: StateIdle, Result: models.OutcomeInvalid}, 0)
		return Outcome{State: StateIdle, Result: models.OutcomeInvalid, Errors: errs}, nil
	}

	if s.Captcha != nil {
		if err := s.Captcha.Verify(ctx, req.CaptchaToken, req.RemoteIP); err != nil {
			s.Logger.Warn("captcha verification failed", zap.Error(err))
			form.Errors[CaptchaField] = true
			s.finish(source, req.RequestID, Outcome{State: StateIdle, Result: models.OutcomeInvalid}, 0)
			return Outcome{State: StateIdle, Result: models.OutcomeInvalid, Errors: form.Errors}, nil
		}
	}

	if !s.begin(form.ID) {
		return Outcome{State: StateSubmitting}, ErrSubmissionInFlight
	}
	defer s.end(form.ID)

	start := time.Now()
	outcome := s.Strategy.Submit(context.WithoutCancel(ctx), form.Submission(req.OriginDomain))
	elapsed := time.Since(start)

	if outcome.ClearForm {
		form.Clear()
	}

	s.finish(source, req.RequestID, outcome, elapsed)
	return outcome, nil
}

func (s *Submitter) begin(formID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[formID]; busy {
		return false
	}
	s.inFlight[formID] = struct{}{}
	LeadSubmissionsInFlight.Inc()
	return true
}

func (s *Submitter) end(formID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, formID)
	LeadSubmissionsInFlight.Dec()
}

func (s *Submitter) finish(source models.LeadSource, requestID string, outcome Outcome, elapsed time.Duration) {
	LeadSubmissions.WithLabelValues(s.Site, string(source), outcome.Result).Inc()
	if s.Strategy.Name() == "network" && outcome.Result != models.OutcomeInvalid {
		LeadAPIDuration.WithLabelValues(s.Site, outcome.Result).Observe(elapsed.Seconds())
	}

	s.Logger.Info("submission finished",
		zap.String("lead_source", string(source)),
		zap.String("outcome", outcome.Result),
		zap.Int("status", outcome.StatusCode),
		zap.Duration("elapsed", elapsed))

	if s.Events != nil {
		s.Events.Record(models.SubmissionEvent{
			Site:       s.Site,
			LeadSource: source,
			Strategy:   s.Strategy.Name(),
			Outcome:    outcome.Result,
			StatusCode: outcome.StatusCode,
			DurationMs: elapsed.Milliseconds(),
			RequestID:  requestID,
		})
	}
}
