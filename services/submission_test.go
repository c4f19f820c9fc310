package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"nextkey_landing_go/config"
	"nextkey_landing_go/models"
	"nextkey_landing_go/services/leadapi"
	"nextkey_landing_go/services/leadform"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLeadAPI records submissions and answers with a fixed result
type fakeLeadAPI struct {
	mu    sync.Mutex
	leads []models.LeadSubmission
	res   *leadapi.Result
	err   error

	// block, when set, holds Submit until closed
	block chan struct{}
	ctxs  []context.Context
}

func (f *fakeLeadAPI) Submit(ctx context.Context, lead models.LeadSubmission) (*leadapi.Result, error) {
	f.mu.Lock()
	f.leads = append(f.leads, lead)
	f.ctxs = append(f.ctxs, ctx)
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return f.res, f.err
}

func (f *fakeLeadAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.leads)
}

type recordedEvents struct {
	mu     sync.Mutex
	events []models.SubmissionEvent
}

func (r *recordedEvents) Record(e models.SubmissionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

type failingCaptcha struct{}

func (failingCaptcha) Verify(ctx context.Context, token, ip string) error {
	return errors.New("bad token")
}

func filledParentForm() *leadform.Form {
	f := leadform.NewForm(leadform.ParentFields)
	f.Bind("", func(k string) string {
		return map[string]string{
			leadform.FieldName:          "Jane Doe",
			leadform.FieldEmail:         "jane@example.com",
			leadform.FieldPhone:         "(555) 123-4567",
			leadform.FieldStateLocation: "CA",
		}[k]
	})
	return f
}

func TestSubmitterNetworkSuccess(t *testing.T) {
	api := &fakeLeadAPI{res: &leadapi.Result{StatusCode: http.StatusCreated}}
	events := &recordedEvents{}
	s := NewSubmitter(SiteGeneral, NetworkStrategy{Client: api}, nil)
	s.Events = events
	counter := LeadSubmissions.WithLabelValues(SiteGeneral, string(models.LeadSourceParents), models.OutcomeSucceeded)
	before := testutil.ToFloat64(counter)

	form := filledParentForm()
	outcome, err := s.Submit(context.Background(), SubmitRequest{Form: form, OriginDomain: "example.com", RequestID: "req-1"})
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))

	assert.True(t, outcome.Succeeded())
	assert.Equal(t, MsgSubmitted, outcome.Message)
	assert.Equal(t, ConfirmationRoute, outcome.NavigateTo)
	assert.Equal(t, 1000*time.Millisecond, outcome.NavigateAfter)
	assert.False(t, outcome.ShowModal)

	require.Equal(t, 1, api.calls())
	assert.Equal(t, models.LeadSourceParents, api.leads[0].LeadSource)
	assert.Equal(t, "example.com", api.leads[0].OriginDomain)

	// Values stay in place; navigation replaces the page
	assert.Equal(t, "Jane Doe", form.Value(leadform.FieldName))
	assert.Equal(t, StateIdle, s.State(form.ID))

	require.Len(t, events.events, 1)
	assert.Equal(t, models.OutcomeSucceeded, events.events[0].Outcome)
	assert.Equal(t, http.StatusCreated, events.events[0].StatusCode)
	assert.Equal(t, "req-1", events.events[0].RequestID)
	assert.Equal(t, "network", events.events[0].Strategy)
}

func TestSubmitterInvalidMakesNoCall(t *testing.T) {
	api := &fakeLeadAPI{res: &leadapi.Result{StatusCode: http.StatusCreated}}
	s := NewSubmitter(SiteGeneral, NetworkStrategy{Client: api}, nil)

	form := filledParentForm()
	form.Values[leadform.FieldEmail] = "not-an-email"

	outcome, err := s.Submit(context.Background(), SubmitRequest{Form: form})
	require.NoError(t, err)
	assert.Equal(t, StateIdle, outcome.State)
	assert.Equal(t, models.OutcomeInvalid, outcome.Result)
	assert.True(t, outcome.Errors.Invalid(leadform.FieldEmail))
	assert.Empty(t, outcome.Message, "validation failures show no notification")
	assert.Equal(t, 0, api.calls())
}

func TestSubmitterRejected(t *testing.T) {
	api := &fakeLeadAPI{err: &leadapi.RejectedError{
		StatusCode: http.StatusBadRequest,
		Body:       leadapi.ErrorBody{Email: []string{"Email already used"}},
	}}
	s := NewSubmitter(SiteGeneral, NetworkStrategy{Client: api}, nil)

	form := filledParentForm()
	outcome, err := s.Submit(context.Background(), SubmitRequest{Form: form})
	require.NoError(t, err)
	assert.Equal(t, StateFailed, outcome.State)
	assert.Equal(t, "Email already used", outcome.Message)
	assert.Empty(t, outcome.NavigateTo)
	assert.Equal(t, "jane@example.com", form.Value(leadform.FieldEmail), "values are preserved")
	assert.Equal(t, StateIdle, s.State(form.ID))
}

func TestSubmitterUnreachable(t *testing.T) {
	api := &fakeLeadAPI{err: fmt.Errorf("%w: connection refused", leadapi.ErrUnreachable)}
	s := NewSubmitter(SiteGeneral, NetworkStrategy{Client: api}, nil)

	outcome, err := s.Submit(context.Background(), SubmitRequest{Form: filledParentForm()})
	require.NoError(t, err)
	assert.Equal(t, StateFailed, outcome.State)
	assert.Equal(t, models.OutcomeUnreachable, outcome.Result)
	assert.Equal(t, MsgUnreachable, outcome.Message)
	assert.Empty(t, outcome.NavigateTo)
}

func TestSubmitterLocalStrategy(t *testing.T) {
	s := NewSubmitter(SiteRoblox, LocalStrategy{}, nil)

	form := leadform.NewForm(leadform.ChildFields)
	form.Bind("", func(k string) string {
		return map[string]string{
			leadform.FieldName:        "Jane Doe",
			leadform.FieldEmail:       "jane@example.com",
			leadform.FieldDescription: "Strangers in chat",
		}[k]
	})

	outcome, err := s.Submit(context.Background(), SubmitRequest{Form: form})
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded())
	assert.True(t, outcome.ShowModal)
	assert.Equal(t, models.OutcomeLocal, outcome.Result)
	for _, f := range leadform.ChildFields.Fields {
		assert.Empty(t, form.Value(f.Name), "field %s cleared", f.Name)
	}
}

func TestSubmitterCaptchaFailure(t *testing.T) {
	api := &fakeLeadAPI{res: &leadapi.Result{StatusCode: http.StatusOK}}
	s := NewSubmitter(SiteGeneral, NetworkStrategy{Client: api}, nil)
	s.Captcha = failingCaptcha{}

	outcome, err := s.Submit(context.Background(), SubmitRequest{Form: filledParentForm()})
	require.NoError(t, err)
	assert.Equal(t, StateIdle, outcome.State)
	assert.True(t, outcome.Errors.Invalid(CaptchaField))
	assert.Equal(t, 0, api.calls())
}

func TestSubmitterSingleFlightPerForm(t *testing.T) {
	api := &fakeLeadAPI{res: &leadapi.Result{StatusCode: http.StatusOK}, block: make(chan struct{})}
	s := NewSubmitter(SiteGeneral, NetworkStrategy{Client: api}, nil)
	form := filledParentForm()

	done := make(chan Outcome)
	go func() {
		o, _ := s.Submit(context.Background(), SubmitRequest{Form: form})
		done <- o
	}()

	require.Eventually(t, func() bool { return s.State(form.ID) == StateSubmitting }, time.Second, 5*time.Millisecond)

	// Same instance is refused while the first call is out
	dup := filledParentForm()
	dup.ID = form.ID
	_, err := s.Submit(context.Background(), SubmitRequest{Form: dup})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(api.block)
	first := <-done
	assert.True(t, first.Succeeded())
	assert.Equal(t, 1, api.calls())
	assert.Equal(t, StateIdle, s.State(form.ID))

	// A different instance is not affected
	_, err = s.Submit(context.Background(), SubmitRequest{Form: filledParentForm()})
	assert.NoError(t, err)
}

func TestSubmitterDetachesFromCancellation(t *testing.T) {
	api := &fakeLeadAPI{res: &leadapi.Result{StatusCode: http.StatusOK}}
	s := NewSubmitter(SiteGeneral, NetworkStrategy{Client: api}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := s.Submit(ctx, SubmitRequest{Form: filledParentForm()})
	require.NoError(t, err)
	assert.True(t, outcome.Succeeded())
	require.Len(t, api.ctxs, 1)
	assert.NoError(t, api.ctxs[0].Err())
}

func TestNewSites(t *testing.T) {
	cfg := &config.Config{
		ParentStrategy:       config.StrategyNetwork,
		GeneralChildStrategy: config.StrategyNetwork,
		RobloxChildStrategy:  config.StrategyLocal,
		RobloxBasePath:       "/roblox",
	}
	sites := NewSites(cfg, SiteDeps{Client: &fakeLeadAPI{}})
	require.Len(t, sites, 2)

	general, roblox := sites[0], sites[1]
	assert.Equal(t, "", general.BasePath)
	assert.Equal(t, "/thank-you", general.Path(ConfirmationRoute))
	assert.Equal(t, "/roblox/thank-you", roblox.Path(ConfirmationRoute))

	assert.Equal(t, "network", general.Submitter(leadform.ParentFields).Strategy.Name())
	assert.Equal(t, "network", general.Submitter(leadform.ChildFields).Strategy.Name())
	assert.Equal(t, "network", roblox.Submitter(leadform.ParentFields).Strategy.Name())
	assert.Equal(t, "local", roblox.Submitter(leadform.ChildFields).Strategy.Name())
	assert.Nil(t, roblox.Child.Captcha)
}
