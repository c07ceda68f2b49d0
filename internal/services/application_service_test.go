package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/payment"
	"github.com/scholarstreams/scholarstream-backend/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider records created sessions and serves them back by id.
type stubProvider struct {
	sessions map[string]*payment.Session
	lastItem payment.LineItem
	nextID   int
	failWith error
}

func newStubProvider() *stubProvider {
	return &stubProvider{sessions: make(map[string]*payment.Session)}
}

func (p *stubProvider) CreateSession(item payment.LineItem, customerEmail string, metadata map[string]string, successURL, cancelURL string) (*payment.Session, error) {
	if p.failWith != nil {
		return nil, p.failWith
	}
	p.nextID++
	p.lastItem = item
	session := &payment.Session{
		ID:            fmt.Sprintf("cs_test_%d", p.nextID),
		URL:           "https://checkout.example.com/" + fmt.Sprintf("cs_test_%d", p.nextID),
		PaymentStatus: "unpaid",
		AmountTotal:   item.Amount,
		CustomerEmail: customerEmail,
		Metadata:      metadata,
	}
	p.sessions[session.ID] = session
	return session, nil
}

func (p *stubProvider) RetrieveSession(sessionID string) (*payment.Session, error) {
	session, ok := p.sessions[sessionID]
	if !ok {
		return nil, errors.New("no such session")
	}
	return session, nil
}

// markPaid simulates the provider-side completion of a checkout.
func (p *stubProvider) markPaid(sessionID string) {
	if s, ok := p.sessions[sessionID]; ok {
		s.PaymentStatus = payment.StatusPaid
	}
}

type applicationFixture struct {
	stores      *memory.Stores
	provider    *stubProvider
	svc         *ApplicationService
	scholarship *models.Scholarship
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	stores := memory.New()
	scholarship := &models.Scholarship{
		ID:                  uuid.New(),
		ScholarshipName:     "Global Excellence Award",
		UniversityName:      "Example University",
		ScholarshipCategory: "Full fund",
		Degree:              "Masters",
		ApplicationFees:     100,
		ServiceCharge:       20,
	}
	require.NoError(t, stores.Scholarships.Insert(scholarship))

	provider := newStubProvider()
	svc := NewApplicationService(
		stores.Applications, stores.Scholarships, provider,
		"https://app.example.com/success", "https://app.example.com/cancel",
	)
	return &applicationFixture{stores: stores, provider: provider, svc: svc, scholarship: scholarship}
}

func (f *applicationFixture) create(t *testing.T, email string) *models.Application {
	t.Helper()
	application, err := f.svc.Create(email, &dto.CreateApplicationRequest{
		ScholarshipID: f.scholarship.ID.String(),
		Phone:         "555-0100",
	})
	require.NoError(t, err)
	return application
}

func TestCreateApplication(t *testing.T) {
	f := newApplicationFixture(t)

	application := f.create(t, "alice@example.com")
	assert.Equal(t, models.ApplicationPending, application.ApplicationStatus)
	assert.Equal(t, models.PaymentUnpaid, application.PaymentStatus)
	assert.Equal(t, 120.0, application.TotalAmount)
	assert.Equal(t, "Example University", application.UniversityName)
	assert.Equal(t, "Full fund", application.ScholarshipCategory)
	assert.Equal(t, "Masters", application.Degree)
}

func TestCreateApplicationRejectsDuplicate(t *testing.T) {
	f := newApplicationFixture(t)

	f.create(t, "alice@example.com")
	_, err := f.svc.Create("alice@example.com", &dto.CreateApplicationRequest{
		ScholarshipID: f.scholarship.ID.String(),
	})
	assert.ErrorIs(t, err, ErrDuplicateApplication)

	// A different student may still apply.
	_, err = f.svc.Create("bob@example.com", &dto.CreateApplicationRequest{
		ScholarshipID: f.scholarship.ID.String(),
	})
	assert.NoError(t, err)
}

func TestCreateApplicationInputGuards(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.Create("alice@example.com", &dto.CreateApplicationRequest{
		ScholarshipID: "not-a-uuid",
	})
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = f.svc.Create("alice@example.com", &dto.CreateApplicationRequest{
		ScholarshipID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// A body claiming someone else's email is refused outright.
	_, err = f.svc.Create("alice@example.com", &dto.CreateApplicationRequest{
		ScholarshipID: f.scholarship.ID.String(),
		UserEmail:     "bob@example.com",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateApplicationOwnershipBeforeState(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.create(t, "alice@example.com")

	phone := "555-0199"
	updated, err := f.svc.Update(application.ID, "alice@example.com", &dto.UpdateApplicationRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)

	// Push the record past pending.
	require.NoError(t, f.stores.Applications.UpdateFields(application.ID, map[string]interface{}{
		"application_status": models.ApplicationAccepted,
	}))

	// A non-owner sees Forbidden even though the state would also block them.
	_, err = f.svc.Update(application.ID, "bob@example.com", &dto.UpdateApplicationRequest{Phone: &phone})
	assert.ErrorIs(t, err, ErrForbidden)

	// The owner hits the state guard.
	_, err = f.svc.Update(application.ID, "alice@example.com", &dto.UpdateApplicationRequest{Phone: &phone})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.Update(uuid.New(), "alice@example.com", &dto.UpdateApplicationRequest{Phone: &phone})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteApplication(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.create(t, "alice@example.com")

	assert.ErrorIs(t, f.svc.Delete(application.ID, "bob@example.com"), ErrForbidden)
	require.NoError(t, f.svc.Delete(application.ID, "alice@example.com"))
	assert.ErrorIs(t, f.svc.Delete(application.ID, "alice@example.com"), ErrNotFound)
}

func TestAdminDeleteBypassesGuards(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.create(t, "alice@example.com")

	require.NoError(t, f.stores.Applications.UpdateFields(application.ID, map[string]interface{}{
		"application_status": models.ApplicationAccepted,
		"payment_status":     models.PaymentPaid,
	}))

	require.NoError(t, f.svc.AdminDelete(application.ID))
	assert.ErrorIs(t, f.svc.AdminDelete(application.ID), ErrNotFound)
}

func TestCreateCheckoutSession(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.create(t, "alice@example.com")

	_, err := f.svc.CreateCheckoutSession(application.ID, "bob@example.com")
	assert.ErrorIs(t, err, ErrForbidden)

	resp, err := f.svc.CreateCheckoutSession(application.ID, "alice@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.RedirectURL)
	// 120.00 charged as 12000 cents.
	assert.Equal(t, int64(12000), f.provider.lastItem.Amount)

	require.NoError(t, f.stores.Applications.UpdateFields(application.ID, map[string]interface{}{
		"payment_status": models.PaymentPaid,
	}))
	_, err = f.svc.CreateCheckoutSession(application.ID, "alice@example.com")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestConfirmPayment(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.create(t, "alice@example.com")

	resp, err := f.svc.CreateCheckoutSession(application.ID, "alice@example.com")
	require.NoError(t, err)

	// Session not completed on the provider side yet.
	_, err = f.svc.ConfirmPayment(resp.SessionID)
	assert.ErrorIs(t, err, ErrPaymentIncomplete)

	f.provider.markPaid(resp.SessionID)

	confirmed, err := f.svc.ConfirmPayment(resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, confirmed.PaymentStatus)

	// Replays are a no-op, not an error.
	again, err := f.svc.ConfirmPayment(resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, again.PaymentStatus)

	_, err = f.svc.ConfirmPayment("cs_test_missing")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestModeratorQueueOnlyShowsPaid(t *testing.T) {
	f := newApplicationFixture(t)
	paid := f.create(t, "alice@example.com")
	f.create(t, "bob@example.com") // stays unpaid

	require.NoError(t, f.stores.Applications.UpdateFields(paid.ID, map[string]interface{}{
		"payment_status": models.PaymentPaid,
	}))

	queue, total, err := f.svc.ListForModerator(1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, queue, 1)
	assert.Equal(t, paid.ID, queue[0].ID)
}

func TestSetStatusRequiresPaidApplication(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.create(t, "alice@example.com")

	// Unpaid records never reach the moderation queue.
	_, err := f.svc.SetStatus(application.ID, models.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.svc.SetFeedback(application.ID, "looks good")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, f.stores.Applications.UpdateFields(application.ID, map[string]interface{}{
		"payment_status": models.PaymentPaid,
	}))

	_, err = f.svc.SetStatus(application.ID, "approved-ish")
	assert.ErrorIs(t, err, ErrInvalidInput)

	updated, err := f.svc.SetStatus(application.ID, models.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, updated.ApplicationStatus)

	withFeedback, err := f.svc.SetFeedback(application.ID, "strong candidate")
	require.NoError(t, err)
	assert.Equal(t, "strong candidate", withFeedback.Feedback)

	_, err = f.svc.SetStatus(uuid.New(), models.ApplicationRejected)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Full lifecycle: apply, pay, moderate, and observe owner mutability collapse
// once the application leaves (pending, unpaid).
func TestApplicationLifecycle(t *testing.T) {
	f := newApplicationFixture(t)
	application := f.create(t, "alice@example.com")

	resp, err := f.svc.CreateCheckoutSession(application.ID, "alice@example.com")
	require.NoError(t, err)
	f.provider.markPaid(resp.SessionID)

	_, err = f.svc.ConfirmPayment(resp.SessionID)
	require.NoError(t, err)

	_, err = f.svc.SetStatus(application.ID, models.ApplicationProcessing)
	require.NoError(t, err)

	// Owner can no longer edit or withdraw.
	phone := "555-0142"
	_, err = f.svc.Update(application.ID, "alice@example.com", &dto.UpdateApplicationRequest{Phone: &phone})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, f.svc.Delete(application.ID, "alice@example.com"), ErrInvalidTransition)

	final, err := f.svc.SetStatus(application.ID, models.ApplicationRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationRejected, final.ApplicationStatus)

	mine, err := f.svc.ListByOwner("alice@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.ApplicationRejected, mine[0].ApplicationStatus)
}
