package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/payment"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

// ApplicationService owns the application state machine. States derive from
// (application_status, payment_status); only (pending, unpaid) is mutable by
// the owner, accepted/rejected are terminal.
type ApplicationService struct {
	applications store.ApplicationStore
	scholarships store.ScholarshipStore
	provider     payment.Provider
	successURL   string
	cancelURL    string
}

func NewApplicationService(
	applications store.ApplicationStore,
	scholarships store.ScholarshipStore,
	provider payment.Provider,
	successURL, cancelURL string,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		scholarships: scholarships,
		provider:     provider,
		successURL:   successURL,
		cancelURL:    cancelURL,
	}
}

// Create inserts a pending, unpaid application for the verified caller. The
// pre-check gives the friendly duplicate error; the store's unique index
// catches the concurrent-create race behind it.
func (s *ApplicationService) Create(callerEmail string, req *dto.CreateApplicationRequest) (*models.Application, error) {
	if req.UserEmail != "" && req.UserEmail != callerEmail {
		return nil, ErrForbidden
	}

	scholarshipID, err := uuid.Parse(req.ScholarshipID)
	if err != nil {
		return nil, ErrInvalidID
	}

	scholarship, err := s.scholarships.FindByID(scholarshipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}

	_, err = s.applications.FindByScholarshipAndOwner(scholarshipID, callerEmail)
	if err == nil {
		return nil, ErrDuplicateApplication
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, upstream(err)
	}

	application := models.Application{
		ID:                  uuid.New(),
		ScholarshipID:       scholarshipID,
		UserEmail:           callerEmail,
		ApplicationStatus:   models.ApplicationPending,
		PaymentStatus:       models.PaymentUnpaid,
		Phone:               req.Phone,
		DateOfBirth:         req.DateOfBirth,
		Gender:              req.Gender,
		CurrentUniversity:   req.CurrentUniversity,
		CGPA:                req.CGPA,
		TotalAmount:         scholarship.ApplicationFees + scholarship.ServiceCharge,
		UniversityName:      scholarship.UniversityName,
		ScholarshipCategory: scholarship.ScholarshipCategory,
		Degree:              scholarship.Degree,
	}
	if err := s.applications.Insert(&application); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrDuplicateApplication
		}
		return nil, upstream(err)
	}
	return &application, nil
}

func (s *ApplicationService) ListByOwner(email string) ([]models.Application, error) {
	applications, err := s.applications.ListByOwner(email)
	if err != nil {
		return nil, upstream(err)
	}
	return applications, nil
}

// Update merges the owner-editable whitelist. Ownership is checked before
// the state precondition so a non-owner always sees Forbidden.
func (s *ApplicationService) Update(id uuid.UUID, callerEmail string, req *dto.UpdateApplicationRequest) (*models.Application, error) {
	application, err := s.ownedPending(id, callerEmail)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.DateOfBirth != nil {
		fields["date_of_birth"] = *req.DateOfBirth
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.CurrentUniversity != nil {
		fields["current_university"] = *req.CurrentUniversity
	}
	if req.CGPA != nil {
		fields["cgpa"] = *req.CGPA
	}
	if len(fields) == 0 {
		return application, nil
	}

	if err := s.applications.UpdateFields(id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}
	updated, err := s.applications.FindByID(id)
	if err != nil {
		return nil, upstream(err)
	}
	return updated, nil
}

// Delete removes the caller's own pending application.
func (s *ApplicationService) Delete(id uuid.UUID, callerEmail string) error {
	if _, err := s.ownedPending(id, callerEmail); err != nil {
		return err
	}
	if err := s.applications.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return upstream(err)
	}
	return nil
}

// AdminDelete bypasses ownership and state checks.
func (s *ApplicationService) AdminDelete(id uuid.UUID) error {
	if err := s.applications.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return upstream(err)
	}
	return nil
}

func (s *ApplicationService) ownedPending(id uuid.UUID, callerEmail string) (*models.Application, error) {
	application, err := s.applications.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}
	if application.UserEmail != callerEmail {
		return nil, ErrForbidden
	}
	if application.ApplicationStatus != models.ApplicationPending {
		return nil, ErrInvalidTransition
	}
	return application, nil
}

// CreateCheckoutSession opens a payment session for the caller's own
// application; the application id rides along in the session metadata.
func (s *ApplicationService) CreateCheckoutSession(id uuid.UUID, callerEmail string) (*dto.CheckoutSessionResponse, error) {
	application, err := s.applications.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}
	if application.UserEmail != callerEmail {
		return nil, ErrForbidden
	}
	if application.PaymentStatus == models.PaymentPaid {
		return nil, ErrInvalidTransition
	}

	session, err := s.provider.CreateSession(
		payment.LineItem{
			Name:     fmt.Sprintf("Application fee — %s", application.UniversityName),
			Amount:   int64(math.Round(application.TotalAmount * 100)),
			Currency: "usd",
			Quantity: 1,
		},
		callerEmail,
		map[string]string{"application_id": application.ID.String()},
		s.successURL,
		s.cancelURL,
	)
	if err != nil {
		return nil, upstream(err)
	}

	return &dto.CheckoutSessionResponse{
		SessionID:   session.ID,
		RedirectURL: session.URL,
	}, nil
}

// ConfirmPayment marks the application referenced by the session metadata as
// paid. Re-confirming an already-paid application is a no-op, so retries and
// duplicate deliveries are safe.
func (s *ApplicationService) ConfirmPayment(sessionID string) (*models.Application, error) {
	session, err := s.provider.RetrieveSession(sessionID)
	if err != nil {
		return nil, upstream(err)
	}
	if session.PaymentStatus != payment.StatusPaid {
		return nil, ErrPaymentIncomplete
	}

	id, err := uuid.Parse(session.Metadata["application_id"])
	if err != nil {
		return nil, ErrInvalidID
	}

	application, err := s.applications.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}
	if application.PaymentStatus == models.PaymentPaid {
		return application, nil
	}

	if err := s.applications.UpdateFields(id, map[string]interface{}{
		"payment_status": models.PaymentPaid,
	}); err != nil {
		return nil, upstream(err)
	}
	application.PaymentStatus = models.PaymentPaid
	return application, nil
}

// ListForModerator returns paid applications only.
func (s *ApplicationService) ListForModerator(page, limit int) ([]models.Application, int64, error) {
	applications, total, err := s.applications.ListPaid(limit, (page-1)*limit)
	if err != nil {
		return nil, 0, upstream(err)
	}
	return applications, total, nil
}

// SetStatus is the moderator disposition. It requires a paid application:
// unpaid records never reach the moderation queue, so mutating one through a
// guessed id is treated as a state violation.
func (s *ApplicationService) SetStatus(id uuid.UUID, status string) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, invalidInput("status must be pending, processing, accepted or rejected")
	}
	return s.moderatePaid(id, map[string]interface{}{"application_status": status})
}

func (s *ApplicationService) SetFeedback(id uuid.UUID, feedback string) (*models.Application, error) {
	return s.moderatePaid(id, map[string]interface{}{"feedback": feedback})
}

func (s *ApplicationService) moderatePaid(id uuid.UUID, fields map[string]interface{}) (*models.Application, error) {
	application, err := s.applications.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}
	if application.PaymentStatus != models.PaymentPaid {
		return nil, ErrInvalidTransition
	}
	if err := s.applications.UpdateFields(id, fields); err != nil {
		return nil, upstream(err)
	}
	updated, err := s.applications.FindByID(id)
	if err != nil {
		return nil, upstream(err)
	}
	return updated, nil
}
