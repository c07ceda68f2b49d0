package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/dto"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store"
)

// ReviewService is the review ledger: ownership-scoped CRUD with a
// moderator/admin override on deletion.
type ReviewService struct {
	reviews store.ReviewStore
	users   store.UserStore
	filter  *ContentFilter
}

func NewReviewService(reviews store.ReviewStore, users store.UserStore, filter *ContentFilter) *ReviewService {
	return &ReviewService{reviews: reviews, users: users, filter: filter}
}

// Create posts a review for the verified caller. Unlike applications there is
// no duplicate check; a user may review the same scholarship repeatedly.
func (s *ReviewService) Create(callerEmail string, req *dto.CreateReviewRequest) (*models.Review, error) {
	scholarshipID, err := uuid.Parse(req.ScholarshipID)
	if err != nil {
		return nil, ErrInvalidID
	}
	if req.RatingPoint < 1 || req.RatingPoint > 5 {
		return nil, invalidInput("rating must be between 1 and 5")
	}
	if ok, reason := s.filter.Check(req.ReviewComment); !ok {
		return nil, invalidInput(s.filter.RejectionMessage(reason))
	}

	review := models.Review{
		ID:            uuid.New(),
		ScholarshipID: scholarshipID,
		UserEmail:     callerEmail,
		RatingPoint:   req.RatingPoint,
		ReviewComment: req.ReviewComment,
		ReviewDate:    time.Now(),
	}
	// Denormalized reviewer identity for display; unregistered reviewers
	// simply show their email.
	if user, err := s.users.FindByEmail(callerEmail); err == nil {
		review.UserDisplayName = user.DisplayName
		review.UserPhotoURL = user.PhotoURL
	}

	if err := s.reviews.Insert(&review); err != nil {
		return nil, upstream(err)
	}
	return &review, nil
}

// Update is owner-only and always refreshes the review date.
func (s *ReviewService) Update(id uuid.UUID, callerEmail string, req *dto.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.reviews.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream(err)
	}
	if review.UserEmail != callerEmail {
		return nil, ErrForbidden
	}
	if req.RatingPoint < 1 || req.RatingPoint > 5 {
		return nil, invalidInput("rating must be between 1 and 5")
	}
	if ok, reason := s.filter.Check(req.ReviewComment); !ok {
		return nil, invalidInput(s.filter.RejectionMessage(reason))
	}

	if err := s.reviews.UpdateFields(id, map[string]interface{}{
		"rating_point":   req.RatingPoint,
		"review_comment": req.ReviewComment,
		"review_date":    time.Now(),
	}); err != nil {
		return nil, upstream(err)
	}
	updated, err := s.reviews.FindByID(id)
	if err != nil {
		return nil, upstream(err)
	}
	return updated, nil
}

// Delete is permitted for the owner, or for moderators and admins.
func (s *ReviewService) Delete(id uuid.UUID, callerEmail string) error {
	review, err := s.reviews.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return upstream(err)
	}
	if review.UserEmail != callerEmail && !s.isModerator(callerEmail) {
		return ErrForbidden
	}
	if err := s.reviews.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return upstream(err)
	}
	return nil
}

func (s *ReviewService) isModerator(email string) bool {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return false
	}
	return user.Role == models.RoleModerator || user.Role == models.RoleAdmin
}

func (s *ReviewService) ListByScholarship(scholarshipID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.reviews.ListByScholarship(scholarshipID)
	if err != nil {
		return nil, upstream(err)
	}
	return reviews, nil
}

func (s *ReviewService) ListByOwner(email string) ([]models.Review, error) {
	reviews, err := s.reviews.ListByOwner(email)
	if err != nil {
		return nil, upstream(err)
	}
	return reviews, nil
}

func (s *ReviewService) ListAll(page, limit int) ([]models.Review, int64, error) {
	reviews, total, err := s.reviews.ListAll(limit, (page-1)*limit)
	if err != nil {
		return nil, 0, upstream(err)
	}
	return reviews, total, nil
}
