package dto

import "github.com/scholarstreams/scholarstream-backend/internal/models"

type CreateReviewRequest struct {
	ScholarshipID string  `json:"scholarship_id"`
	RatingPoint   float64 `json:"rating_point"`
	ReviewComment string  `json:"review_comment"`
}

type UpdateReviewRequest struct {
	RatingPoint   float64 `json:"rating_point"`
	ReviewComment string  `json:"review_comment"`
}

type ReviewListResponse struct {
	Reviews    []models.Review `json:"reviews"`
	Pagination Pagination      `json:"pagination"`
}
