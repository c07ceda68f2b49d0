package dto

type AnalyticsResponse struct {
	Users            int64   `json:"users"`
	Scholarships     int64   `json:"scholarships"`
	Applications     int64   `json:"applications"`
	PaidApplications int64   `json:"paid_applications"`
	Reviews          int64   `json:"reviews"`
	FeeRevenue       float64 `json:"fee_revenue"`
	AverageRating    float64 `json:"average_rating"`
}
