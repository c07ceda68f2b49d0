package memory

import (
	"time"

	"github.com/scholarstreams/scholarstream-backend/internal/models"
)

// The field maps mirror the column names the Postgres store passes to
// Updates; only keys the services actually send are handled.

func applyApplicationFields(a *models.Application, fields map[string]interface{}) {
	for key, val := range fields {
		switch key {
		case "phone":
			a.Phone = val.(string)
		case "date_of_birth":
			a.DateOfBirth = val.(string)
		case "gender":
			a.Gender = val.(string)
		case "current_university":
			a.CurrentUniversity = val.(string)
		case "cgpa":
			a.CGPA = toFloat(val)
		case "application_status":
			a.ApplicationStatus = val.(string)
		case "payment_status":
			a.PaymentStatus = val.(string)
		case "feedback":
			a.Feedback = val.(string)
		}
	}
}

func applyReviewFields(r *models.Review, fields map[string]interface{}) {
	for key, val := range fields {
		switch key {
		case "rating_point":
			r.RatingPoint = toFloat(val)
		case "review_comment":
			r.ReviewComment = val.(string)
		case "review_date":
			r.ReviewDate = val.(time.Time)
		}
	}
}

func applyScholarshipFields(sc *models.Scholarship, fields map[string]interface{}) {
	for key, val := range fields {
		switch key {
		case "scholarship_name":
			sc.ScholarshipName = val.(string)
		case "university_name":
			sc.UniversityName = val.(string)
		case "university_country":
			sc.UniversityCountry = val.(string)
		case "university_city":
			sc.UniversityCity = val.(string)
		case "university_world_rank":
			sc.UniversityWorldRank = int(toFloat(val))
		case "subject_category":
			sc.SubjectCategory = val.(string)
		case "scholarship_category":
			sc.ScholarshipCategory = val.(string)
		case "degree":
			sc.Degree = val.(string)
		case "tuition_fees":
			sc.TuitionFees = toFloat(val)
		case "application_fees":
			sc.ApplicationFees = toFloat(val)
		case "service_charge":
			sc.ServiceCharge = toFloat(val)
		case "application_deadline":
			sc.ApplicationDeadline = val.(time.Time)
		case "description":
			sc.Description = val.(string)
		}
	}
}

func toFloat(val interface{}) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}
