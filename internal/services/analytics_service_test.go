package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/scholarstreams/scholarstream-backend/internal/models"
	"github.com/scholarstreams/scholarstream-backend/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsSnapshot(t *testing.T) {
	stores := memory.New()
	svc := NewAnalyticsService(stores.Users, stores.Scholarships, stores.Applications, stores.Reviews)

	require.NoError(t, stores.Users.Insert(&models.User{ID: uuid.New(), Email: "a@example.com"}))
	require.NoError(t, stores.Users.Insert(&models.User{ID: uuid.New(), Email: "b@example.com"}))
	require.NoError(t, stores.Scholarships.Insert(&models.Scholarship{ID: uuid.New(), ScholarshipName: "S"}))

	require.NoError(t, stores.Applications.Insert(&models.Application{
		ID: uuid.New(), ScholarshipID: uuid.New(), UserEmail: "a@example.com",
		PaymentStatus: models.PaymentPaid, TotalAmount: 120,
	}))
	require.NoError(t, stores.Applications.Insert(&models.Application{
		ID: uuid.New(), ScholarshipID: uuid.New(), UserEmail: "b@example.com",
		PaymentStatus: models.PaymentUnpaid, TotalAmount: 80,
	}))

	require.NoError(t, stores.Reviews.Insert(&models.Review{ID: uuid.New(), RatingPoint: 4}))
	require.NoError(t, stores.Reviews.Insert(&models.Review{ID: uuid.New(), RatingPoint: 2}))

	snapshot, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, int64(2), snapshot.Users)
	assert.Equal(t, int64(1), snapshot.Scholarships)
	assert.Equal(t, int64(2), snapshot.Applications)
	assert.Equal(t, int64(1), snapshot.PaidApplications)
	assert.Equal(t, int64(2), snapshot.Reviews)
	// Unpaid totals never count toward revenue.
	assert.Equal(t, 120.0, snapshot.FeeRevenue)
	assert.Equal(t, 3.0, snapshot.AverageRating)
}

func TestAnalyticsSnapshotEmpty(t *testing.T) {
	stores := memory.New()
	svc := NewAnalyticsService(stores.Users, stores.Scholarships, stores.Applications, stores.Reviews)

	snapshot, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Zero(t, snapshot.Users)
	assert.Zero(t, snapshot.FeeRevenue)
	assert.Zero(t, snapshot.AverageRating)
}
