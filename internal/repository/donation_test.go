package repository

import (
	"context"
	"testing"

	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationListJoinsProjectTitle(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	projectID, err := repo.Project.Create(ctx, nil, &model.Project{Title: "School build"})
	require.NoError(t, err)
	otherID, err := repo.Project.Create(ctx, nil, &model.Project{Title: "Well digging"})
	require.NoError(t, err)

	_, err = repo.Donation.Create(ctx, nil, &model.Donation{ProjectID: projectID, DonorName: strPtr("Alice"), Amount: 25})
	require.NoError(t, err)
	_, err = repo.Donation.Create(ctx, nil, &model.Donation{ProjectID: otherID, Amount: 40})
	require.NoError(t, err)

	all, err := repo.Donation.GetAll(ctx, nil, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	filtered, err := repo.Donation.GetAll(ctx, nil, projectID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "School build", filtered[0].ProjectTitle)
	require.NotNil(t, filtered[0].DonorName)
	assert.Equal(t, "Alice", *filtered[0].DonorName)
	assert.NotNil(t, filtered[0].DonationDate)
}

func TestDonationGroupByAmountRange(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	projectID, err := repo.Project.Create(ctx, nil, &model.Project{Title: "P"})
	require.NoError(t, err)

	for _, amount := range []float64{10, 75, 200, 600} {
		_, err := repo.Donation.Create(ctx, nil, &model.Donation{ProjectID: projectID, Amount: amount})
		require.NoError(t, err)
	}

	buckets, err := repo.Donation.GroupByAmountRange(ctx, nil)
	require.NoError(t, err)
	require.Len(t, buckets, 4)

	// The labels sort lexically, not numerically.
	assert.Equal(t, []AmountRangeBucket{
		{AmountRange: "0-50", TotalDonations: 1, TotalAmount: 10},
		{AmountRange: "101-500", TotalDonations: 1, TotalAmount: 200},
		{AmountRange: "500+", TotalDonations: 1, TotalAmount: 600},
		{AmountRange: "51-100", TotalDonations: 1, TotalAmount: 75},
	}, buckets)
}

func TestDonationTotalPerProject(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	aID, err := repo.Project.Create(ctx, nil, &model.Project{Title: "A"})
	require.NoError(t, err)
	bID, err := repo.Project.Create(ctx, nil, &model.Project{Title: "B"})
	require.NoError(t, err)

	for _, d := range []model.Donation{
		{ProjectID: aID, Amount: 100},
		{ProjectID: aID, Amount: 50},
		{ProjectID: bID, Amount: 10},
	} {
		donation := d
		_, err := repo.Donation.Create(ctx, nil, &donation)
		require.NoError(t, err)
	}

	totals, err := repo.Donation.TotalPerProject(ctx, nil)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byProject := map[uint]ProjectTotal{}
	for _, total := range totals {
		byProject[total.ProjectID] = total
	}
	assert.Equal(t, float64(150), byProject[aID].TotalDonated)
	assert.Equal(t, "A", byProject[aID].ProjectTitle)
	assert.Equal(t, float64(10), byProject[bID].TotalDonated)
}

// The write path does not verify the referenced project exists.
func TestDonationCreateOrphanAllowed(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	id, err := repo.Donation.Create(ctx, nil, &model.Donation{ProjectID: 9999, Amount: 5})
	require.NoError(t, err)
	assert.NotZero(t, id)

	// The orphan never shows up in join-based reads.
	rows, err := repo.Donation.GetAll(ctx, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDonationUpdateAndDelete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	projectID, err := repo.Project.Create(ctx, nil, &model.Project{Title: "P"})
	require.NoError(t, err)
	id, err := repo.Donation.Create(ctx, nil, &model.Donation{ProjectID: projectID, Amount: 20})
	require.NoError(t, err)

	affected, err := repo.Donation.Update(ctx, nil, id, DonationUpdateParams{Amount: floatPtr(35)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Donation.Update(ctx, nil, id, DonationUpdateParams{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)
	assert.Zero(t, affected)

	affected, err = repo.Donation.Delete(ctx, nil, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Donation.Delete(ctx, nil, id)
	require.NoError(t, err)
	assert.Zero(t, affected)
}
