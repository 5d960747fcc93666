package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/showcaseapp/showcase-backend/internal/apperr"
	"github.com/showcaseapp/showcase-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// countVotes returns the source-of-truth vote count for a project.
func countVotes(t *testing.T, db *gorm.DB, projectID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Vote{}).Where("project_id = ?", projectID).Count(&n).Error)
	return n
}

func TestCastVote(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(db, 3)
	user := createTestUser(t, db, "U1")
	project := createTestProject(t, db, "P1")

	updated, err := svc.Cast(user.ID, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.VoteCount)
	assert.EqualValues(t, 1, countVotes(t, db, project.ID))

	status, err := svc.Status(user.ID)
	require.NoError(t, err)
	require.Len(t, status.Projects, 1)
	assert.True(t, status.Projects[0].HasVoted)
	assert.Equal(t, 1, status.UserVoteCount)
	assert.Equal(t, 2, status.RemainingVotes)
}

func TestCastVoteDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(db, 3)
	user := createTestUser(t, db, "U1")
	project := createTestProject(t, db, "P1")

	_, err := svc.Cast(user.ID, project.ID)
	require.NoError(t, err)

	_, err = svc.Cast(user.ID, project.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// Count unchanged: the failed attempt must not leave partial effects.
	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, "id = ?", project.ID).Error)
	assert.Equal(t, 1, reloaded.VoteCount)
	assert.EqualValues(t, 1, countVotes(t, db, project.ID))
}

func TestCastVoteUnknownProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(db, 3)
	user := createTestUser(t, db, "U2")

	_, err := svc.Cast(user.ID, "project_bogus")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestCastVoteEmptyProjectID(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(db, 3)
	user := createTestUser(t, db, "U1")

	for _, id := range []string{"", "   "} {
		_, err := svc.Cast(user.ID, id)
		require.Error(t, err)
		// Empty input is a validation failure, not a missing project.
		assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
	}
}

func TestCastVoteLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(db, 3)
	user := createTestUser(t, db, "U1")

	for i := 0; i < 3; i++ {
		p := createTestProject(t, db, fmt.Sprintf("P%d", i))
		_, err := svc.Cast(user.ID, p.ID)
		require.NoError(t, err)
	}

	extra := createTestProject(t, db, "P-extra")
	_, err := svc.Cast(user.ID, extra.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, "id = ?", extra.ID).Error)
	assert.Equal(t, 0, reloaded.VoteCount)
}

func TestCastVoteLimitDisabled(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(db, 0)
	user := createTestUser(t, db, "U1")

	for i := 0; i < 5; i++ {
		p := createTestProject(t, db, fmt.Sprintf("P%d", i))
		_, err := svc.Cast(user.ID, p.ID)
		require.NoError(t, err)
	}
}

func TestConcurrentVotesOnSameProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(db, 0)
	project := createTestProject(t, db, "P2")

	numVoters := 8
	users := make([]*models.User, numVoters)
	for i := range users {
		users[i] = createTestUser(t, db, fmt.Sprintf("V%d", i))
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if _, err := svc.Cast(users[idx].ID, project.ID); err == nil {
				successCount.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, numVoters, successCount.Load())

	// No lost updates: the denormalized counter matches the vote rows.
	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, "id = ?", project.ID).Error)
	assert.Equal(t, numVoters, reloaded.VoteCount)
	assert.EqualValues(t, numVoters, countVotes(t, db, project.ID))
}

func TestConcurrentDuplicateVotes(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(db, 3)
	user := createTestUser(t, db, "U1")
	project := createTestProject(t, db, "P1")

	var successCount, conflictCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Cast(user.ID, project.ID)
			switch {
			case err == nil:
				successCount.Add(1)
			case apperr.KindOf(err) == apperr.Conflict:
				conflictCount.Add(1)
			}
		}()
	}
	wg.Wait()

	// Exactly one success; every other attempt is a conflict.
	assert.EqualValues(t, 1, successCount.Load())
	assert.EqualValues(t, 3, conflictCount.Load())

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, "id = ?", project.ID).Error)
	assert.Equal(t, 1, reloaded.VoteCount)
	assert.EqualValues(t, 1, countVotes(t, db, project.ID))
}

func TestVotingStatusOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewVoteService(db, 3)

	low := createTestProject(t, db, "low")
	high := createTestProject(t, db, "high")
	mid := createTestProject(t, db, "mid")

	for i := 0; i < 3; i++ {
		u := createTestUser(t, db, fmt.Sprintf("V%d", i))
		_, err := svc.Cast(u.ID, high.ID)
		require.NoError(t, err)
		if i < 1 {
			_, err = svc.Cast(u.ID, mid.ID)
			require.NoError(t, err)
		}
	}

	viewer := createTestUser(t, db, "viewer")
	status, err := svc.Status(viewer.ID)
	require.NoError(t, err)
	require.Len(t, status.Projects, 3)
	assert.Equal(t, high.ID, status.Projects[0].ID)
	assert.Equal(t, mid.ID, status.Projects[1].ID)
	assert.Equal(t, low.ID, status.Projects[2].ID)
	assert.Equal(t, 0, status.UserVoteCount)
	assert.Equal(t, 3, status.RemainingVotes)
	for _, p := range status.Projects {
		assert.False(t, p.HasVoted)
	}
}
