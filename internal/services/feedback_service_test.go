package services

import (
	"testing"
	"time"

	"github.com/showcaseapp/showcase-backend/internal/apperr"
	"github.com/showcaseapp/showcase-backend/internal/dto"
	"github.com/showcaseapp/showcase-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitFeedback(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	user := createTestUser(t, db, "U1")

	feedback, err := svc.Submit(user.ID, &dto.CreateFeedbackRequest{
		Rating:       4,
		Liked:        "  the voting board  ",
		Improvements: "dark mode",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, feedback.ID)
	assert.Equal(t, 4, feedback.Rating)
	require.NotNil(t, feedback.Liked)
	assert.Equal(t, "the voting board", *feedback.Liked)
	require.NotNil(t, feedback.Improvements)
	assert.Equal(t, "dark mode", *feedback.Improvements)
}

func TestSubmitFeedbackInvalidRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	user := createTestUser(t, db, "U1")

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Submit(user.ID, &dto.CreateFeedbackRequest{Rating: rating})
		require.Error(t, err, "rating %d", rating)
		assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
	}

	var count int64
	require.NoError(t, db.Model(&models.Feedback{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitFeedbackEmptyCommentsStoredAsAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	user := createTestUser(t, db, "U1")

	feedback, err := svc.Submit(user.ID, &dto.CreateFeedbackRequest{
		Rating:       3,
		Liked:        "",
		Improvements: "   ",
	})
	require.NoError(t, err)
	assert.Nil(t, feedback.Liked)
	assert.Nil(t, feedback.Improvements)

	var stored models.Feedback
	require.NoError(t, db.First(&stored, "id = ?", feedback.ID).Error)
	assert.Nil(t, stored.Liked)
	assert.Nil(t, stored.Improvements)
}

func TestListAllFeedbackNewestFirstWithSubmitter(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db)
	alice := createTestUser(t, db, "Alice")
	bob := createTestUser(t, db, "Bob")

	older, err := svc.Submit(alice.ID, &dto.CreateFeedbackRequest{Rating: 5, Liked: "nice"})
	require.NoError(t, err)
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	newer, err := svc.Submit(bob.ID, &dto.CreateFeedbackRequest{Rating: 2})
	require.NoError(t, err)

	entries, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, "Bob", entries[0].User.Name)
	assert.Equal(t, older.ID, entries[1].ID)
	assert.Equal(t, "Alice", entries[1].User.Name)
	require.NotNil(t, entries[1].Liked)
	assert.Equal(t, "nice", *entries[1].Liked)
}
