package services

import (
	"testing"
	"time"

	"github.com/showcaseapp/showcase-backend/internal/apperr"
	"github.com/showcaseapp/showcase-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	project, err := svc.Create("  My Project  ", "  a description  ", "  team-a  ")
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "My Project", project.Name)
	require.NotNil(t, project.Description)
	assert.Equal(t, "a description", *project.Description)
	require.NotNil(t, project.GroupName)
	assert.Equal(t, "team-a", *project.GroupName)
	assert.Equal(t, 0, project.VoteCount)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", project.ID).Error)
	assert.Equal(t, "My Project", stored.Name)
}

func TestCreateProjectEmptyName(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(name, "", "")
		require.Error(t, err)
		assert.Equal(t, apperr.InvalidInput, apperr.KindOf(err))
	}
}

func TestCreateProjectOptionalFieldsAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	project, err := svc.Create("Bare", "   ", "")
	require.NoError(t, err)
	assert.Nil(t, project.Description)
	assert.Nil(t, project.GroupName)
}

func TestListProjectsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)

	first, err := svc.Create("first", "", "")
	require.NoError(t, err)
	// Distinct timestamps so the ordering is deterministic.
	require.NoError(t, db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)
	second, err := svc.Create("second", "", "")
	require.NoError(t, err)

	projects, err := svc.List()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, second.ID, projects[0].ID)
	assert.Equal(t, first.ID, projects[1].ID)
}
