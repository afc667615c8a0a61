package mem

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otigox-task/internal/domain"
)

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, window(items, 0, 3))
	assert.Equal(t, []int{4, 5}, window(items, 3, 10))
	assert.Equal(t, []int{}, window(items, 5, 10))
	assert.Equal(t, []int{}, window(items, -1, 10))
	assert.Equal(t, []int{}, window(items, 0, 0))
}

func TestUserUniqueEmail(t *testing.T) {
	repo := NewStore().Users()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.User{Name: "a", Email: "a@example.com"}))
	err := repo.Create(ctx, &domain.User{Name: "b", Email: "a@example.com"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, err.Error(), "unique")

	// update to a taken email hits the same index
	u := &domain.User{Name: "b", Email: "b@example.com"}
	require.NoError(t, repo.Create(ctx, u))
	u.Email = "a@example.com"
	assert.ErrorAs(t, repo.Update(ctx, u), &conflict)
}

func TestUserListInsertionOrder(t *testing.T) {
	repo := NewStore().Users()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &domain.User{
			Name:  fmt.Sprintf("u%d", i),
			Email: fmt.Sprintf("u%d@example.com", i),
		}))
	}

	got, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i, u := range got {
		assert.Equal(t, fmt.Sprintf("u%d", i), u.Name)
	}
}

func TestUserDeleteCascadesAssignments(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	users, projects := st.Users(), st.Projects()

	u := &domain.User{Name: "alice", Email: "alice@example.com"}
	require.NoError(t, users.Create(ctx, u))
	p := &domain.Project{Name: "apollo"}
	require.NoError(t, projects.Create(ctx, p))
	require.NoError(t, projects.AssignUser(ctx, p.ID, u.ID))

	ok, err := users.Delete(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := projects.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Users)

	ok, err = users.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProjectUniqueName(t *testing.T) {
	repo := NewStore().Projects()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Project{Name: "apollo"}))
	err := repo.Create(ctx, &domain.Project{Name: "apollo"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)

	require.NoError(t, repo.Create(ctx, &domain.Project{Name: "gemini"}))
	assert.ErrorAs(t, repo.UpdateFields(ctx, 2, "apollo", ""), &conflict)
	// keeping your own name is fine
	assert.NoError(t, repo.UpdateFields(ctx, 1, "apollo", "renarrated"))
}

func TestProjectAssignmentRoundtrip(t *testing.T) {
	st := NewStore()
	ctx := context.Background()
	users, projects := st.Users(), st.Projects()

	u := &domain.User{Name: "alice", Email: "alice@example.com"}
	require.NoError(t, users.Create(ctx, u))
	p := &domain.Project{Name: "apollo"}
	require.NoError(t, projects.Create(ctx, p))

	require.NoError(t, projects.AssignUser(ctx, p.ID, u.ID))
	require.NoError(t, projects.AssignUser(ctx, p.ID, u.ID))
	got, err := projects.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Users, 1)

	require.NoError(t, projects.RemoveUser(ctx, p.ID, u.ID))
	got, err = projects.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Users)

	assert.ErrorIs(t, projects.AssignUser(ctx, 99, u.ID), domain.ErrNotFound)
	assert.ErrorIs(t, projects.AssignUser(ctx, p.ID, 99), domain.ErrNotFound)
	assert.ErrorIs(t, projects.RemoveUser(ctx, 99, u.ID), domain.ErrNotFound)
}

func TestProjectDeleteIsIdempotent(t *testing.T) {
	repo := NewStore().Projects()
	ctx := context.Background()

	p := &domain.Project{Name: "apollo"}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))
	require.NoError(t, repo.Delete(ctx, p.ID))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
