package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"otigox-task/internal/domain"
	"otigox-task/internal/repo/mem"
	"otigox-task/internal/service"
)

type projectFixture struct {
	users    *service.UserService
	projects *service.ProjectService
}

func newProjectFixture() projectFixture {
	st := mem.NewStore()
	return projectFixture{
		users:    service.NewUserService(st.Users()),
		projects: service.NewProjectService(st.Projects()),
	}
}

func TestProjectServiceCreateStartsEmpty(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	p, err := f.projects.Create(ctx, "apollo", strptr("moon landing"))
	require.NoError(t, err)
	assert.Positive(t, p.ID)
	assert.Equal(t, "moon landing", p.Description)
	assert.NotNil(t, p.Users)
	assert.Empty(t, p.Users)

	// description is optional
	q, err := f.projects.Create(ctx, "gemini", nil)
	require.NoError(t, err)
	assert.Empty(t, q.Description)
}

func TestProjectServiceDuplicateName(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()

	_, err := f.projects.Create(ctx, "apollo", nil)
	require.NoError(t, err)
	_, err = f.projects.Create(ctx, "apollo", nil)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Error(), "unique")
}

func TestProjectServiceAssignAndGet(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	u, err := f.users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	p, err := f.projects.Create(ctx, "apollo", nil)
	require.NoError(t, err)

	require.NoError(t, f.projects.Assign(ctx, p.ID, u.ID))
	require.NoError(t, f.projects.Assign(ctx, p.ID, u.ID)) // idempotent

	got, err := f.projects.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.True(t, u.Equal(got.Users[0]))

	assert.ErrorIs(t, f.projects.Assign(ctx, 999, u.ID), domain.ErrNotFound)
	assert.ErrorIs(t, f.projects.Assign(ctx, p.ID, 999), domain.ErrNotFound)
}

func TestProjectServiceRemove(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	a, err := f.users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	b, err := f.users.Create(ctx, "bob", "bob@example.com")
	require.NoError(t, err)
	p, err := f.projects.Create(ctx, "apollo", nil)
	require.NoError(t, err)
	require.NoError(t, f.projects.Assign(ctx, p.ID, a.ID))
	require.NoError(t, f.projects.Assign(ctx, p.ID, b.ID))

	require.NoError(t, f.projects.Remove(ctx, p.ID, a.ID))
	got, err := f.projects.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Users, 1)
	assert.True(t, b.Equal(got.Users[0]))

	// removing again is a no-op
	require.NoError(t, f.projects.Remove(ctx, p.ID, a.ID))
	got, err = f.projects.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, got.Users, 1)
}

func TestProjectServiceUpdateMergesAndKeepsUsers(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	u, err := f.users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	p, err := f.projects.Create(ctx, "apollo", strptr("old"))
	require.NoError(t, err)
	require.NoError(t, f.projects.Assign(ctx, p.ID, u.ID))

	got, err := f.projects.Update(ctx, p.ID, nil, strptr("new"))
	require.NoError(t, err)
	assert.Equal(t, "apollo", got.Name)
	assert.Equal(t, "new", got.Description)
	require.Len(t, got.Users, 1)

	got, err = f.projects.Update(ctx, p.ID, strptr("artemis"), nil)
	require.NoError(t, err)
	assert.Equal(t, "artemis", got.Name)
	assert.Equal(t, "new", got.Description)
	assert.Len(t, got.Users, 1)

	_, err = f.projects.Update(ctx, 999, strptr("ghost"), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectServiceListHidesUsers(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	u, err := f.users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	p, err := f.projects.Create(ctx, "apollo", nil)
	require.NoError(t, err)
	require.NoError(t, f.projects.Assign(ctx, p.ID, u.ID))

	got, err := f.projects.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Users)
	assert.Empty(t, got[0].Users)
}

func TestProjectServiceFindByName(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	_, err := f.projects.Create(ctx, "apollo", nil)
	require.NoError(t, err)

	got, err := f.projects.FindByName(ctx, "apollo")
	require.NoError(t, err)
	assert.Equal(t, "apollo", got.Name)

	_, err = f.projects.FindByName(ctx, "Apollo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectServiceDeleteIsSilent(t *testing.T) {
	f := newProjectFixture()
	ctx := context.Background()
	u, err := f.users.Create(ctx, "alice", "alice@example.com")
	require.NoError(t, err)
	p, err := f.projects.Create(ctx, "apollo", nil)
	require.NoError(t, err)
	require.NoError(t, f.projects.Assign(ctx, p.ID, u.ID))

	require.NoError(t, f.projects.Delete(ctx, p.ID))
	_, err = f.projects.Get(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// the assigned user survives, and a repeat delete succeeds
	_, err = f.users.Get(ctx, u.ID)
	require.NoError(t, err)
	require.NoError(t, f.projects.Delete(ctx, p.ID))
}
