package student

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is a slice-backed Repository for contract tests.
type fakeRepo struct {
	students []*Student
}

func (r *fakeRepo) Insert(_ context.Context, s *Student) error {
	r.students = append(r.students, s.Clone())
	return nil
}

func (r *fakeRepo) RemoveAt(_ context.Context, index int) (*Student, error) {
	if index < 0 || index >= len(r.students) {
		return nil, shared.ErrIndexOutOfRange
	}
	removed := r.students[index]
	r.students = append(r.students[:index], r.students[index+1:]...)
	return removed, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*Student, error) {
	out := make([]*Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (r *fakeRepo) Len(_ context.Context) (int, error) {
	return len(r.students), nil
}

// seqIDs generates deterministic IDs for tests.
type seqIDs struct {
	next int
}

func (g *seqIDs) GenerateID() string {
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}

// recordingBus captures published events.
type recordingBus struct {
	events []shared.Event
}

func (b *recordingBus) Publish(event shared.Event) error {
	b.events = append(b.events, event)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeRepo, *recordingBus) {
	t.Helper()
	repo := &fakeRepo{}
	bus := &recordingBus{}
	svc, err := NewService(repo, &seqIDs{}, bus)
	require.NoError(t, err)
	return svc, repo, bus
}

func TestNewService_NilDependencies(t *testing.T) {
	_, err := NewService(nil, &seqIDs{}, nil)
	assert.ErrorIs(t, err, shared.ErrNilDependency)

	_, err = NewService(&fakeRepo{}, nil, nil)
	assert.ErrorIs(t, err, shared.ErrNilDependency)
}

func TestAdd_AppendsToEnd(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Aidos", "Bella", "Chingiz"} {
		st, err := svc.Add(ctx, name)
		require.NoError(t, err)
		assert.NotEmpty(t, st.ID)

		roster, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, name, roster[len(roster)-1].Name.String())
	}

	names, err := svc.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aidos", "Bella", "Chingiz"}, names)
}

func TestAdd_TrimsWhitespace(t *testing.T) {
	svc, _, _ := newTestService(t)

	st, err := svc.Add(context.Background(), "  Aidos  ")
	require.NoError(t, err)
	assert.Equal(t, "Aidos", st.Name.String())
}

func TestAdd_RejectsInvalidNames(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		label string
		name  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"control character", "Ai\x00dos"},
		{"too long", strings.Repeat("a", MaxNameLength+1)},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			_, err := svc.Add(ctx, tc.name)
			assert.ErrorIs(t, err, shared.ErrInvalidStudentName)
		})
	}

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestDelete_RemovesAtIndex(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Aidos", "Bella", "Chingiz"} {
		_, err := svc.Add(ctx, name)
		require.NoError(t, err)
	}

	removed, err := svc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Bella", removed.Name.String())

	names, err := svc.Names(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aidos", "Chingiz"}, names)
}

func TestDelete_OutOfRangeIsExplicitError(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Aidos")
	require.NoError(t, err)

	for _, index := range []int{-1, 1, 100} {
		t.Run(fmt.Sprintf("index %d", index), func(t *testing.T) {
			_, err := svc.Delete(ctx, index)
			assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
			assert.ErrorIs(t, err, shared.ErrOutOfRange)
		})
	}

	// The roster is untouched by failed deletes.
	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGet_ReturnsDefensiveCopy(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Aidos")
	require.NoError(t, err)

	roster, err := svc.Get(ctx)
	require.NoError(t, err)
	roster[0].Name = "Mutated"

	fresh, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aidos", fresh[0].Name.String())
}

func TestService_PublishesRosterEvents(t *testing.T) {
	svc, _, bus := newTestService(t)
	ctx := context.Background()

	st, err := svc.Add(ctx, "Aidos")
	require.NoError(t, err)
	_, err = svc.Delete(ctx, 0)
	require.NoError(t, err)

	require.Len(t, bus.events, 2)

	enrolled := bus.events[0]
	assert.Equal(t, shared.EventStudentEnrolled, enrolled.EventType())
	assert.Equal(t, st.ID, enrolled.AggregateID())
	assert.Equal(t, "Aidos", enrolled.Payload()["name"])

	removed := bus.events[1]
	assert.Equal(t, shared.EventStudentRemoved, removed.EventType())
	assert.Equal(t, st.ID, removed.AggregateID())
	assert.Equal(t, 0, removed.Payload()["index"])
}
