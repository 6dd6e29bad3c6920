package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/alem-hub/solid-go/internal/domain/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStudent(t *testing.T, id, name string) *student.Student {
	t.Helper()
	s, err := student.NewStudent(id, student.Name(name))
	require.NoError(t, err)
	return s
}

func TestInsertAndList_PreservesOrder(t *testing.T) {
	repo := NewStudentRepository()
	ctx := context.Background()

	for i, name := range []string{"Aidos", "Bella", "Chingiz"} {
		require.NoError(t, repo.Insert(ctx, mustStudent(t, fmt.Sprintf("id-%d", i), name)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Aidos", list[0].Name.String())
	assert.Equal(t, "Bella", list[1].Name.String())
	assert.Equal(t, "Chingiz", list[2].Name.String())

	n, err := repo.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRemoveAt(t *testing.T) {
	repo := NewStudentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, mustStudent(t, "id-1", "Aidos")))
	require.NoError(t, repo.Insert(ctx, mustStudent(t, "id-2", "Bella")))

	removed, err := repo.RemoveAt(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "Aidos", removed.Name.String())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bella", list[0].Name.String())
}

func TestRemoveAt_OutOfRange(t *testing.T) {
	repo := NewStudentRepository()
	ctx := context.Background()

	_, err := repo.RemoveAt(ctx, 0)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)

	require.NoError(t, repo.Insert(ctx, mustStudent(t, "id-1", "Aidos")))

	_, err = repo.RemoveAt(ctx, -1)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
	_, err = repo.RemoveAt(ctx, 1)
	assert.ErrorIs(t, err, shared.ErrIndexOutOfRange)
}

func TestList_ReturnsCopies(t *testing.T) {
	repo := NewStudentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, mustStudent(t, "id-1", "Aidos")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = "Mutated"

	fresh, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Aidos", fresh[0].Name.String())
}

func TestCancelledContext(t *testing.T) {
	repo := NewStudentRepository()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Insert(ctx, mustStudent(t, "id-1", "Aidos")), context.Canceled)
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentInserts(t *testing.T) {
	repo := NewStudentRepository()
	ctx := context.Background()

	students := make([]*student.Student, 50)
	for i := range students {
		students[i] = mustStudent(t, fmt.Sprintf("id-%d", i), "Student")
	}

	var wg sync.WaitGroup
	for _, s := range students {
		wg.Add(1)
		go func(s *student.Student) {
			defer wg.Done()
			_ = repo.Insert(ctx, s)
		}(s)
	}
	wg.Wait()

	n, err := repo.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}
