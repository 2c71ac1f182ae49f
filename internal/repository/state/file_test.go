package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/notes-release/internal/domain/layout"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	s, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, s)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns an equal state.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "nested", "layout-state.json")
	repo := NewFileRepository(file)

	want := &domain.State{
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
		LastActor: &domain.Actor{
			Hostname: "design-laptop",
			Username: "o.shokin",
		},
		SidebarOpen: true,
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.SidebarOpen, got.SidebarOpen)
	require.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
	require.Equal(t, want.LastActor, got.LastActor)

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_Corrupted rejects files that are not a layout snapshot.
func TestFileRepository_Corrupted(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "layout-state.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"theme":"dark"}`), 0o600))

	_, err := NewFileRepository(file).Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
