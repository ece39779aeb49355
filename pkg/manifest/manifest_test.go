package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyManifest(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Empty(t, m.Snapshots)
}

func TestAddSnapshotRotatesVersionsAndSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")

	m := &Manifest{}
	m.AddSnapshot(Snapshot{Module: "Widgets", Version: "v1", File: "v1.proto"})
	require.Equal(t, "v1", m.CurrentVersion)
	require.Empty(t, m.PreviousVersion)

	m.AddSnapshot(Snapshot{Module: "Widgets", Version: "v2", File: "v2.proto"})
	require.Equal(t, "v2", m.CurrentVersion)
	require.Equal(t, "v1", m.PreviousVersion)

	require.NoError(t, m.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "v2", loaded.CurrentVersion)
	require.Equal(t, "v1", loaded.PreviousVersion)
	require.Len(t, loaded.Snapshots, 2)
	require.Equal(t, "v1.proto", loaded.SnapshotFile("v1"))
	require.Equal(t, "v2.proto", loaded.SnapshotFile("v2"))
}

func TestAddSnapshotReplacesSameModuleVersion(t *testing.T) {
	m := &Manifest{}
	m.AddSnapshot(Snapshot{Module: "Widgets", Version: "v1", File: "old.proto"})
	m.AddSnapshot(Snapshot{Module: "Widgets", Version: "v1", File: "new.proto"})
	require.Len(t, m.Snapshots, 1)
	require.Equal(t, "new.proto", m.Snapshots[0].File)
}
