// Package snapshot layers manifest-tracked versioning on top of a single
// translate invocation, so repeated runs against an evolving ASN.1 source
// can be diffed against their own history.
package snapshot

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"

	"github.com/cmmoran/asn1proto/pkg/action/translate"
	"github.com/cmmoran/asn1proto/pkg/config"
	"github.com/cmmoran/asn1proto/pkg/manifest"
)

// Generate renders opts and records the result in the manifest at
// manifestPath under moduleName/version, returning the rendered file path.
func Generate(opts *config.Options, manifestPath, moduleName, version string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	outFile, err := translate.Generate(opts)
	if err != nil {
		return "", err
	}

	m.AddSnapshot(manifest.Snapshot{Module: moduleName, Version: version, File: outFile})

	if err := m.Save(manifestPath); err != nil {
		return "", err
	}

	return outFile, nil
}

// List returns all snapshots recorded in the manifest.
func List(manifestPath string) (*manifest.Manifest, error) {
	return manifest.Load(manifestPath)
}

// DiffCurrentWithPrevious loads the manifest, locates the current and
// previous snapshot files, and returns a textual diff of their contents.
func DiffCurrentWithPrevious(manifestPath string) (string, error) {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return "", err
	}

	if m.CurrentVersion == "" || m.PreviousVersion == "" {
		return "", fmt.Errorf("snapshot: no current/previous snapshots recorded")
	}

	currentPath := m.SnapshotFile(m.CurrentVersion)
	previousPath := m.SnapshotFile(m.PreviousVersion)

	if currentPath == "" || previousPath == "" {
		return "", fmt.Errorf("snapshot: snapshot files not found in manifest")
	}

	current, err := os.ReadFile(currentPath)
	if err != nil {
		return "", fmt.Errorf("snapshot: read current snapshot: %w", err)
	}

	previous, err := os.ReadFile(previousPath)
	if err != nil {
		return "", fmt.Errorf("snapshot: read previous snapshot: %w", err)
	}

	return cmp.Diff(string(previous), string(current)), nil
}
