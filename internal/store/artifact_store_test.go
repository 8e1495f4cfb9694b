// internal/store/artifact_store_test.go
package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gravlab/internal/domain"
	"gravlab/internal/store"
)

func TestArtifact_WriteAndDigest(t *testing.T) {
	dir := t.TempDir()

	var as domain.ArtifactStore = store.NewArtifactFileStore(dir)

	data := []byte("delay table\n")
	art, err := as.WriteArtifact("results.txt", data)
	if err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	if art.Name != "results.txt" {
		t.Fatalf("name = %q", art.Name)
	}
	if art.Bytes != int64(len(data)) {
		t.Fatalf("bytes = %d, want %d", art.Bytes, len(data))
	}
	if len(art.Digest) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(art.Digest))
	}

	onDisk, err := os.ReadFile(filepath.Join(dir, "results.txt"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(onDisk) != string(data) {
		t.Fatalf("content mismatch after write")
	}

	same, err := as.WriteArtifact("copy.txt", data)
	if err != nil {
		t.Fatalf("write copy: %v", err)
	}
	if same.Digest != art.Digest {
		t.Fatalf("same content produced different digests")
	}

	other, err := as.WriteArtifact("other.txt", []byte("different"))
	if err != nil {
		t.Fatalf("write other: %v", err)
	}
	if other.Digest == art.Digest {
		t.Fatalf("different content produced equal digests")
	}
}

func TestManifest_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	var as domain.ArtifactStore = store.NewArtifactFileStore(dir)

	m := domain.Manifest{
		RunID:      "run-1",
		CreatedUTC: 1700000000,
		Tool:       "gravlab",
		Version:    "0.1.0",
		Command:    "dispersion",
		Artifacts:  []domain.Artifact{{Name: "a.png", Bytes: 3, Digest: "abc"}},
	}
	if err := as.WriteManifest(m); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	got, found, err := as.ReadManifest()
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	if !found {
		t.Fatal("manifest not found after write")
	}
	if got.RunID != m.RunID || got.Command != m.Command {
		t.Fatalf("manifest mismatch: got %+v", got)
	}
	if len(got.Artifacts) != 1 || got.Artifacts[0].Name != "a.png" {
		t.Fatalf("artifact list mismatch: %+v", got.Artifacts)
	}
}

func TestManifest_MissingIsNotError(t *testing.T) {
	var as domain.ArtifactStore = store.NewArtifactFileStore(t.TempDir())

	_, found, err := as.ReadManifest()
	if err != nil {
		t.Fatalf("read missing manifest: %v", err)
	}
	if found {
		t.Fatal("found manifest in empty dir")
	}
}

func TestLoadScenario_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	doc := []byte("distance_mpc: 100\nmasses_ev: [1.0e-22]\nwaveform_demo:\n  mass_ev: 5.0e-23\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	sc, err := store.LoadScenario(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if sc.DistanceMpc != 100 {
		t.Fatalf("distance = %v, want 100", sc.DistanceMpc)
	}
	if len(sc.MassesEV) != 1 || sc.MassesEV[0] != 1e-22 {
		t.Fatalf("masses = %v", sc.MassesEV)
	}
	if sc.Demo.MassEV != 5e-23 {
		t.Fatalf("demo mass = %v", sc.Demo.MassEV)
	}
	// Untouched fields keep their defaults.
	if sc.FMaxHz != 500 || sc.Demo.FHighHz != 200 {
		t.Fatalf("defaults lost: f_max=%v f_high=%v", sc.FMaxHz, sc.Demo.FHighHz)
	}
}

func TestLoadScenario_InvalidFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	if err := os.WriteFile(path, []byte("distance_mpc: -5\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, err := store.LoadScenario(path)
	if !errors.Is(err, domain.ErrInvalidScenario) {
		t.Fatalf("err = %v, want ErrInvalidScenario", err)
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	if _, err := store.LoadScenario(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing scenario file")
	}
}
