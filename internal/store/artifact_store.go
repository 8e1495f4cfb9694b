package store

import (
	"encoding/hex"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/blake2b"

	"gravlab/internal/domain"
)

const manifestFile = "manifest.json"

// ArtifactFileStore persists run artifacts and their manifest to a single
// directory. The directory must exist; the CLI creates it on startup.
type ArtifactFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewArtifactFileStore returns an ArtifactFileStore rooted at dir.
func NewArtifactFileStore(dir string) *ArtifactFileStore {
	return &ArtifactFileStore{dir: dir}
}

// WriteArtifact stores data under name and returns the artifact record
// with its content digest.
func (s *ArtifactFileStore) WriteArtifact(name string, data []byte) (domain.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(filepath.Join(s.dir, name), data, 0o600); err != nil {
		return domain.Artifact{}, err
	}
	return domain.Artifact{
		Name:   name,
		Bytes:  int64(len(data)),
		Digest: contentDigest(data),
	}, nil
}

// WriteManifest records the run's provenance document.
func (s *ArtifactFileStore) WriteManifest(m domain.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(filepath.Join(s.dir, manifestFile), m, 0o600)
}

// ReadManifest loads the manifest of the last run, if any.
func (s *ArtifactFileStore) ReadManifest() (domain.Manifest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var m domain.Manifest
	if err := readJSON(filepath.Join(s.dir, manifestFile), &m); err != nil {
		return domain.Manifest{}, false, err
	}
	if m.RunID == "" {
		return domain.Manifest{}, false, nil
	}
	return m, true, nil
}

// Dir returns the output directory.
func (s *ArtifactFileStore) Dir() string { return s.dir }

// contentDigest is the lowercase hex BLAKE2b-256 of data.
func contentDigest(data []byte) domain.Digest {
	sum := blake2b.Sum256(data)
	return domain.Digest(hex.EncodeToString(sum[:]))
}

// Compile-time assertion that ArtifactFileStore implements domain.ArtifactStore.
var _ domain.ArtifactStore = (*ArtifactFileStore)(nil)
