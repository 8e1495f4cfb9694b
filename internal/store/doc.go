// Package store provides file-based persistence for run outputs.
//
// It contains the concrete implementation of the domain storage
// interfaces, serialising documents as JSON on disk. All methods are
// concurrency-safe via internal locking. Files live under the configured
// output directory.
//
// The package covers:
//   - Run artifacts with content digests (ArtifactFileStore)
//   - The provenance manifest (WriteManifest / ReadManifest)
//   - YAML scenario files (LoadScenario)
package store
