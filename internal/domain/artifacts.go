package domain

// ToolName appears in every manifest's Tool field.
const ToolName = "gravlab"

// RunID identifies one invocation; a random UUID.
type RunID string

// Digest is the lowercase hex BLAKE2b-256 of an artifact's contents.
type Digest string

// Short returns the leading 12 hex characters, enough for display.
func (d Digest) Short() string {
	if len(d) < 12 {
		return string(d)
	}
	return string(d[:12])
}

// Artifact describes one file written by a run.
type Artifact struct {
	Name   string `json:"name"`
	Bytes  int64  `json:"bytes"`
	Digest Digest `json:"digest"`
}

// Manifest records the provenance of a run: what produced which files,
// from which inputs. Exactly one of Scenario or Order is set, depending
// on the subcommand.
type Manifest struct {
	RunID      RunID      `json:"run_id"`
	CreatedUTC int64      `json:"created_utc"`
	Tool       string     `json:"tool"`
	Version    string     `json:"version"`
	Command    string     `json:"command"`
	Scenario   *Scenario  `json:"scenario,omitempty"`
	Order      int        `json:"order,omitempty"`
	Artifacts  []Artifact `json:"artifacts"`
}
