package types

// Acknowledgment records replace the raw remote response for mutating
// operations; the remote body for these carries nothing the caller needs.
type (
	// CreateAck acknowledges a created (or overwritten) note.
	CreateAck struct {
		Created string `json:"created"`
	}

	// AppendAck acknowledges an append, naming the note or periodic note
	// appended to.
	AppendAck struct {
		AppendedTo string `json:"appended_to"`
	}

	// PatchAck acknowledges a patch, naming the note and the target
	// location inside it.
	PatchAck struct {
		Patched string `json:"patched"`
		Target  string `json:"target"`
	}

	// DeleteAck acknowledges a deletion.
	DeleteAck struct {
		Deleted string `json:"deleted"`
	}
)
