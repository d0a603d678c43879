package types

type (
	// SearchCommand requests a full-text search across the vault.
	SearchCommand struct {
		Query         string `json:"query"`
		MaxResults    int    `json:"maxResults,omitempty"`
		ContextLength int    `json:"contextLength,omitempty"`
	}

	// GetNoteCommand requests a single note's content and metadata.
	GetNoteCommand struct {
		Path         string `json:"path"`
		MetadataOnly bool   `json:"metadataOnly,omitempty"`
		MaxChars     int    `json:"maxChars,omitempty"`
	}

	// ListCommand requests a directory listing. An empty path lists the
	// vault root.
	ListCommand struct {
		Path string `json:"path,omitempty"`
	}

	// CreateCommand creates or fully overwrites a note.
	CreateCommand struct {
		Path    string `json:"path"`
		Content string `json:"content"`
	}

	// AppendCommand appends content to the end of a note.
	AppendCommand struct {
		Path    string `json:"path"`
		Content string `json:"content"`
	}

	// PatchCommand inserts or replaces content relative to a target
	// location inside a note.
	PatchCommand struct {
		Path      string         `json:"path"`
		Target    PatchTarget    `json:"target"`
		Operation PatchOperation `json:"operation"`
		Content   string         `json:"content"`
	}

	// PeriodicCommand appends content to a periodic note. Date is an
	// optional explicit YYYY-MM-DD string; when empty the remote API
	// resolves the current period.
	PeriodicCommand struct {
		Period  Period `json:"period"`
		Date    string `json:"date,omitempty"`
		Content string `json:"content"`
	}

	// DeleteCommand deletes a note.
	DeleteCommand struct {
		Path string `json:"path"`
	}
)
