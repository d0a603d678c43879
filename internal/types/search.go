package types

type (
	// SimplifiedHit is the compact search hit handed back to the caller.
	// It carries only what a context-limited consumer needs: the note
	// path, the relevance score, and a few short context snippets.
	// Snippets is omitted entirely for hits without matches.
	SimplifiedHit struct {
		Path     string   `json:"path"`
		Score    float64  `json:"score"`
		Snippets []string `json:"snippets,omitempty"`
	}
)
