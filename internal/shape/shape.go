// Package shape post-processes successful result envelopes so payloads stay
// compact for a context-limited consumer. Failure envelopes always pass
// through untouched.
package shape

import (
	"unicode/utf8"

	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

const (
	// DefaultMaxResults caps the shaped hit list when the caller does not
	// pick a maximum.
	DefaultMaxResults = 10

	maxSnippets      = 3
	snippetLimit     = 200
	truncationMarker = "\n...[truncated]"
)

// Search truncates a raw search hit list to maxResults entries and rebuilds
// each retained hit as a compact path/score/snippets record. Hits without
// matches keep no snippets field at all. Payloads that are not hit lists
// pass through unchanged.
func Search(env types.Envelope, maxResults int) types.Envelope {
	if !env.OK {
		return env
	}
	hits, ok := env.Data.([]any)
	if !ok {
		return env
	}

	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	simplified := make([]types.SimplifiedHit, 0, len(hits))
	for _, raw := range hits {
		hit, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		entry := types.SimplifiedHit{}
		if filename, ok := hit["filename"].(string); ok {
			entry.Path = filename
		}
		if score, ok := hit["score"].(float64); ok {
			entry.Score = score
		}
		if matches, ok := hit["matches"].([]any); ok {
			for _, m := range matches {
				if len(entry.Snippets) == maxSnippets {
					break
				}
				match, ok := m.(map[string]any)
				if !ok {
					continue
				}
				snippet, _ := match["context"].(string)
				entry.Snippets = append(entry.Snippets, truncate(snippet, snippetLimit))
			}
		}
		simplified = append(simplified, entry)
	}

	env.Data = simplified
	return env
}

// NoteContent applies the metadata-only and max-chars rules to a note
// payload. Metadata-only strips the content field; maxChars > 0 truncates
// content longer than the limit and appends a truncation marker. Content
// already within the limit is never altered.
func NoteContent(env types.Envelope, metadataOnly bool, maxChars int) types.Envelope {
	if !env.OK {
		return env
	}
	note, ok := env.Data.(map[string]any)
	if !ok {
		return env
	}

	if metadataOnly {
		delete(note, "content")
		return env
	}

	if maxChars > 0 {
		if content, ok := note["content"].(string); ok && utf8.RuneCountInString(content) > maxChars {
			note["content"] = truncate(content, maxChars) + truncationMarker
		}
	}
	return env
}

// truncate cuts s to at most limit characters. Limits count characters, not
// bytes, so multibyte content is never cut mid-rune.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}

// Ack replaces a successful mutating operation's payload with a small
// acknowledgment record; the remote response body for those operations
// carries nothing the caller needs.
func Ack(env types.Envelope, ack any) types.Envelope {
	if !env.OK {
		return env
	}
	env.Data = ack
	return env
}
