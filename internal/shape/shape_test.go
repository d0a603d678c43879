package shape

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

func rawHits(count, matchesPerHit, contextLen int) []any {
	hits := make([]any, 0, count)
	for i := range count {
		matches := make([]any, 0, matchesPerHit)
		for range matchesPerHit {
			matches = append(matches, map[string]any{
				"context": strings.Repeat("x", contextLen),
			})
		}
		hits = append(hits, map[string]any{
			"filename": fmt.Sprintf("notes/hit-%d.md", i),
			"score":    4.2,
			"matches":  matches,
		})
	}
	return hits
}

func TestSearchTruncatesAndSimplifies(t *testing.T) {
	env := Search(types.Success(rawHits(50, 5, 300)), 10)

	if !env.OK {
		t.Fatalf("expected success envelope, got error %q", env.Error)
	}
	hits, ok := env.Data.([]types.SimplifiedHit)
	if !ok {
		t.Fatalf("expected []types.SimplifiedHit, got %T", env.Data)
	}
	if len(hits) != 10 {
		t.Fatalf("expected 10 hits, got %d", len(hits))
	}
	for _, hit := range hits {
		if hit.Path == "" {
			t.Error("expected path to be set")
		}
		if hit.Score != 4.2 {
			t.Errorf("expected score 4.2, got %v", hit.Score)
		}
		if len(hit.Snippets) != 3 {
			t.Errorf("expected 3 snippets, got %d", len(hit.Snippets))
		}
		for _, s := range hit.Snippets {
			if len(s) != 200 {
				t.Errorf("expected snippet of 200 chars, got %d", len(s))
			}
		}
	}
}

func TestSearchHitWithoutMatchesOmitsSnippets(t *testing.T) {
	raw := []any{map[string]any{"filename": "a.md", "score": 1.0}}

	env := Search(types.Success(raw), 10)

	hits := env.Data.([]types.SimplifiedHit)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Snippets != nil {
		t.Errorf("expected no snippets, got %v", hits[0].Snippets)
	}

	out, err := json.Marshal(hits[0])
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "snippets") {
		t.Errorf("expected snippets field to be omitted, got %s", out)
	}
}

func TestSearchMissingFieldsUseDefaults(t *testing.T) {
	raw := []any{map[string]any{}}

	env := Search(types.Success(raw), 10)

	hits := env.Data.([]types.SimplifiedHit)
	if hits[0].Path != "" || hits[0].Score != 0 {
		t.Errorf("expected zero defaults, got %+v", hits[0])
	}
}

func TestSearchDefaultMaxResults(t *testing.T) {
	env := Search(types.Success(rawHits(50, 0, 0)), 0)

	hits := env.Data.([]types.SimplifiedHit)
	if len(hits) != DefaultMaxResults {
		t.Errorf("expected %d hits, got %d", DefaultMaxResults, len(hits))
	}
}

func TestSearchNonListPayloadPassesThrough(t *testing.T) {
	env := Search(types.Success("unexpected"), 10)

	if env.Data != "unexpected" {
		t.Errorf("expected payload to pass through, got %v", env.Data)
	}
}

func TestSearchFailurePassesThrough(t *testing.T) {
	in := types.FailureCode("nope", 502)

	env := Search(in, 10)

	if env != in {
		t.Errorf("expected failure to pass through unchanged, got %+v", env)
	}
}

func TestNoteContentMetadataOnly(t *testing.T) {
	env := types.Success(map[string]any{"content": "hello", "tags": []any{"x"}})

	env = NoteContent(env, true, 0)

	note := env.Data.(map[string]any)
	if _, ok := note["content"]; ok {
		t.Error("expected content to be stripped")
	}
	if len(note["tags"].([]any)) != 1 {
		t.Error("expected metadata to survive")
	}
}

func TestNoteContentTruncation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		maxChars int
		want     string
	}{
		{
			name:     "longer than limit",
			content:  "hello world",
			maxChars: 5,
			want:     "hello" + truncationMarker,
		},
		{
			name:     "shorter than limit is untouched",
			content:  "hi",
			maxChars: 5,
			want:     "hi",
		},
		{
			name:     "exactly at limit is untouched",
			content:  "hello",
			maxChars: 5,
			want:     "hello",
		},
		{
			name:     "no limit",
			content:  "hello world",
			maxChars: 0,
			want:     "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := types.Success(map[string]any{"content": tt.content})

			env = NoteContent(env, false, tt.maxChars)

			got := env.Data.(map[string]any)["content"]
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNoteContentTruncationCountsCharacters(t *testing.T) {
	content := strings.Repeat("é", 100) // 100 characters, 200 bytes

	env := NoteContent(types.Success(map[string]any{"content": content}), false, 150)
	if got := env.Data.(map[string]any)["content"]; got != content {
		t.Errorf("content within the character limit was altered: %q", got)
	}

	env = NoteContent(types.Success(map[string]any{"content": content}), false, 40)
	got := env.Data.(map[string]any)["content"].(string)
	want := strings.Repeat("é", 40) + truncationMarker
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !utf8.ValidString(got) {
		t.Error("truncated content is not valid UTF-8")
	}
}

func TestSearchSnippetTruncationCountsCharacters(t *testing.T) {
	raw := []any{map[string]any{
		"filename": "a.md",
		"score":    1.0,
		"matches":  []any{map[string]any{"context": strings.Repeat("ü", 300)}},
	}}

	env := Search(types.Success(raw), 10)

	hits := env.Data.([]types.SimplifiedHit)
	snippet := hits[0].Snippets[0]
	if got := utf8.RuneCountInString(snippet); got != 200 {
		t.Errorf("expected 200 characters, got %d", got)
	}
	if !utf8.ValidString(snippet) {
		t.Error("snippet is not valid UTF-8")
	}
}

func TestNoteContentTruncationIsIdempotent(t *testing.T) {
	env := types.Success(map[string]any{"content": strings.Repeat("a", 100)})

	env = NoteContent(env, false, 150)
	first := env.Data.(map[string]any)["content"].(string)
	env = NoteContent(env, false, 150)
	second := env.Data.(map[string]any)["content"].(string)

	if first != second || first != strings.Repeat("a", 100) {
		t.Errorf("truncation of short content altered it: %q -> %q", first, second)
	}
}

func TestNoteContentNonMapPayloadPassesThrough(t *testing.T) {
	env := NoteContent(types.Success("raw body"), true, 5)

	if env.Data != "raw body" {
		t.Errorf("expected raw payload to pass through, got %v", env.Data)
	}
}

func TestAckReplacesPayload(t *testing.T) {
	env := Ack(types.Success(map[string]any{"noise": true}), types.CreateAck{Created: "a.md"})

	ack, ok := env.Data.(types.CreateAck)
	if !ok || ack.Created != "a.md" {
		t.Errorf("expected create ack, got %v", env.Data)
	}
}

func TestAckLeavesFailureAlone(t *testing.T) {
	in := types.FailureCode("denied", 401)

	env := Ack(in, types.DeleteAck{Deleted: "a.md"})

	if env != in {
		t.Errorf("expected failure to pass through unchanged, got %+v", env)
	}
}
