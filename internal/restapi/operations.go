package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fiddeb/obsidian-local-rest-api/internal/pathenc"
	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

const (
	contentTypeMarkdown = "text/markdown"

	// acceptNoteJSON asks the API for the metadata-bearing note
	// representation (content plus frontmatter, tags and stat info).
	acceptNoteJSON = "application/vnd.olrapi.note+json"

	// DefaultContextLength is the snippet context size sent with a search
	// when the caller does not pick one.
	DefaultContextLength = 100
)

// Search runs a simple full-text search. The raw hit list comes back as the
// envelope payload; truncation and simplification are the shaper's job.
func (c *Client) Search(ctx context.Context, query string, contextLength int) types.Envelope {
	if contextLength <= 0 {
		contextLength = DefaultContextLength
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("contextLength", strconv.Itoa(contextLength))
	return c.do(ctx, http.MethodPost, "/search/simple/?"+params.Encode(), nil, nil, "")
}

// GetNote fetches a note's content and metadata.
func (c *Client) GetNote(ctx context.Context, path string) types.Envelope {
	headers := map[string]string{"Accept": acceptNoteJSON}
	return c.do(ctx, http.MethodGet, "/vault/"+pathenc.NotePath(path), nil, headers, "")
}

// ListDirectory lists a vault directory. An empty path lists the root.
func (c *Client) ListDirectory(ctx context.Context, path string) types.Envelope {
	return c.do(ctx, http.MethodGet, "/vault/"+pathenc.DirPath(path), nil, nil, "")
}

// CreateNote creates a note, fully overwriting any existing one; the
// overwrite semantics belong to the remote API.
func (c *Client) CreateNote(ctx context.Context, path, content string) types.Envelope {
	return c.do(ctx, http.MethodPut, "/vault/"+pathenc.NotePath(path), []byte(content), nil, contentTypeMarkdown)
}

// AppendNote appends content to the end of a note.
func (c *Client) AppendNote(ctx context.Context, path, content string) types.Envelope {
	return c.do(ctx, http.MethodPost, "/vault/"+pathenc.NotePath(path), []byte(content), nil, contentTypeMarkdown)
}

// PatchNote inserts or replaces content relative to a target location.
// The target travels in the Operation/Target-Type/Target headers and the
// content type follows the target kind.
func (c *Client) PatchNote(ctx context.Context, path string, target types.PatchTarget, op types.PatchOperation, content string) types.Envelope {
	headers := map[string]string{
		"Operation":   string(op),
		"Target-Type": string(target.Type),
		"Target":      target.Value,
	}
	return c.do(ctx, http.MethodPatch, "/vault/"+pathenc.NotePath(path), []byte(content), headers, target.Type.ContentType())
}

// AppendPeriodic appends content to a periodic note. A nil date lets the
// remote API resolve the current period; an explicit date selects the
// period containing it.
func (c *Client) AppendPeriodic(ctx context.Context, period types.Period, date *types.PeriodicDate, content string) types.Envelope {
	path := fmt.Sprintf("/periodic/%s/", period)
	if date != nil {
		path = fmt.Sprintf("/periodic/%s/%d/%d/%d/", period, date.Year, date.Month, date.Day)
	}
	return c.do(ctx, http.MethodPost, path, []byte(content), nil, contentTypeMarkdown)
}

// DeleteNote deletes a note.
func (c *Client) DeleteNote(ctx context.Context, path string) types.Envelope {
	return c.do(ctx, http.MethodDelete, "/vault/"+pathenc.NotePath(path), nil, nil, "")
}
