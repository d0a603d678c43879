package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

type (
	// SearchInput contains parameters for searching the vault.
	SearchInput struct {
		Query         string `json:"query" jsonschema:"Search query"`
		MaxResults    int    `json:"maxResults,omitempty" jsonschema:"Maximum number of results (default: 10)"`
		ContextLength int    `json:"contextLength,omitempty" jsonschema:"Context length around matches (default: 100)"`
	}

	// SearchOutput contains simplified search results.
	SearchOutput struct {
		Results []types.SimplifiedHit `json:"results"`
	}

	// GetInput contains parameters for reading a note.
	GetInput struct {
		Path         string `json:"path" jsonschema:"Path to the note relative to vault root"`
		MetadataOnly bool   `json:"metadataOnly,omitempty" jsonschema:"Return only metadata, not content (default: false)"`
		MaxChars     int    `json:"maxChars,omitempty" jsonschema:"Truncate content to N characters (default: no limit)"`
	}

	// GetOutput contains the note payload. Note holds the decoded note
	// record; Raw carries the body verbatim when it was not JSON.
	GetOutput struct {
		Note map[string]any `json:"note,omitempty"`
		Raw  string         `json:"raw,omitempty"`
	}

	// ListInput contains parameters for listing a directory.
	ListInput struct {
		Path string `json:"path,omitempty" jsonschema:"Directory path relative to vault root (empty for the root)"`
	}

	// ListOutput contains the entries of a directory.
	ListOutput struct {
		Entries []string `json:"entries"`
	}

	// CreateInput contains parameters for creating a note.
	CreateInput struct {
		Path        string         `json:"path" jsonschema:"Path for the new note"`
		Content     string         `json:"content" jsonschema:"Note content"`
		Frontmatter map[string]any `json:"frontmatter,omitempty" jsonschema:"Frontmatter object prepended as a YAML block (optional)"`
	}

	// CreateOutput contains the result of creating a note.
	CreateOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
	}

	// AppendInput contains parameters for appending to a note.
	AppendInput struct {
		Path    string `json:"path" jsonschema:"Path to the note relative to vault root"`
		Content string `json:"content" jsonschema:"Content to append"`
	}

	// AppendOutput contains the result of appending to a note.
	AppendOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
	}

	// PatchInput contains parameters for patching a note. Exactly one of
	// heading, frontmatter or block must be set.
	PatchInput struct {
		Path        string `json:"path" jsonschema:"Path to the note relative to vault root"`
		Heading     string `json:"heading,omitempty" jsonschema:"Target heading (use :: for nested)"`
		Frontmatter string `json:"frontmatter,omitempty" jsonschema:"Target frontmatter field"`
		Block       string `json:"block,omitempty" jsonschema:"Target block reference"`
		Operation   string `json:"operation" jsonschema:"Patch operation: append, prepend or replace"`
		Content     string `json:"content" jsonschema:"Content to insert"`
	}

	// PatchOutput contains the result of patching a note.
	PatchOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
		Target  string `json:"target"`
	}

	// DailyInput contains parameters for appending to a periodic note.
	DailyInput struct {
		Period  string `json:"period,omitempty" jsonschema:"Period type: daily, weekly, monthly, quarterly or yearly (default: daily)"`
		Date    string `json:"date,omitempty" jsonschema:"Explicit date as YYYY-MM-DD (default: current period)"`
		Content string `json:"content" jsonschema:"Content to append"`
	}

	// DailyOutput contains the result of appending to a periodic note.
	DailyOutput struct {
		Success bool   `json:"success"`
		Period  string `json:"period"`
	}

	// DeleteInput contains parameters for deleting a note.
	DeleteInput struct {
		Path string `json:"path" jsonschema:"Path to the note relative to vault root"`
	}

	// DeleteOutput contains the result of deleting a note.
	DeleteOutput struct {
		Success bool   `json:"success"`
		Path    string `json:"path"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Full-text search across the vault. Returns compact hits with path, relevance score and up to 3 short context snippets each.",
	}, handleSearch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get",
		Description: "Read a note. Returns content plus metadata (frontmatter, tags, stat info). Supports metadata-only mode and content truncation.",
	}, handleGet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List the files and directories under a vault directory. An empty path lists the vault root.",
	}, handleList)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create",
		Description: "Create or fully overwrite a note with the given content and optional frontmatter.",
	}, handleCreate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "append",
		Description: "Append content to the end of a note.",
	}, handleAppend)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "patch",
		Description: "Insert or replace content relative to a heading, frontmatter field or block reference inside a note. Set exactly one target.",
	}, handlePatch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "daily",
		Description: "Append content to a periodic note (daily by default). Without an explicit date the current period is used.",
	}, handleDaily)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete",
		Description: "Delete a note from the vault.",
	}, handleDelete)
}
