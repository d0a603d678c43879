// Package router dispatches typed commands to the REST client and applies
// the per-operation result shaping. It is the single entry point both the
// CLI subcommands and the MCP tool handlers go through, so the two surfaces
// cannot drift apart.
package router

import (
	"context"
	"fmt"
	"time"

	"github.com/fiddeb/obsidian-local-rest-api/internal/restapi"
	"github.com/fiddeb/obsidian-local-rest-api/internal/shape"
	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

// Router routes commands to a vault client. Commands arrive already
// validated: mutually exclusive choices (patch target, content source) are
// the caller's responsibility.
type Router struct {
	client *restapi.Client
}

// New creates a router over the given client.
func New(client *restapi.Client) *Router {
	return &Router{client: client}
}

// Search runs a search and simplifies the hit list.
func (r *Router) Search(ctx context.Context, cmd types.SearchCommand) types.Envelope {
	env := r.client.Search(ctx, cmd.Query, cmd.ContextLength)
	return shape.Search(env, cmd.MaxResults)
}

// GetNote fetches a note, optionally stripping content or truncating it.
func (r *Router) GetNote(ctx context.Context, cmd types.GetNoteCommand) types.Envelope {
	env := r.client.GetNote(ctx, cmd.Path)
	return shape.NoteContent(env, cmd.MetadataOnly, cmd.MaxChars)
}

// ListDirectory lists a directory. The listing passes through unshaped.
func (r *Router) ListDirectory(ctx context.Context, cmd types.ListCommand) types.Envelope {
	return r.client.ListDirectory(ctx, cmd.Path)
}

// CreateNote creates or overwrites a note.
func (r *Router) CreateNote(ctx context.Context, cmd types.CreateCommand) types.Envelope {
	env := r.client.CreateNote(ctx, cmd.Path, cmd.Content)
	return shape.Ack(env, types.CreateAck{Created: cmd.Path})
}

// AppendNote appends content to a note.
func (r *Router) AppendNote(ctx context.Context, cmd types.AppendCommand) types.Envelope {
	env := r.client.AppendNote(ctx, cmd.Path, cmd.Content)
	return shape.Ack(env, types.AppendAck{AppendedTo: cmd.Path})
}

// PatchNote patches a note at the command's target location.
func (r *Router) PatchNote(ctx context.Context, cmd types.PatchCommand) types.Envelope {
	env := r.client.PatchNote(ctx, cmd.Path, cmd.Target, cmd.Operation, cmd.Content)
	return shape.Ack(env, types.PatchAck{Patched: cmd.Path, Target: cmd.Target.Value})
}

// AppendPeriodic appends content to a periodic note. An explicit date is
// parsed strictly before any request goes out; a malformed date never
// reaches the network.
func (r *Router) AppendPeriodic(ctx context.Context, cmd types.PeriodicCommand) types.Envelope {
	var date *types.PeriodicDate
	if cmd.Date != "" {
		parsed, err := ParseDate(cmd.Date)
		if err != nil {
			return types.Failure(fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", cmd.Date))
		}
		date = &parsed
	}
	env := r.client.AppendPeriodic(ctx, cmd.Period, date, cmd.Content)
	return shape.Ack(env, types.AppendAck{AppendedTo: string(cmd.Period) + " note"})
}

// DeleteNote deletes a note.
func (r *Router) DeleteNote(ctx context.Context, cmd types.DeleteCommand) types.Envelope {
	env := r.client.DeleteNote(ctx, cmd.Path)
	return shape.Ack(env, types.DeleteAck{Deleted: cmd.Path})
}

// ParseDate parses an explicit YYYY-MM-DD periodic note date. Parsing is
// strict: out-of-range components like month 13 are rejected.
func ParseDate(s string) (types.PeriodicDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return types.PeriodicDate{}, err
	}
	return types.PeriodicDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}
