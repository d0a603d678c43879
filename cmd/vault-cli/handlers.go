package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fiddeb/obsidian-local-rest-api/internal/frontmatter"
	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

// failure converts a failure envelope into an MCP tool error.
func failure(env types.Envelope) error {
	if env.Code != 0 {
		return fmt.Errorf("%s (HTTP %d)", env.Error, env.Code)
	}
	return errors.New(env.Error)
}

func handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	env := rt.Search(ctx, types.SearchCommand{
		Query:         strings.TrimSpace(input.Query),
		MaxResults:    input.MaxResults,
		ContextLength: input.ContextLength,
	})
	if !env.OK {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, failure(env)
	}

	hits, _ := env.Data.([]types.SimplifiedHit)
	return nil, SearchOutput{Results: hits}, nil
}

func handleGet(ctx context.Context, req *mcp.CallToolRequest, input GetInput) (*mcp.CallToolResult, GetOutput, error) {
	env := rt.GetNote(ctx, types.GetNoteCommand{
		Path:         strings.TrimSpace(input.Path),
		MetadataOnly: input.MetadataOnly,
		MaxChars:     input.MaxChars,
	})
	if !env.OK {
		return &mcp.CallToolResult{IsError: true}, GetOutput{}, failure(env)
	}

	switch data := env.Data.(type) {
	case map[string]any:
		return nil, GetOutput{Note: data}, nil
	case string:
		return nil, GetOutput{Raw: data}, nil
	default:
		return nil, GetOutput{}, nil
	}
}

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	env := rt.ListDirectory(ctx, types.ListCommand{Path: strings.TrimSpace(input.Path)})
	if !env.OK {
		return &mcp.CallToolResult{IsError: true}, ListOutput{}, failure(env)
	}

	// The listing endpoint answers {"files": [...]}; directories carry a
	// trailing slash inside the list.
	out := ListOutput{Entries: []string{}}
	if listing, ok := env.Data.(map[string]any); ok {
		if files, ok := listing["files"].([]any); ok {
			for _, f := range files {
				if name, ok := f.(string); ok {
					out.Entries = append(out.Entries, name)
				}
			}
		}
	}
	return nil, out, nil
}

func handleCreate(ctx context.Context, req *mcp.CallToolRequest, input CreateInput) (*mcp.CallToolResult, CreateOutput, error) {
	path := strings.TrimSpace(input.Path)

	body, err := frontmatter.Compose(input.Frontmatter, input.Content)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, CreateOutput{Path: path}, err
	}

	env := rt.CreateNote(ctx, types.CreateCommand{Path: path, Content: body})
	if !env.OK {
		return &mcp.CallToolResult{IsError: true}, CreateOutput{Path: path}, failure(env)
	}
	return nil, CreateOutput{Success: true, Path: path}, nil
}

func handleAppend(ctx context.Context, req *mcp.CallToolRequest, input AppendInput) (*mcp.CallToolResult, AppendOutput, error) {
	path := strings.TrimSpace(input.Path)

	env := rt.AppendNote(ctx, types.AppendCommand{Path: path, Content: input.Content})
	if !env.OK {
		return &mcp.CallToolResult{IsError: true}, AppendOutput{Path: path}, failure(env)
	}
	return nil, AppendOutput{Success: true, Path: path}, nil
}

func handlePatch(ctx context.Context, req *mcp.CallToolRequest, input PatchInput) (*mcp.CallToolResult, PatchOutput, error) {
	path := strings.TrimSpace(input.Path)

	op := types.PatchOperation(input.Operation)
	switch op {
	case types.OpAppend, types.OpPrepend, types.OpReplace:
	default:
		return &mcp.CallToolResult{IsError: true}, PatchOutput{Path: path},
			fmt.Errorf("invalid operation %q: must be append, prepend or replace", input.Operation)
	}

	var target types.PatchTarget
	switch {
	case input.Heading != "" && input.Frontmatter == "" && input.Block == "":
		target = types.PatchTarget{Type: types.TargetHeading, Value: input.Heading}
	case input.Frontmatter != "" && input.Heading == "" && input.Block == "":
		target = types.PatchTarget{Type: types.TargetFrontmatter, Value: input.Frontmatter}
	case input.Block != "" && input.Heading == "" && input.Frontmatter == "":
		target = types.PatchTarget{Type: types.TargetBlock, Value: input.Block}
	default:
		return &mcp.CallToolResult{IsError: true}, PatchOutput{Path: path},
			errors.New("set exactly one of heading, frontmatter or block")
	}

	env := rt.PatchNote(ctx, types.PatchCommand{
		Path:      path,
		Target:    target,
		Operation: op,
		Content:   input.Content,
	})
	if !env.OK {
		return &mcp.CallToolResult{IsError: true}, PatchOutput{Path: path, Target: target.Value}, failure(env)
	}
	return nil, PatchOutput{Success: true, Path: path, Target: target.Value}, nil
}

func handleDaily(ctx context.Context, req *mcp.CallToolRequest, input DailyInput) (*mcp.CallToolResult, DailyOutput, error) {
	period := types.Period(input.Period)
	if input.Period == "" {
		period = types.PeriodDaily
	}
	if !period.Valid() {
		return &mcp.CallToolResult{IsError: true}, DailyOutput{},
			fmt.Errorf("invalid period %q: must be one of %v", input.Period, types.Periods)
	}

	env := rt.AppendPeriodic(ctx, types.PeriodicCommand{
		Period:  period,
		Date:    strings.TrimSpace(input.Date),
		Content: input.Content,
	})
	if !env.OK {
		return &mcp.CallToolResult{IsError: true}, DailyOutput{Period: string(period)}, failure(env)
	}
	return nil, DailyOutput{Success: true, Period: string(period)}, nil
}

func handleDelete(ctx context.Context, req *mcp.CallToolRequest, input DeleteInput) (*mcp.CallToolResult, DeleteOutput, error) {
	path := strings.TrimSpace(input.Path)

	env := rt.DeleteNote(ctx, types.DeleteCommand{Path: path})
	if !env.OK {
		return &mcp.CallToolResult{IsError: true}, DeleteOutput{Path: path}, failure(env)
	}
	return nil, DeleteOutput{Success: true, Path: path}, nil
}
