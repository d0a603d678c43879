package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fiddeb/obsidian-local-rest-api/internal/frontmatter"
	"github.com/fiddeb/obsidian-local-rest-api/internal/types"
)

// contentFlags is the mutually exclusive content source group shared by the
// mutating commands: inline flag value, stdin, or a file.
type contentFlags struct {
	content string
	stdin   bool
	file    string
}

func (c *contentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.content, "content", "c", "", "content as a flag value")
	cmd.Flags().BoolVar(&c.stdin, "stdin", false, "read content from stdin")
	cmd.Flags().StringVarP(&c.file, "file", "f", "", "read content from a file")
	cmd.MarkFlagsOneRequired("content", "stdin", "file")
	cmd.MarkFlagsMutuallyExclusive("content", "stdin", "file")
}

func (c *contentFlags) read() (string, error) {
	switch {
	case c.stdin:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case c.file != "":
		data, err := os.ReadFile(c.file)
		if err != nil {
			return "", fmt.Errorf("failed to read content file: %w", err)
		}
		return string(data), nil
	default:
		return c.content, nil
	}
}

func newSearchCmd() *cobra.Command {
	var (
		maxResults    int
		contextLength int
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := resolveLimit(cmd, "max-results", maxResults, cfg.MaxResults)
			if err != nil {
				return err
			}
			ctxLen, err := resolveLimit(cmd, "context-length", contextLength, cfg.ContextLength)
			if err != nil {
				return err
			}
			emit(rt.Search(cmd.Context(), types.SearchCommand{
				Query:         args[0],
				MaxResults:    limit,
				ContextLength: ctxLen,
			}))
			return nil
		},
	}
	cmd.Flags().IntVarP(&maxResults, "max-results", "n", 0, "maximum number of results (default 10)")
	cmd.Flags().IntVar(&contextLength, "context-length", 0, "context length around matches (default 100)")
	return cmd
}

// resolveLimit returns the flag value when the user set it, or fallback when
// they did not. An explicitly set non-positive value is an error rather than
// a silent fall-through to the default.
func resolveLimit(cmd *cobra.Command, name string, value, fallback int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	if value <= 0 {
		return 0, fmt.Errorf("--%s must be positive, got %d", name, value)
	}
	return value, nil
}

func newGetCmd() *cobra.Command {
	var (
		metadataOnly bool
		maxChars     int
	)
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Get note content and metadata",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			emit(rt.GetNote(cmd.Context(), types.GetNoteCommand{
				Path:         args[0],
				MetadataOnly: metadataOnly,
				MaxChars:     maxChars,
			}))
		},
	}
	cmd.Flags().BoolVarP(&metadataOnly, "metadata-only", "m", false, "return only metadata, not content")
	cmd.Flags().IntVar(&maxChars, "max-chars", 0, "truncate content to N characters")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [path]",
		Short: "List directory contents",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			emit(rt.ListDirectory(cmd.Context(), types.ListCommand{Path: path}))
		},
	}
}

func newCreateCmd() *cobra.Command {
	var (
		content contentFlags
		fields  []string
	)
	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create or overwrite a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := content.read()
			if err != nil {
				return err
			}
			fm, err := frontmatter.ParseFields(fields)
			if err != nil {
				return err
			}
			body, err = frontmatter.Compose(fm, body)
			if err != nil {
				return err
			}
			emit(rt.CreateNote(cmd.Context(), types.CreateCommand{Path: args[0], Content: body}))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
	content.register(cmd)
	cmd.Flags().StringArrayVar(&fields, "fm", nil, "frontmatter field as key=value (repeatable; values parsed as YAML)")
	return cmd
}

func newAppendCmd() *cobra.Command {
	var content contentFlags
	cmd := &cobra.Command{
		Use:   "append <path>",
		Short: "Append content to a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := content.read()
			if err != nil {
				return err
			}
			emit(rt.AppendNote(cmd.Context(), types.AppendCommand{Path: args[0], Content: body}))
			return nil
		},
	}
	content.register(cmd)
	return cmd
}

func newPatchCmd() *cobra.Command {
	var (
		content   contentFlags
		heading   string
		fmField   string
		block     string
		operation string
	)
	cmd := &cobra.Command{
		Use:   "patch <path>",
		Short: "Patch a note at a specific location",
		Long: `Patch inserts or replaces content relative to a location inside a note:
a heading (use :: to address nested headings), a frontmatter field, or a
block reference. Frontmatter patches send the content as JSON; heading
and block patches send markdown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := types.PatchOperation(operation)
			switch op {
			case types.OpAppend, types.OpPrepend, types.OpReplace:
			default:
				return fmt.Errorf("invalid operation %q: must be append, prepend or replace", operation)
			}

			var target types.PatchTarget
			switch {
			case heading != "":
				target = types.PatchTarget{Type: types.TargetHeading, Value: heading}
			case fmField != "":
				target = types.PatchTarget{Type: types.TargetFrontmatter, Value: fmField}
			default:
				target = types.PatchTarget{Type: types.TargetBlock, Value: block}
			}

			body, err := content.read()
			if err != nil {
				return err
			}
			emit(rt.PatchNote(cmd.Context(), types.PatchCommand{
				Path:      args[0],
				Target:    target,
				Operation: op,
				Content:   body,
			}))
			return nil
		},
	}
	content.register(cmd)
	cmd.Flags().StringVar(&heading, "heading", "", "target heading (use :: for nested)")
	cmd.Flags().StringVar(&fmField, "frontmatter", "", "target frontmatter field")
	cmd.Flags().StringVar(&block, "block", "", "target block reference")
	cmd.Flags().StringVarP(&operation, "operation", "o", "", "patch operation: append, prepend or replace")
	cmd.MarkFlagsOneRequired("heading", "frontmatter", "block")
	cmd.MarkFlagsMutuallyExclusive("heading", "frontmatter", "block")
	_ = cmd.MarkFlagRequired("operation")
	return cmd
}

func newDailyCmd() *cobra.Command {
	var (
		content contentFlags
		date    string
		period  string
	)
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Append to a periodic note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := types.Period(period)
			if !p.Valid() {
				return fmt.Errorf("invalid period %q: must be one of %v", period, types.Periods)
			}
			body, err := content.read()
			if err != nil {
				return err
			}
			emit(rt.AppendPeriodic(cmd.Context(), types.PeriodicCommand{
				Period:  p,
				Date:    date,
				Content: body,
			}))
			return nil
		},
	}
	content.register(cmd)
	cmd.Flags().StringVarP(&date, "date", "d", "", "date (YYYY-MM-DD), default: today")
	cmd.Flags().StringVarP(&period, "period", "p", "daily", "period type: daily, weekly, monthly, quarterly or yearly")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			emit(rt.DeleteNote(cmd.Context(), types.DeleteCommand{Path: args[0]}))
		},
	}
}
