package types

// TargetType identifies the kind of location a patch applies to.
type TargetType string

const (
	// TargetHeading targets a heading; nested headings are addressed
	// with a "::" separator.
	TargetHeading TargetType = "heading"
	// TargetFrontmatter targets a frontmatter field.
	TargetFrontmatter TargetType = "frontmatter"
	// TargetBlock targets a block reference.
	TargetBlock TargetType = "block"
)

// ContentType returns the request content type the remote API expects for
// patches against this target kind. Frontmatter values are structured, so
// they travel as JSON; everything else is markdown.
func (t TargetType) ContentType() string {
	if t == TargetFrontmatter {
		return "application/json"
	}
	return "text/markdown"
}

// PatchOperation selects how patched content relates to the target.
type PatchOperation string

const (
	OpAppend  PatchOperation = "append"
	OpPrepend PatchOperation = "prepend"
	OpReplace PatchOperation = "replace"
)

// PatchTarget pairs a target kind with its address within the note.
// Exactly one kind applies per patch; the caller selects it before the
// command reaches the router.
type PatchTarget struct {
	Type  TargetType `json:"type"`
	Value string     `json:"value"`
}
