package model

// GenerationKind distinguishes full-file synthesis from region patching.
type GenerationKind string

const (
	// GenerationWrite synthesises the whole target file.
	GenerationWrite GenerationKind = "write"
	// GenerationRewrite patches bounded regions inside an existing target.
	GenerationRewrite GenerationKind = "rewrite"
)

// RewriteDirective describes one bounded region of a target file.
//
// Index is the zero-based position of the region in the scan that produced
// it. It is not stable across rewrites and is re-located at splice time.
type RewriteDirective struct {
	Index   int    `json:"index"`
	Content string `json:"content"`
	Prompt  string `json:"prompt"`
	Result  string `json:"result"`
}

// Settled reports whether the region currently holds the result of a
// previous generation for the same hint, i.e. nothing changed since.
func (d RewriteDirective) Settled(current RewriteDirective) bool {
	if d.Prompt != current.Prompt {
		return false
	}

	if d.Content == current.Content {
		return true
	}

	return d.Result != "" && d.Result == current.Content
}
