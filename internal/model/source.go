// Package model defines the data structures shared by the generation pipeline.
package model

// Path represents a canonical (absolute, cleaned) file system path.
type Path string

// SourceDirective is a parsed reference from a source file to a generation
// target. An empty Fragment means the whole source content contributes.
type SourceDirective struct {
	TargetPath Path
	Fragment   string
}

// IsFullFile reports whether the directive contributes the entire source.
func (d SourceDirective) IsFullFile() bool {
	return d.Fragment == ""
}

// Source represents a scanned file that declares one or more generation targets.
type Source struct {
	Path       Path
	Content    string
	Directives []SourceDirective
}

// Targets returns the distinct target paths named by the source, in order of
// first appearance.
func (s Source) Targets() []Path {
	seen := make(map[Path]struct{}, len(s.Directives))
	targets := make([]Path, 0, len(s.Directives))

	for _, d := range s.Directives {
		if _, ok := seen[d.TargetPath]; ok {
			continue
		}

		seen[d.TargetPath] = struct{}{}
		targets = append(targets, d.TargetPath)
	}

	return targets
}

// Names reports whether any directive of the source points at target.
func (s Source) Names(target Path) bool {
	for _, d := range s.Directives {
		if d.TargetPath == target {
			return true
		}
	}

	return false
}
