package domain

import (
	"regexp"
	"sort"
	"strings"
)

var (
	codeRegionPattern   = regexp.MustCompile(`// co-target(?P<prompt>.*)\n(?P<content>[\s\S]*?)//\sco-target-end`)
	markupRegionPattern = regexp.MustCompile(`<!--\sco-target\s(?P<prompt>.*)-->(?P<content>[\s\S]*?)<!--\sco-target-end\s-->`)
)

// region is one bounded target region located in a file.
type region struct {
	start        int
	end          int
	contentStart int
	contentEnd   int
	prompt       string
}

func (r region) content(text string) string {
	return text[r.contentStart:r.contentEnd]
}

// findRegions locates regions of both marker syntaxes, ordered by position.
// A region overlapping an earlier one is ignored.
func findRegions(text string) []region {
	var found []region

	for _, pattern := range []*regexp.Regexp{codeRegionPattern, markupRegionPattern} {
		for _, loc := range pattern.FindAllStringSubmatchIndex(text, -1) {
			found = append(found, region{
				start:        loc[0],
				end:          loc[1],
				contentStart: loc[4],
				contentEnd:   loc[5],
				prompt:       strings.TrimSpace(text[loc[2]:loc[3]]),
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })

	regions := found[:0]
	last := -1

	for _, r := range found {
		if r.start < last {
			continue
		}

		regions = append(regions, r)
		last = r.end
	}

	return regions
}

// ApplyRegionEdit replaces the interior of the region at index with
// replacement. Regions are re-located in content first; an index out of range
// leaves content unchanged.
func ApplyRegionEdit(content string, index int, replacement string) string {
	regions := findRegions(content)
	if index < 0 || index >= len(regions) {
		return content
	}

	r := regions[index]

	return content[:r.contentStart] + replacement + content[r.contentEnd:]
}
