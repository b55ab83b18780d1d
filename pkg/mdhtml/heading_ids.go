package mdhtml

import (
	"strconv"

	"github.com/shurcooL/sanitized_anchor_name"
)

// headingIDs hands out heading id attributes for one document.
type headingIDs struct {
	style HeadingIDStyle
	count int
	seen  map[string]int
}

// next returns the id for a heading with the given raw text.
func (h *headingIDs) next(text []byte) string {
	k := h.count
	h.count++

	if h.style == HeadingIDSlug {
		if slug := sanitized_anchor_name.Create(unescapeText(text)); slug != "" {
			return h.unique(slug)
		}
	}

	return "header-" + strconv.Itoa(k)
}

// unique suffixes repeated slugs with -1, -2, ...
func (h *headingIDs) unique(slug string) string {
	if h.seen == nil {
		h.seen = make(map[string]int)
	}

	n := h.seen[slug]
	h.seen[slug] = n + 1
	if n == 0 {
		return slug
	}

	return slug + "-" + strconv.Itoa(n)
}
