package arrident

import (
	"slices"
	"strings"
)

// Item is the narrow view of a live server-side component consumed by Select.
// Callers adapt whatever their API client returns; Component is a ready-made
// adapter for plain field values.
//
// Name is carried for display only. It is user-editable on the server, so it
// can be spoofed or coincidentally similar — Select never matches on it.
type Item interface {
	// ID is the server-assigned component id.
	ID() int

	// Name is the user-editable display name.
	Name() string

	// ImplementationName is the plugin-supplied display label for the
	// implementation.
	ImplementationName() string

	// Implementation is the underlying implementation type identifier.
	Implementation() string
}

// Component is a concrete Item for callers that hold plain field values.
type Component struct {
	id                 int
	name               string
	implementationName string
	implementation     string
}

// Compile-time check that Component implements Item.
var _ Item = Component{}

// NewComponent builds a Component from the four fields Select consumes.
func NewComponent(id int, name, implementationName, implementation string) Component {
	return Component{
		id:                 id,
		name:               name,
		implementationName: implementationName,
		implementation:     implementation,
	}
}

// ID implements Item.
func (c Component) ID() int { return c.id }

// Name implements Item.
func (c Component) Name() string { return c.name }

// ImplementationName implements Item.
func (c Component) ImplementationName() string { return c.implementationName }

// Implementation implements Item.
func (c Component) Implementation() string { return c.implementation }

// Resolution names the matching tier that produced (or failed to produce) a
// usable result.
type Resolution string

// The possible selector outcomes, in tier order.
const (
	// ResolutionPreferredID: the remembered id exists live and its type
	// identity still matches the plugin.
	ResolutionPreferredID Resolution = "preferredId"

	// ResolutionImplementationName: exactly one live item's implementation
	// name equals the plugin name.
	ResolutionImplementationName Resolution = "implementationName"

	// ResolutionAmbiguousImplementationName: two or more items share the
	// plugin's implementation name; CandidateIDs lists them all.
	ResolutionAmbiguousImplementationName Resolution = "ambiguousImplementationName"

	// ResolutionFuzzy: exactly one item's implementation identifier contains
	// the plugin name as a substring.
	ResolutionFuzzy Resolution = "fuzzy"

	// ResolutionAmbiguousFuzzy: two or more items matched the substring
	// fallback; CandidateIDs lists them all.
	ResolutionAmbiguousFuzzy Resolution = "ambiguousFuzzy"

	// ResolutionNone: no tier produced a match.
	ResolutionNone Resolution = "none"
)

// Selection is the outcome of Select. Component is nil unless Resolution is
// ResolutionPreferredID, ResolutionImplementationName, or ResolutionFuzzy.
// CandidateIDs is populated, sorted ascending, for the two ambiguous
// resolutions so the caller can report every equally valid match.
type Selection struct {
	Component    Item
	Resolution   Resolution
	CandidateIDs []int
}

// Select resolves which of the live items belongs to pluginName, consulting
// preferredID (a remembered id from a prior run; pass 0 or less for none)
// first. Tiers are evaluated in strict order with case-insensitive exact
// comparisons; there is no scoring or weighting across tiers:
//
//  1. preferredID — honored only if an item with that id exists AND its
//     ImplementationName or Implementation equals pluginName. A stale id now
//     reused by an unrelated component is never honored silently.
//  2. ImplementationName equality — a single match wins; several matches are
//     reported as ambiguous, because two same-type installations side by side
//     must never be resolved by picking the first.
//  3. Implementation substring fallback — same single-match rule.
//  4. none.
//
// Item.Name is never consulted: it is user-editable and untrusted.
//
// Panics if pluginName is empty.
func Select(items []Item, pluginName string, preferredID int) Selection {
	requireNonEmpty("plugin name", pluginName)

	if preferredID > 0 {
		for _, it := range items {
			if it.ID() == preferredID && typeIdentityMatches(it, pluginName) {
				return Selection{Component: it, Resolution: ResolutionPreferredID}
			}
		}
	}

	var exact []Item
	for _, it := range items {
		if strings.EqualFold(it.ImplementationName(), pluginName) {
			exact = append(exact, it)
		}
	}
	switch {
	case len(exact) == 1:
		return Selection{Component: exact[0], Resolution: ResolutionImplementationName}
	case len(exact) > 1:
		return Selection{Resolution: ResolutionAmbiguousImplementationName, CandidateIDs: sortedIDs(exact)}
	}

	var fuzzy []Item
	needle := strings.ToLower(pluginName)
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Implementation()), needle) {
			fuzzy = append(fuzzy, it)
		}
	}
	switch {
	case len(fuzzy) == 1:
		return Selection{Component: fuzzy[0], Resolution: ResolutionFuzzy}
	case len(fuzzy) > 1:
		return Selection{Resolution: ResolutionAmbiguousFuzzy, CandidateIDs: sortedIDs(fuzzy)}
	}

	return Selection{Resolution: ResolutionNone}
}

// typeIdentityMatches reports whether the item's implementation identity
// (label or type identifier) equals the plugin name, case-insensitively.
func typeIdentityMatches(it Item, pluginName string) bool {
	return strings.EqualFold(it.ImplementationName(), pluginName) ||
		strings.EqualFold(it.Implementation(), pluginName)
}

// sortedIDs returns the items' ids sorted ascending.
func sortedIDs(items []Item) []int {
	ids := make([]int, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID())
	}
	slices.Sort(ids)
	return ids
}
