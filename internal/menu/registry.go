package menu

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const quitLabel = "quit"

// Registry maps menu labels to the actions they trigger.
type Registry struct {
	actions map[string]Action
}

// BuildRegistry constructs the registry of known programs.
func BuildRegistry() *Registry {
	actions := make(map[string]Action)
	for _, program := range []string{"vim", "fmtui", "btop", "nmtui"} {
		actions[program] = Launch(program)
	}
	actions[quitLabel] = Quit()
	return &Registry{actions: actions}
}

// Find returns the action registered for label.
func (r *Registry) Find(label string) (Action, bool) {
	action, ok := r.actions[label]
	return action, ok
}

// Resolve returns the action for label, or an ActionNone action when the
// label is not a known program.
func (r *Registry) Resolve(label string) Action {
	if action, ok := r.Find(label); ok {
		return action
	}
	return Action{Kind: ActionNone}
}

// Entries turns labels into entries. Empty labels become separators.
func (r *Registry) Entries(labels []string) []Entry {
	entries := make([]Entry, 0, len(labels))
	for _, label := range labels {
		if label == "" {
			entries = append(entries, Separator())
			continue
		}
		entries = append(entries, Selectable(label, r.Resolve(label)))
	}
	return entries
}

// Labels lists registered labels in sorted order.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.actions))
	for label := range r.actions {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Suggest returns the registered label closest to label, or "" when nothing
// is close enough.
func (r *Registry) Suggest(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return ""
	}
	labels := r.Labels()
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		// "vimx" does not fuzzy-contain "vim", but "vim" is contained in it.
		lower := strings.ToLower(trimmed)
		for _, candidate := range labels {
			if strings.Contains(lower, candidate) {
				return candidate
			}
		}
		return ""
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.Target
}
