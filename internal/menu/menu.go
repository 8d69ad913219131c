package menu

// Kind distinguishes selectable entries from separators.
type Kind int

const (
	KindSeparator Kind = iota
	KindSelectable
)

// ActionKind describes what committing an entry does.
type ActionKind int

const (
	// ActionNone commits without doing anything; the menu is shown again.
	ActionNone ActionKind = iota
	// ActionLaunch runs an external program in the foreground.
	ActionLaunch
	// ActionQuit ends the process.
	ActionQuit
)

func (k ActionKind) String() string {
	switch k {
	case ActionLaunch:
		return "launch"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Action is the work attached to a selectable entry.
type Action struct {
	Kind    ActionKind
	Program string
	Args    []string
}

// Launch returns an action that runs program with args.
func Launch(program string, args ...string) Action {
	return Action{Kind: ActionLaunch, Program: program, Args: append([]string(nil), args...)}
}

// Quit returns the sentinel action that terminates the menu.
func Quit() Action {
	return Action{Kind: ActionQuit}
}

// Entry is one line of the menu: either a labelled, selectable option or a
// separator. Build entries with Selectable or Separator.
type Entry struct {
	kind   Kind
	Label  string
	Action Action
}

// Selectable builds an entry the cursor can land on.
func Selectable(label string, action Action) Entry {
	return Entry{kind: KindSelectable, Label: label, Action: action}
}

// Separator builds a blank, non-selectable entry.
func Separator() Entry {
	return Entry{kind: KindSeparator}
}

// Kind reports the entry variant.
func (e Entry) Kind() Kind {
	return e.kind
}

// IsSeparator reports whether the cursor must skip this entry.
func (e Entry) IsSeparator() bool {
	return e.kind == KindSeparator
}

// DefaultLabels is the fixed option list shown by the launcher. The empty
// string marks a separator.
var DefaultLabels = []string{"vim", "fmtui", "btop", "nmtui", "", "quit"}

// DefaultEntries resolves DefaultLabels against the default registry.
func DefaultEntries() []Entry {
	return BuildRegistry().Entries(DefaultLabels)
}

// HasSelectable reports whether at least one entry can hold the cursor.
func HasSelectable(entries []Entry) bool {
	for _, entry := range entries {
		if !entry.IsSeparator() {
			return true
		}
	}
	return false
}

// CloneEntries produces a shallow copy of the provided entries.
func CloneEntries(entries []Entry) []Entry {
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
