package types

// Profile is a named, ordered set of actions representing a tuning
// tier. Profiles are immutable process-wide constants: they are built
// once at startup and never mutated afterwards. Order matters — later
// actions may rely on earlier ones (a reload after the files it reads
// were written), so the applier must preserve declaration order.
type Profile struct {
	// Name is the human-facing profile name, e.g. "Balanced".
	Name string

	// Ordinal is the menu position used for selection (1-based).
	Ordinal int

	// Description is a one-line summary shown in the profile list.
	Description string

	Actions []Action
}
