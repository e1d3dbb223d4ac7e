package accordion

// Action is a user request against the accordion.
type Action struct {
	// Index is the entry whose header was activated.
	Index int
}

// Reduce applies an action to a selection.
func Reduce(s Selection, a Action) Selection {
	return s.Toggle(a.Index)
}

// EffectKind is the visual transition an entry plays.
type EffectKind string

const (
	Expand   EffectKind = "expand"
	Collapse EffectKind = "collapse"
)

// Effect is a presentational transition for one entry.
type Effect struct {
	Index int
	Kind  EffectKind
}

// Effects returns the transitions that reflect moving from prev to next.
// The previously open entry collapses before the newly open one expands.
// Equal selections produce no effects, so replaying a render is idempotent.
func Effects(prev, next Selection) []Effect {
	if prev == next {
		return nil
	}
	var effects []Effect
	if i, ok := prev.Index(); ok {
		effects = append(effects, Effect{Index: i, Kind: Collapse})
	}
	if i, ok := next.Index(); ok {
		effects = append(effects, Effect{Index: i, Kind: Expand})
	}
	return effects
}

// EffectFor returns the transition entry i plays, if any.
func EffectFor(effects []Effect, i int) (EffectKind, bool) {
	for _, e := range effects {
		if e.Index == i {
			return e.Kind, true
		}
	}
	return "", false
}
