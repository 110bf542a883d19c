package domain

import "github.com/samber/lo"

// GroupState is the gateway's current view of one group: who is in it and
// what the session actor may do to it.
type GroupState struct {
	GroupID      string
	Members      []Target
	ActorIsAdmin bool
}

// Has reports whether the target is currently a member. Both sides are
// normalized before comparison.
func (s GroupState) Has(target Target) bool {
	return lo.ContainsBy(s.Members, func(m Target) bool { return m.Equal(target) })
}

// Desire is the membership post-condition a mutation drives toward:
// present for an add operation, absent for a remove.
type Desire int

const (
	DesireMember Desire = iota
	DesireAbsent
)

// Satisfied reports whether the group state already matches the desired
// post-condition for the given target.
func (d Desire) Satisfied(state GroupState, target Target) bool {
	if d == DesireMember {
		return state.Has(target)
	}
	return !state.Has(target)
}

// Participant is one member row in an exported group description.
type Participant struct {
	ID      Target `json:"id"`
	IsAdmin bool   `json:"is_admin"`
}

// GroupInfo is the exportable metadata of one group visible to the session.
type GroupInfo struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Owner        Target        `json:"owner,omitempty"`
	Participants []Participant `json:"participants"`
}
