package domain

// ReactionKind is one of the fixed pulses a user can attach to a vibe.
type ReactionKind string

const (
	ReactionMindBend ReactionKind = "MIND_BEND"
	ReactionChill    ReactionKind = "CHILL"
	ReactionHype     ReactionKind = "HYPE"
	ReactionSage     ReactionKind = "SAGE"
	ReactionCosmic   ReactionKind = "COSMIC"
)

// ReactionKinds lists every reaction kind in display order.
var ReactionKinds = []ReactionKind{
	ReactionMindBend, ReactionChill, ReactionHype, ReactionSage, ReactionCosmic,
}

func (k ReactionKind) String() string { return string(k) }

func (k ReactionKind) IsValid() bool {
	switch k {
	case ReactionMindBend, ReactionChill, ReactionHype, ReactionSage, ReactionCosmic:
		return true
	}
	return false
}

// Label returns the human-facing label shown next to the pulse counter.
func (k ReactionKind) Label() string {
	switch k {
	case ReactionMindBend:
		return "🌀 mindbend"
	case ReactionChill:
		return "🧊 chill"
	case ReactionHype:
		return "⚡ hype"
	case ReactionSage:
		return "🌿 sage"
	case ReactionCosmic:
		return "✨ cosmic"
	}
	return ""
}

// Visibility controls who may see a vibe. Only the flag is stored;
// enforcement belongs to the caller.
type Visibility string

const (
	VisibilityPublic    Visibility = "PUBLIC"
	VisibilityFollowers Visibility = "FOLLOWERS"
	VisibilityPrivate   Visibility = "PRIVATE"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPublic, VisibilityFollowers, VisibilityPrivate:
		return true
	}
	return false
}
