package domain

// SignalQuality describes whether a source produced usable data.
type SignalQuality string

const (
	// QualityReal indicates the source produced genuine data.
	QualityReal SignalQuality = "real"
	// QualityNone indicates the source was missing, failed, or empty.
	QualityNone SignalQuality = "none"
)

// MinConversationMessages is the hard minimum of analyzed messages required
// before a conversation signal is considered usable.
const MinConversationMessages = 3

// ConversationSignal is the conversation-derived contribution to fusion.
type ConversationSignal struct {
	Topics       []string    `json:"topics"`
	Interests    []string    `json:"interests"`
	Preferences  []string    `json:"preferences"`
	History      []string    `json:"history"`
	MessageCount int         `json:"message_count"`
	Dimensions   *Dimensions `json:"dimensions,omitempty"`
}

// Categories returns the ordered category list the conversation contributes:
// topics first, then interests not already present as topics.
func (c *ConversationSignal) Categories() []string {
	seen := make(map[string]struct{}, len(c.Topics)+len(c.Interests))
	out := make([]string, 0, len(c.Topics)+len(c.Interests))
	for _, t := range c.Topics {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	for _, i := range c.Interests {
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	return out
}

// Valid reports whether the conversation meets the minimum message threshold.
func (c *ConversationSignal) Valid() bool {
	return c != nil && c.MessageCount >= MinConversationMessages
}

// DeclaredProfile is the static profile a user declared about themselves.
// All fields are optional.
type DeclaredProfile struct {
	Role         string   `json:"role,omitempty"          yaml:"role,omitempty"`
	CurrentFocus string   `json:"current_focus,omitempty" yaml:"current_focus,omitempty"`
	TechStack    []string `json:"tech_stack,omitempty"    yaml:"tech_stack,omitempty"`
	Interests    []string `json:"interests,omitempty"     yaml:"interests,omitempty"`
	WorkingStyle string   `json:"working_style,omitempty" yaml:"working_style,omitempty"`
}

// Categories returns the ordered category list the declared profile
// contributes: current focus first, then interests, then tech stack.
func (p *DeclaredProfile) Categories() []string {
	out := make([]string, 0, 1+len(p.Interests)+len(p.TechStack))
	seen := make(map[string]struct{})
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	add(p.CurrentFocus)
	for _, i := range p.Interests {
		add(i)
	}
	for _, t := range p.TechStack {
		add(t)
	}
	return out
}

// SocialSignal is an optional public-signal source (e.g. a social profile).
// It only influences the data quality score, never category ranking.
type SocialSignal struct {
	ActivityCount int      `json:"activity_count"`
	NetworkSize   int      `json:"network_size"`
	Tags          []string `json:"tags,omitempty"`
}

// Empty reports whether the social signal carries no usable data.
func (s *SocialSignal) Empty() bool {
	return s == nil || (s.ActivityCount == 0 && s.NetworkSize == 0 && len(s.Tags) == 0)
}

// FeedbackSignal is the historical interaction feedback for a user.
type FeedbackSignal struct {
	// CategoryWeights maps category name to a multiplier.
	// 1.0 is neutral; >1 boosts, <1 suppresses.
	CategoryWeights map[string]float64 `json:"category_weights,omitempty"`
	// ExcludeSkillIDs lists catalog item ids the user rejected outright.
	ExcludeSkillIDs []string `json:"exclude_skill_ids,omitempty"`
	// EventCount is a monotonically increasing counter of recorded
	// accept/reject/skip events. It never decreases within a session.
	EventCount int `json:"event_count"`
}

// FeedbackAction enumerates the recordable interaction events.
type FeedbackAction string

const (
	FeedbackAccept FeedbackAction = "accept"
	FeedbackReject FeedbackAction = "reject"
	FeedbackSkip   FeedbackAction = "skip"
)

// ValidFeedbackAction reports whether the given action is recordable.
func ValidFeedbackAction(a FeedbackAction) bool {
	switch a {
	case FeedbackAccept, FeedbackReject, FeedbackSkip:
		return true
	}
	return false
}

// SignalSet is the per-request bundle of everything the collector gathered.
// Any source may be absent; absence is expected, not an error.
type SignalSet struct {
	Conversation          *ConversationSignal
	ConversationAvailable bool
	// ConversationErr holds the fetch error when the conversation source
	// itself failed, as opposed to returning too little data. Callers use
	// it to tell a transient outage apart from a thin conversation.
	ConversationErr error
	Declared              *DeclaredProfile
	DeclaredAvailable     bool
	Social                *SocialSignal
	SocialAvailable       bool
	Feedback              *FeedbackSignal
	FeedbackAvailable     bool
}

// ConversationQuality returns the signal quality of the conversation source.
func (s *SignalSet) ConversationQuality() SignalQuality {
	if s.ConversationAvailable {
		return QualityReal
	}
	return QualityNone
}
