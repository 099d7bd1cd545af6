// Package notice provides the player-facing notification model and its
// scheduler: a priority-ordered pending queue, one-shot de-duplication,
// and a delayed-notice table for multi-day workflows.
package notice

// Priority ranks pending notices; lower values are shown first.
type Priority int

const (
	PriorityCritical Priority = 0 // deaths, game-over messages
	PriorityHigh     Priority = 1 // job invites, fired-from-work
	PriorityNormal   Priority = 2
	PriorityLow      Priority = 3 // progress chatter
)

// FollowupKind tags what acknowledging a notice should trigger.
type FollowupKind uint8

const (
	FollowupNone     FollowupKind = iota
	FollowupJobOffer              // accept/decline a job invite
	FollowupEvent                 // accept/decline a scripted random event
)

// Followup is an explicit pending-action record. Notices carry data, not
// closures, so the whole state stays inspectable and recursion depth is
// bounded by the resolver.
type Followup struct {
	Kind     FollowupKind `json:"kind"`
	Company  string       `json:"company,omitempty"`  // FollowupJobOffer
	Position int          `json:"position,omitempty"` // FollowupJobOffer: index into the company's position list
	Event    string       `json:"event,omitempty"`    // FollowupEvent: event name
}

// Notice is one displayable unit. Cancelable notices offer accept/decline;
// plain ones only acknowledge (resolved with choice=true).
type Notice struct {
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Priority   Priority `json:"priority"`
	Cancelable bool     `json:"cancelable"`
	Followup   Followup `json:"followup"`
}

// New creates a plain acknowledge-only notice.
func New(title, body string, prio Priority) Notice {
	return Notice{Title: title, Body: body, Priority: prio}
}
