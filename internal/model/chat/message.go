package chat

// Roles accepted on the wire. The system role exists only on the upstream
// side: the gateway injects it itself and strips any client-supplied copy.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxContentLength bounds every message content forwarded upstream.
const MaxContentLength = 1000

// Message is a single conversation turn as the widget sends it.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
