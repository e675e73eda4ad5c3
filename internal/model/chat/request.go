package chat

// GatewayRequest is the decoded /api/chat body. History is client-supplied
// and untrusted; the conversation builder re-validates every entry.
type GatewayRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history"`
}

// GatewayResponse is the only shape the widget ever sees. When Success is
// false, Message still carries human-readable text with the company phone
// number, never a technical error.
type GatewayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
