// Package conversation assembles the bounded message sequence sent to the
// completion API.
package conversation

import (
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/bunniesplumbing/chat-gateway/internal/model/chat"
)

// Build produces the upstream message list: exactly one system message,
// then the windowed and re-validated client history, then the new user
// message. The caller is responsible for having validated userMessage
// against the 1..1000 bound already.
//
// History is truncated to the most recent maxTurns*2 entries first, then
// each retained entry is checked: only user/assistant roles survive (a
// client-supplied system role is stripped, never forwarded), content is
// trimmed and capped at 1000 characters, and entries left without content
// are dropped.
func Build(systemPrompt string, history []chat.Message, userMessage string, maxTurns int) []*schema.Message {
	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))

	maxEntries := maxTurns * 2
	if len(history) > maxEntries {
		history = history[len(history)-maxEntries:]
	}

	for _, msg := range history {
		content := truncate(strings.TrimSpace(msg.Content), chat.MaxContentLength)
		if content == "" {
			continue
		}
		switch msg.Role {
		case chat.RoleUser:
			messages = append(messages, schema.UserMessage(content))
		case chat.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(content, nil))
		}
	}

	return append(messages, schema.UserMessage(userMessage))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
