// Package session carries the per-login state that the original portal kept
// in process-wide globals: the authenticated user, the community-board vote
// dedup set, and the digital-assistant chat history. Each login gets its own
// Session object, and everything in it is deliberately volatile: a restart
// or a fresh login clears the vote markers and the chat transcript. That
// reset (and the repeat votes it permits across sessions) is preserved
// behavior, not an oversight to patch here.
package session

import (
	"sync"
	"time"

	"github.com/parkview/go-grievance-backend/internal/domain"
)

// maxChatTurns bounds the per-session assistant transcript.
const maxChatTurns = 100

// ChatTurn is one utterance in the assistant transcript.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Session is the state attached to one issued token. Safe for concurrent use.
type Session struct {
	ID        string
	User      domain.User
	CreatedAt time.Time

	mu         sync.Mutex
	expiresAt  time.Time
	votedPosts map[string]struct{}
	chat       []ChatTurn
}

// HasVoted reports whether this session already voted for postID.
func (s *Session) HasVoted(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.votedPosts[postID]
	return ok
}

// MarkVoted records a vote dedup marker for postID.
func (s *Session) MarkVoted(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votedPosts[postID] = struct{}{}
}

// AppendChat adds one turn to the assistant transcript, discarding the
// oldest turn once the bound is reached.
func (s *Session) AppendChat(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, ChatTurn{Role: role, Content: content})
	if len(s.chat) > maxChatTurns {
		s.chat = s.chat[len(s.chat)-maxChatTurns:]
	}
}

// Chat returns a copy of the assistant transcript in order.
func (s *Session) Chat() []ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ChatTurn, len(s.chat))
	copy(out, s.chat)
	return out
}

func (s *Session) expired(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.After(s.expiresAt)
}
