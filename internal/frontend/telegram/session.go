package telegram

import "sync"

// sessionManager tracks per-user genre selections and access control.
type sessionManager struct {
	mu      sync.Mutex
	genres  map[int64]string // last selected genre per user
	allowed map[int64]bool   // nil or empty = allow all
}

// newSessionManager creates a session manager.
// If allowedUserIDs is empty, all users are allowed.
func newSessionManager(allowedUserIDs []int64) *sessionManager {
	allowed := make(map[int64]bool, len(allowedUserIDs))
	for _, id := range allowedUserIDs {
		allowed[id] = true
	}
	return &sessionManager{
		genres:  make(map[int64]string),
		allowed: allowed,
	}
}

// isAllowed checks if a user is authorized to use the bot.
func (sm *sessionManager) isAllowed(userID int64) bool {
	if len(sm.allowed) == 0 {
		return true
	}
	return sm.allowed[userID]
}

// genre returns the user's last selected genre, or "" for the overall ranking.
func (sm *sessionManager) genre(userID int64) string {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.genres[userID]
}

// setGenre records the user's genre selection. An empty genre resets to
// the overall ranking.
func (sm *sessionManager) setGenre(userID int64, genre string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if genre == "" {
		delete(sm.genres, userID)
		return
	}
	sm.genres[userID] = genre
}
