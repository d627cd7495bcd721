package entity

import (
	"sync"
	"sync/atomic"
	"time"
)

// Session is one human-versus-computer game. Callers hold Lock for the whole
// of a turn so nobody observes the board while the computer is thinking.
type Session struct {
	mu sync.Mutex

	// unix nanoseconds, readable without the lock
	lastActive atomic.Int64

	ID           string
	Game         *Game
	HumanMark    Mark
	ComputerMark Mark
}

func NewSession(id string, humanMark Mark) *Session {
	session := &Session{
		ID:           id,
		Game:         NewGame(),
		HumanMark:    humanMark,
		ComputerMark: humanMark.Opponent(),
	}
	session.Touch(time.Now())

	return session
}

func (that *Session) Lock() {
	that.mu.Lock()
}

func (that *Session) Unlock() {
	that.mu.Unlock()
}

// ComputerToMove reports whether the game waits for the computer.
func (that *Session) ComputerToMove() bool {
	return !that.Game.IsOver() && that.Game.CurrentPlayer() == that.ComputerMark
}

func (that *Session) Touch(at time.Time) {
	that.lastActive.Store(at.UnixNano())
}

// LastActive is when the session was created or last used.
func (that *Session) LastActive() time.Time {
	return time.Unix(0, that.lastActive.Load())
}
