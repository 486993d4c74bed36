package domain

import "time"

// SessionCommand is one dispatched shell command.
type SessionCommand string

const (
	CommandAdd     SessionCommand = "add"
	CommandRemove  SessionCommand = "remove"
	CommandShow    SessionCommand = "show"
	CommandExit    SessionCommand = "exit"
	CommandUnknown SessionCommand = "unknown"
)

// SessionEntry records a single command as it was executed, with enough
// detail to replay the session by hand.
type SessionEntry struct {
	Command SessionCommand `json:"command"`
	// Input is the raw line the command was parsed from (trimmed, not lowercased).
	Input string    `json:"input,omitempty"`
	Title string    `json:"title,omitempty"`
	At    time.Time `json:"at"`
}

// SessionTranscript is the artifact persisted when an interactive session ends.
type SessionTranscript struct {
	StartedAt time.Time      `json:"started_at"`
	EndedAt   time.Time      `json:"ended_at"`
	Entries   []SessionEntry `json:"entries"`
	// BooksAtExit is the shelf size when the loop stopped.
	BooksAtExit int `json:"books_at_exit"`
}
