package ports

import "github.com/oleksandr-romashko/libretto/internal/domain"

// SessionStore persists session transcripts for later inspection.
type SessionStore interface {
	SaveSession(transcript domain.SessionTranscript) (id string, err error)
}
