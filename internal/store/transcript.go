package store

import (
	"context"
	"time"

	"github.com/abhisek/autodidact/ent"
	enttranscript "github.com/abhisek/autodidact/ent/transcript"
)

// TranscriptEntry is one turn of a recorded conversation, currently the
// clarification dialogue of the new-project wizard.
type TranscriptEntry struct {
	SessionID string
	TurnIdx   int
	Role      string
	Content   string
	CreatedAt time.Time
}

// TranscriptRepo persists conversation transcripts. The wizard writes
// through Append, one session id per project creation; BySession reads a
// whole conversation back in turn order.
type TranscriptRepo interface {
	Append(ctx context.Context, entry TranscriptEntry) error
	BySession(ctx context.Context, sessionID string) ([]TranscriptEntry, error)
}

type transcriptRepo struct {
	client *ent.Client
}

func (r *transcriptRepo) Append(ctx context.Context, entry TranscriptEntry) error {
	_, err := r.client.Transcript.Create().
		SetSessionID(entry.SessionID).
		SetTurnIdx(entry.TurnIdx).
		SetRole(entry.Role).
		SetContent(entry.Content).
		Save(ctx)
	if err != nil {
		return &StorageError{Op: "append transcript", Err: err}
	}
	return nil
}

func (r *transcriptRepo) BySession(ctx context.Context, sessionID string) ([]TranscriptEntry, error) {
	rows, err := r.client.Transcript.Query().
		Where(enttranscript.SessionID(sessionID)).
		Order(ent.Asc(enttranscript.FieldTurnIdx)).
		All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query transcript", Err: err}
	}

	out := make([]TranscriptEntry, len(rows))
	for i, t := range rows {
		out[i] = TranscriptEntry{
			SessionID: t.SessionID,
			TurnIdx:   t.TurnIdx,
			Role:      t.Role,
			Content:   t.Content,
			CreatedAt: t.CreatedAt,
		}
	}
	return out, nil
}
