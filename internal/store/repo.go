package store

import (
	"context"
	"time"
)

// Kind classifies an activity event.
type Kind string

const (
	KindLogin         Kind = "login"
	KindLoginFailed   Kind = "login_failed"
	KindDemoLogin     Kind = "demo_login"
	KindLogout        Kind = "logout"
	KindSignup        Kind = "signup"
	KindLessonAdvance Kind = "lesson_advance"
	KindLessonRestart Kind = "lesson_restart"
	KindProgressReset Kind = "progress_reset"
	KindChatMessage   Kind = "chat_message"
	KindChatCleared   Kind = "chat_cleared"
	KindSignAnalysis  Kind = "sign_analysis"
	KindTextToSign    Kind = "text_to_sign"
	KindSearch        Kind = "search"
	KindProfileSaved  Kind = "profile_saved"
	KindSettingsSaved Kind = "settings_saved"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	Kind  Kind      // only this kind ("" = all)
	From  time.Time // timestamp >= From
}

// ActivityEventData captures one user interaction.
type ActivityEventData struct {
	SessionID string
	Username  string
	Kind      Kind
	Detail    string
}

// ActivityEvent is a stored activity event.
type ActivityEvent struct {
	Sequence  int64
	Timestamp time.Time
	ActivityEventData
}

// KindCount is the number of events of one kind.
type KindCount struct {
	Kind  Kind
	Count int
}

// ActivityRepo provides append and query access to the activity log.
// The log is write-mostly: sessions never read it back.
type ActivityRepo interface {
	// AppendActivity records an interaction.
	AppendActivity(ctx context.Context, data ActivityEventData) error

	// CountByKind returns event counts grouped by kind, ordered by kind.
	CountByKind(ctx context.Context) ([]KindCount, error)

	// Recent returns events newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]ActivityEvent, error)

	// Clear deletes every event and returns how many were removed.
	Clear(ctx context.Context) (int64, error)
}
