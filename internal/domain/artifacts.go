package domain

// GameDayThread maps a game to its game-day thread post on the remote
// instance.
type GameDayThread struct {
	PostID int64 `db:"post_id"`
	GameID int64 `db:"game_id"`
}

// DailyThread maps a calendar day (reference-zone "YYYY-MM-DD") to the daily
// discussion post. At most one row is featured at a time.
type DailyThread struct {
	PostID   int64  `db:"post_id"`
	Date     string `db:"date"`
	Featured bool   `db:"is_featured"`
}

// GameComment maps a game to its comment under the day's daily thread.
type GameComment struct {
	CommentID int64 `db:"comment_id"`
	GameID    int64 `db:"game_id"`
}

// Artifact event kinds and actions for change notifications.
const (
	ArtifactKindGameDayThread = "game_day_thread"
	ArtifactKindDailyThread   = "daily_thread"
	ArtifactKindComment       = "comment"

	ArtifactActionCreate = "create"
	ArtifactActionUpdate = "update"
)

// ArtifactEvent describes one create or update of a remote artifact.
type ArtifactEvent struct {
	Kind     string `json:"kind"`
	Action   string `json:"action"`
	RemoteID int64  `json:"remote_id"`
	GameID   int64  `json:"game_id,omitempty"`
	Day      string `json:"day,omitempty"`
}
