package db

import "database/sql"

const schema = `
CREATE TABLE IF NOT EXISTS channel_stats (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    channel_name TEXT    NOT NULL,
    subscribers  INTEGER NOT NULL DEFAULT 0,
    total_views  INTEGER NOT NULL DEFAULT 0,
    total_videos INTEGER NOT NULL DEFAULT 0,
    dislikes     INTEGER NOT NULL DEFAULT 0,
    fetched_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_channel_stats_fetched ON channel_stats(fetched_at);

CREATE TABLE IF NOT EXISTS video_stats (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    video_id     TEXT    NOT NULL,
    title        TEXT    NOT NULL,
    published_at DATETIME,
    views        INTEGER NOT NULL DEFAULT 0,
    likes        INTEGER NOT NULL DEFAULT 0,
    dislikes     INTEGER NOT NULL DEFAULT 0,
    comments     INTEGER NOT NULL DEFAULT 0,
    fetched_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_video_stats_fetched ON video_stats(fetched_at);
CREATE INDEX IF NOT EXISTS idx_video_stats_video ON video_stats(video_id);
`

func migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
