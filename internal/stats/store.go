package stats

import (
	"database/sql"
	"strings"
)

// Store provides append-only snapshot persistence and the read operations
// the dashboard consumes.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store backed by db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const channelCols = `id, channel_name, subscribers, total_views, total_videos, dislikes, fetched_at`
const videoCols = `id, video_id, title, published_at, views, likes, dislikes, comments, fetched_at`

func scanChannel(row interface{ Scan(...any) error }) (*ChannelSnapshot, error) {
	c := &ChannelSnapshot{}
	err := row.Scan(&c.ID, &c.ChannelName, &c.Subscribers, &c.TotalViews,
		&c.TotalVideos, &c.Dislikes, &c.FetchedAt)
	return c, err
}

func scanVideo(row interface{ Scan(...any) error }) (*VideoSnapshot, error) {
	v := &VideoSnapshot{}
	var published sql.NullTime
	err := row.Scan(&v.ID, &v.VideoID, &v.Title, &published,
		&v.Views, &v.Likes, &v.Dislikes, &v.Comments, &v.FetchedAt)
	if published.Valid {
		v.PublishedAt = published.Time
	}
	return v, err
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertChannel(e execer, c *ChannelSnapshot) error {
	res, err := e.Exec(`
		INSERT INTO channel_stats (channel_name, subscribers, total_views, total_videos, dislikes, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ChannelName, c.Subscribers, c.TotalViews, c.TotalVideos, c.Dislikes, c.FetchedAt.UTC())
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}

func insertVideos(e execer, vs []VideoSnapshot) error {
	for i := range vs {
		v := &vs[i]
		// Zero publish times are stored as NULL so the read path can fall
		// back to fetched_at.
		var published any
		if !v.PublishedAt.IsZero() {
			published = v.PublishedAt.UTC()
		}
		res, err := e.Exec(`
			INSERT INTO video_stats (video_id, title, published_at, views, likes, dislikes, comments, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			v.VideoID, v.Title, published, v.Views, v.Likes, v.Dislikes, v.Comments, v.FetchedAt.UTC())
		if err != nil {
			return err
		}
		if v.ID, err = res.LastInsertId(); err != nil {
			return err
		}
	}
	return nil
}

// InsertChannelSnapshot appends c as a new row and populates its ID.
// The caller must set FetchedAt.
func (s *Store) InsertChannelSnapshot(c *ChannelSnapshot) error {
	return insertChannel(s.db, c)
}

// InsertVideoSnapshots appends every snapshot in vs. An empty slice is a
// no-op — video rows without a channel row (and vice versa) are valid.
func (s *Store) InsertVideoSnapshots(vs []VideoSnapshot) error {
	return insertVideos(s.db, vs)
}

// InsertFetch appends the results of one fetch cycle in a single
// transaction, so a failure mid-batch writes nothing at all.
func (s *Store) InsertFetch(c *ChannelSnapshot, vs []VideoSnapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertChannel(tx, c); err != nil {
		return err
	}
	if err := insertVideos(tx, vs); err != nil {
		return err
	}
	return tx.Commit()
}

// LatestChannel returns the snapshot with the maximum fetched_at, ties
// broken by insertion id. Returns (nil, nil) when there is no data.
func (s *Store) LatestChannel() (*ChannelSnapshot, error) {
	row := s.db.QueryRow(`SELECT ` + channelCols + ` FROM channel_stats ORDER BY fetched_at DESC, id DESC LIMIT 1`)
	c, err := scanChannel(row)
	if err == sql.ErrNoRows || isMissingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ChannelHistory returns all channel snapshots ordered by fetched_at
// ascending. Empty storage yields an empty slice, not an error.
func (s *Store) ChannelHistory() ([]ChannelSnapshot, error) {
	rows, err := s.db.Query(`SELECT ` + channelCols + ` FROM channel_stats ORDER BY fetched_at ASC, id ASC`)
	if isMissingTable(err) {
		return []ChannelSnapshot{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]ChannelSnapshot, 0)
	for rows.Next() {
		c, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, *c)
	}
	return history, rows.Err()
}

// AllVideos returns every video snapshot ordered by fetched_at descending.
// Empty storage yields an empty slice, not an error.
func (s *Store) AllVideos() ([]VideoSnapshot, error) {
	rows, err := s.db.Query(`SELECT ` + videoCols + ` FROM video_stats ORDER BY fetched_at DESC, id DESC`)
	if isMissingTable(err) {
		return []VideoSnapshot{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := make([]VideoSnapshot, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

// ClearAll deletes every row from both tables. Only the demo generator
// uses this; the pipeline itself never deletes.
func (s *Store) ClearAll() error {
	if _, err := s.db.Exec(`DELETE FROM video_stats`); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM channel_stats`)
	return err
}

// isMissingTable reports whether err means the table has not been created
// yet — treated as empty storage on the read path.
func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
