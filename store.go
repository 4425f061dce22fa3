package primarium

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database and provides CRUD operations for
// settlements, blog posts, members, coordinates, drafts, and the
// publish audit log.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	// Pragmas ride in the DSN so every pooled connection gets them:
	// foreign_keys and busy_timeout are per-connection settings and the
	// cascade deletes depend on the former. WAL mode allows concurrent
	// read/write access; synchronous=NORMAL is safe with WAL and avoids an
	// fsync per transaction; larger cache and mmap reduce disk I/O.
	dsn := path + "?" + strings.Join([]string{
		"_pragma=journal_mode(WAL)",
		"_pragma=foreign_keys(1)",
		"_pragma=busy_timeout(5000)",
		"_pragma=synchronous(NORMAL)",
		"_pragma=cache_size(-8000)",
		"_pragma=mmap_size(268435456)",
	}, "&")
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS settlements (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    region TEXT NOT NULL,
    lat REAL NOT NULL,
    lng REAL NOT NULL,
    active INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS blog_posts (
    id TEXT PRIMARY KEY,
    settlement_id TEXT NOT NULL REFERENCES settlements(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    content TEXT NOT NULL,
    date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_blog_posts_settlement_date
    ON blog_posts(settlement_id, date DESC);
CREATE TABLE IF NOT EXISTS members (
    id TEXT PRIMARY KEY,
    settlement_id TEXT NOT NULL REFERENCES settlements(id) ON DELETE CASCADE,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    position TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    photo_path TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS coordinates (
    id TEXT PRIMARY KEY,
    settlement_id TEXT NOT NULL REFERENCES settlements(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    lat REAL NOT NULL,
    lng REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS drafts (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS publish_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    settlement_id TEXT NOT NULL,
    action TEXT NOT NULL,
    status TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
`)
	return err
}

// --- settlements ---

// ListSettlements returns all settlements ordered by name.
func (s *Store) ListSettlements() ([]Settlement, error) {
	rows, err := s.db.Query(`SELECT id, name, region, lat, lng, active FROM settlements ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Settlement
	for rows.Next() {
		var st Settlement
		var active int
		if err := rows.Scan(&st.ID, &st.Name, &st.Region, &st.Lat, &st.Lng, &active); err != nil {
			return nil, err
		}
		st.Active = active == 1
		out = append(out, st)
	}
	return out, rows.Err()
}

// GetSettlement returns a single settlement by id.
func (s *Store) GetSettlement(id string) (Settlement, error) {
	var st Settlement
	var active int
	err := s.db.QueryRow(`SELECT id, name, region, lat, lng, active FROM settlements WHERE id = ?`, id).
		Scan(&st.ID, &st.Name, &st.Region, &st.Lat, &st.Lng, &active)
	if err != nil {
		return Settlement{}, err
	}
	st.Active = active == 1
	return st, nil
}

// CreateSettlement validates and inserts a settlement, assigning an id when
// the caller left it empty.
func (s *Store) CreateSettlement(st Settlement) (Settlement, error) {
	if err := st.Validate(); err != nil {
		return Settlement{}, err
	}
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`INSERT INTO settlements (id, name, region, lat, lng, active) VALUES (?, ?, ?, ?, ?, ?)`,
		st.ID, st.Name, st.Region, st.Lat, st.Lng, boolInt(st.Active))
	if err != nil {
		return Settlement{}, err
	}
	return st, nil
}

// UpdateSettlement validates and replaces a settlement record.
func (s *Store) UpdateSettlement(st Settlement) error {
	if err := st.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(`UPDATE settlements SET name = ?, region = ?, lat = ?, lng = ?, active = ? WHERE id = ?`,
		st.Name, st.Region, st.Lat, st.Lng, boolInt(st.Active), st.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetSettlementActive flips the published flag. Called only after a publish
// webhook reports success.
func (s *Store) SetSettlementActive(id string, active bool) error {
	res, err := s.db.Exec(`UPDATE settlements SET active = ? WHERE id = ?`, boolInt(active), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteSettlement removes a settlement and, via cascade, its posts,
// members, and coordinates. The draft, keyed separately, is removed too.
func (s *Store) DeleteSettlement(id string) error {
	if _, err := s.db.Exec(`DELETE FROM drafts WHERE key = ?`, draftKey(id)); err != nil {
		return err
	}
	res, err := s.db.Exec(`DELETE FROM settlements WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// --- blog posts ---

// ListPosts returns a settlement's posts ordered by date descending.
func (s *Store) ListPosts(settlementID string) ([]BlogPost, error) {
	rows, err := s.db.Query(`SELECT id, settlement_id, title, description, content, date FROM blog_posts WHERE settlement_id = ? ORDER BY date DESC`, settlementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single post by id.
func (s *Store) GetPost(id string) (BlogPost, error) {
	row := s.db.QueryRow(`SELECT id, settlement_id, title, description, content, date FROM blog_posts WHERE id = ?`, id)
	return scanPost(row)
}

// CreatePost validates and inserts a blog post, stamping the publication
// date when the caller left it zero.
func (s *Store) CreatePost(p BlogPost) (BlogPost, error) {
	if err := p.Validate(); err != nil {
		return BlogPost{}, err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO blog_posts (id, settlement_id, title, description, content, date) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.SettlementID, p.Title, p.Description, p.Content, p.Date.Format(time.RFC3339))
	if err != nil {
		return BlogPost{}, err
	}
	return p, nil
}

// UpdatePost validates and replaces a post's editable fields. The original
// date and settlement binding are kept.
func (s *Store) UpdatePost(p BlogPost) error {
	if err := p.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(`UPDATE blog_posts SET title = ?, description = ?, content = ? WHERE id = ?`,
		p.Title, p.Description, p.Content, p.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeletePost removes a post by id.
func (s *Store) DeletePost(id string) error {
	res, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// --- members ---

// ListMembers returns a settlement's members ordered by last name.
func (s *Store) ListMembers(settlementID string) ([]Member, error) {
	rows, err := s.db.Query(`SELECT id, settlement_id, first_name, last_name, position, description, photo_path FROM members WHERE settlement_id = ? ORDER BY last_name, first_name`, settlementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.SettlementID, &m.FirstName, &m.LastName, &m.Position, &m.Description, &m.PhotoPath); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// GetMember returns a single member by id.
func (s *Store) GetMember(id string) (Member, error) {
	var m Member
	err := s.db.QueryRow(`SELECT id, settlement_id, first_name, last_name, position, description, photo_path FROM members WHERE id = ?`, id).
		Scan(&m.ID, &m.SettlementID, &m.FirstName, &m.LastName, &m.Position, &m.Description, &m.PhotoPath)
	return m, err
}

// CreateMember validates and inserts a member.
func (s *Store) CreateMember(m Member) (Member, error) {
	if err := m.Validate(); err != nil {
		return Member{}, err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`INSERT INTO members (id, settlement_id, first_name, last_name, position, description, photo_path) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.SettlementID, m.FirstName, m.LastName, m.Position, m.Description, m.PhotoPath)
	if err != nil {
		return Member{}, err
	}
	return m, nil
}

// UpdateMember validates and replaces a member record.
func (s *Store) UpdateMember(m Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(`UPDATE members SET first_name = ?, last_name = ?, position = ?, description = ?, photo_path = ? WHERE id = ?`,
		m.FirstName, m.LastName, m.Position, m.Description, m.PhotoPath, m.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteMember removes a member by id.
func (s *Store) DeleteMember(id string) error {
	res, err := s.db.Exec(`DELETE FROM members WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// --- coordinates ---

// ListCoordinates returns a settlement's points of interest ordered by name.
func (s *Store) ListCoordinates(settlementID string) ([]Coordinate, error) {
	rows, err := s.db.Query(`SELECT id, settlement_id, name, lat, lng FROM coordinates WHERE settlement_id = ? ORDER BY name`, settlementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Coordinate
	for rows.Next() {
		var c Coordinate
		if err := rows.Scan(&c.ID, &c.SettlementID, &c.Name, &c.Lat, &c.Lng); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCoordinate returns a single point of interest by id.
func (s *Store) GetCoordinate(id string) (Coordinate, error) {
	var c Coordinate
	err := s.db.QueryRow(`SELECT id, settlement_id, name, lat, lng FROM coordinates WHERE id = ?`, id).
		Scan(&c.ID, &c.SettlementID, &c.Name, &c.Lat, &c.Lng)
	return c, err
}

// CreateCoordinate validates and inserts a point of interest.
func (s *Store) CreateCoordinate(c Coordinate) (Coordinate, error) {
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.db.Exec(`INSERT INTO coordinates (id, settlement_id, name, lat, lng) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.SettlementID, c.Name, c.Lat, c.Lng)
	if err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// UpdateCoordinate validates and replaces a point of interest.
func (s *Store) UpdateCoordinate(c Coordinate) error {
	if err := c.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(`UPDATE coordinates SET name = ?, lat = ?, lng = ? WHERE id = ?`,
		c.Name, c.Lat, c.Lng, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// DeleteCoordinate removes a point of interest by id.
func (s *Store) DeleteCoordinate(id string) error {
	res, err := s.db.Exec(`DELETE FROM coordinates WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// --- drafts KV ---

// Get implements KV over the drafts table.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM drafts WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set implements KV over the drafts table.
func (s *Store) Set(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO drafts (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Delete implements KV over the drafts table. Deleting a missing key is not
// an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM drafts WHERE key = ?`, key)
	return err
}

// --- publish log ---

// LogPublish appends an audit entry for a publish attempt.
func (s *Store) LogPublish(r PublishRecord) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO publish_log (settlement_id, action, status, detail, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.SettlementID, r.Action, r.Status, r.Detail, r.CreatedAt.Format(time.RFC3339))
	return err
}

// ListPublishLog returns the most recent publish attempts for a settlement,
// newest first, capped at limit.
func (s *Store) ListPublishLog(settlementID string, limit int) ([]PublishRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`SELECT id, settlement_id, action, status, detail, created_at FROM publish_log WHERE settlement_id = ? ORDER BY id DESC LIMIT ?`, settlementID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PublishRecord
	for rows.Next() {
		var r PublishRecord
		var created string
		if err := rows.Scan(&r.ID, &r.SettlementID, &r.Action, &r.Status, &r.Detail, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (BlogPost, error) {
	var p BlogPost
	var date string
	if err := row.Scan(&p.ID, &p.SettlementID, &p.Title, &p.Description, &p.Content, &date); err != nil {
		return BlogPost{}, err
	}
	p.Date, _ = time.Parse(time.RFC3339, date)
	return p, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
