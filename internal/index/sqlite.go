//go:build cgo

package index

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the index in a single-file SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func (s *SQLiteStore) Initialize(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	s.db = db

	sqlStmt := `CREATE TABLE IF NOT EXISTS tracks(
		filename TEXT PRIMARY KEY,
		title TEXT,
		artist TEXT,
		album TEXT,
		genre TEXT,
		tracknumber INTEGER,
		discnumber INTEGER
	);`
	_, err = s.db.Exec(sqlStmt)
	return err
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec("DELETE FROM tracks")
	return err
}

func (s *SQLiteStore) IndexBatch(batch []*Track) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT OR REPLACE INTO tracks (filename, title, artist, album, genre, tracknumber, discnumber) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, t := range batch {
		if _, err := stmt.Exec(t.Filename, t.Title, t.Artist, t.Album, t.Genre, t.TrackNumber, t.DiscNumber); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Remove(filename string) error {
	_, err := s.db.Exec("DELETE FROM tracks WHERE filename = ?", filename)
	return err
}

func (s *SQLiteStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM tracks").Scan(&count)
	return count, err
}

const selectTracks = "SELECT filename, title, artist, album, genre, tracknumber, discnumber FROM tracks"
const orderTracks = " ORDER BY artist, album, discnumber, tracknumber"

func (s *SQLiteStore) Search(input string) ([]Track, error) {
	q := ParseQuery(input)
	if q.Empty() {
		rows, err := s.db.Query(selectTracks + orderTracks)
		if err != nil {
			return nil, err
		}
		return s.scanRows(rows)
	}

	var sqlParts []string
	var args []interface{}

	orGroup := func(terms []string, column string) {
		if len(terms) == 0 {
			return
		}
		var subParts []string
		for _, p := range terms {
			subParts = append(subParts, column+" LIKE ?")
			args = append(args, "%"+p+"%")
		}
		sqlParts = append(sqlParts, "("+strings.Join(subParts, " OR ")+")")
	}

	orGroup(q.Genres, "genre")
	orGroup(q.Artists, "artist")
	orGroup(q.Albums, "album")
	orGroup(q.Titles, "title")

	if len(q.Any) > 0 {
		var subParts []string
		for _, p := range q.Any {
			subParts = append(subParts, "(artist LIKE ? OR album LIKE ? OR title LIKE ?)")
			args = append(args, "%"+p+"%", "%"+p+"%", "%"+p+"%")
		}
		sqlParts = append(sqlParts, "("+strings.Join(subParts, " OR ")+")")
	}

	query := selectTracks
	if len(sqlParts) > 0 {
		query += " WHERE " + strings.Join(sqlParts, " AND ")
	}
	query += orderTracks

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return s.scanRows(rows)
}

func (s *SQLiteStore) scanRows(rows *sql.Rows) ([]Track, error) {
	defer rows.Close()
	var results []Track
	for rows.Next() {
		var t Track
		if err := rows.Scan(&t.Filename, &t.Title, &t.Artist, &t.Album, &t.Genre, &t.TrackNumber, &t.DiscNumber); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, rows.Err()
}
