// Package store keeps explored board states and the moves linking them in
// SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LIAMBB/chess-compute-core/components"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// Child is a board reached from a parent by one move.
type Child struct {
	Move  components.MoveCommand
	Board *components.ChessBoard
}

// Relation is a stored parent to child edge.
type Relation struct {
	ChildID int64
	Move    string
}

const schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		max_depth INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS board_states (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hash INTEGER NOT NULL UNIQUE,
		state TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS node_relations (
		parent_id INTEGER,
		child_id INTEGER,
		move TEXT NOT NULL,
		FOREIGN KEY(parent_id) REFERENCES board_states(id),
		FOREIGN KEY(child_id) REFERENCES board_states(id),
		PRIMARY KEY(parent_id, child_id)
	);
	CREATE INDEX IF NOT EXISTS idx_node_relations_parent
	ON node_relations(parent_id);
`

// Open opens (or creates) the database at path in WAL mode.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection serialises writers instead of failing with SQLITE_BUSY
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=10000;
		PRAGMA temp_store=MEMORY;
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// StartRun records a new exploration run and returns its id.
func (s *Store) StartRun(maxDepth int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec("INSERT INTO runs (id, started_at, max_depth) VALUES (?, ?, ?)",
		id, time.Now().Unix(), maxDepth)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// SaveBoard stores board, or returns the id of the equal position already
// stored.
func (s *Store) SaveBoard(board *components.ChessBoard) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() // Will be ignored if transaction is committed

	id, err := saveBoard(tx, board)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// SaveChildren stores every child board and its edge from parentID in one
// transaction. The returned ids follow the order of children.
func (s *Store) SaveChildren(parentID int64, children []Child) ([]int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO node_relations (parent_id, child_id, move)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare relation statement: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(children))
	for _, child := range children {
		id, err := saveBoard(tx, child.Board)
		if err != nil {
			return nil, err
		}
		if _, err := stmt.Exec(parentID, id, child.Move.String()); err != nil {
			return nil, fmt.Errorf("store node relation: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return ids, nil
}

func saveBoard(tx *sql.Tx, board *components.ChessBoard) (int64, error) {
	hash := int64(board.Hash())

	// Try to find existing state first
	var existingID int64
	err := tx.QueryRow("SELECT id FROM board_states WHERE hash = ?", hash).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("look up board state: %w", err)
	}

	data, err := json.Marshal(board)
	if err != nil {
		return 0, fmt.Errorf("marshal board state: %w", err)
	}
	result, err := tx.Exec("INSERT INTO board_states (hash, state) VALUES (?, ?)", hash, string(data))
	if err != nil {
		return 0, fmt.Errorf("insert board state: %w", err)
	}
	return result.LastInsertId()
}

// Board loads the board stored under id.
func (s *Store) Board(id int64) (*components.ChessBoard, error) {
	var data string
	err := s.db.QueryRow("SELECT state FROM board_states WHERE id = ?", id).Scan(&data)
	if err != nil {
		return nil, fmt.Errorf("query board state %d: %w", id, err)
	}

	var board components.ChessBoard
	if err := json.Unmarshal([]byte(data), &board); err != nil {
		return nil, fmt.Errorf("unmarshal board state %d: %w", id, err)
	}
	return &board, nil
}

// Children lists the stored edges leaving parentID, ordered by child id.
func (s *Store) Children(parentID int64) ([]Relation, error) {
	rows, err := s.db.Query(`
		SELECT child_id, move
		FROM node_relations
		WHERE parent_id = ?
		ORDER BY child_id
	`, parentID)
	if err != nil {
		return nil, fmt.Errorf("query child nodes: %w", err)
	}
	defer rows.Close()

	var relations []Relation
	for rows.Next() {
		var relation Relation
		if err := rows.Scan(&relation.ChildID, &relation.Move); err != nil {
			return nil, fmt.Errorf("scan child node: %w", err)
		}
		relations = append(relations, relation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate child nodes: %w", err)
	}
	return relations, nil
}

// CountBoards returns the number of distinct positions stored.
func (s *Store) CountBoards() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM board_states").Scan(&count); err != nil {
		return 0, fmt.Errorf("count board states: %w", err)
	}
	return count, nil
}

// SizeBytes is the size of the main database file.
func (s *Store) SizeBytes() (int64, error) {
	var size int64
	err := s.db.QueryRow("SELECT page_count * page_size FROM pragma_page_count, pragma_page_size").Scan(&size)
	if err != nil {
		return 0, fmt.Errorf("query database size: %w", err)
	}
	return size, nil
}

// Exceeds reports whether the database reached 90% of maxBytes. A limit of
// zero or less never triggers.
func (s *Store) Exceeds(maxBytes int64) (bool, error) {
	if maxBytes <= 0 {
		return false, nil
	}
	size, err := s.SizeBytes()
	if err != nil {
		return false, err
	}

	// Use a safety margin (90% of max size)
	margin := int64(float64(maxBytes) * 0.9)
	return size >= margin, nil
}
