package stats

import (
	"database/sql"
	"fmt"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// SQLitePersister writes epoch and final stat snapshots into a SQLite
// database, one row per (run, epoch, counter). This mirrors the teacher's
// tracing.SQLiteTraceWriter: a batched writer that tags every row with an
// xid.New() run identifier and registers an atexit handler that closes the
// database, so a caller that exits through atexit need not close it.
type SQLitePersister struct {
	db    *sql.DB
	runID string
	stmt  *sql.Stmt
}

// NewSQLitePersister opens (creating if necessary) a SQLite database at
// path and prepares it to receive stat snapshots.
func NewSQLitePersister(path string) *SQLitePersister {
	p := &SQLitePersister{runID: xid.New().String()}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		panic(err)
	}

	p.db = db
	p.mustExecute(`CREATE TABLE IF NOT EXISTS dram_stats (
		run_id TEXT, epoch INTEGER, counter TEXT, value INTEGER, idx INTEGER
	)`)

	stmt, err := db.Prepare(`INSERT INTO dram_stats (run_id, epoch, counter, value, idx)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		panic(err)
	}

	p.stmt = stmt

	atexit.Register(func() { p.Close() })

	return p
}

func (p *SQLitePersister) mustExecute(query string) {
	if _, err := p.db.Exec(query); err != nil {
		panic(fmt.Errorf("dramctl: stats: %w", err))
	}
}

// WriteEpoch persists one epoch's counters.
func (p *SQLitePersister) WriteEpoch(epoch int, scalars map[string]uint64, vectors map[string][]uint64) {
	p.write(epoch, scalars, vectors)
}

// WriteFinal persists the final counters under a sentinel epoch of -1.
func (p *SQLitePersister) WriteFinal(scalars map[string]uint64, vectors map[string][]uint64) {
	p.write(-1, scalars, vectors)
}

func (p *SQLitePersister) write(epoch int, scalars map[string]uint64, vectors map[string][]uint64) {
	tx, err := p.db.Begin()
	if err != nil {
		panic(err)
	}

	stmt := tx.Stmt(p.stmt)

	for name, v := range scalars {
		if _, err := stmt.Exec(p.runID, epoch, name, v, 0); err != nil {
			panic(err)
		}
	}

	for name, vec := range vectors {
		for i, v := range vec {
			if _, err := stmt.Exec(p.runID, epoch, name, v, i); err != nil {
				panic(err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		panic(err)
	}
}

// Close releases the underlying database handle.
func (p *SQLitePersister) Close() {
	_ = p.stmt.Close()
	_ = p.db.Close()
}
