package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// driverName is registered once per process with a ConnectHook that installs
// the noDiacritic scalar function on every connection.
const driverName = "sqlite3_catalog"

var registerDriver sync.Once

// visiblePlatforms restricts item queries to the two supported client
// platform variants. Every accessor that returns items applies this filter.
var visiblePlatforms = []int64{1, 2}

// Catalog is a read handle over a pre-built catalog store. It is created by
// Open and holds its connection for the life of the consuming component.
type Catalog struct {
	db *gorm.DB
}

// Open opens the catalog store at path, or a transient in-memory store when
// path is empty. The file must already exist; Open never creates it.
//
// The connection is tuned for a read-only workload (no journal, no
// synchronous flushing, in-memory temp storage) and registers the
// deterministic noDiacritic scalar function that title search depends on.
// If registration or the open itself fails there is no usable instance.
func Open(path string) (*Catalog, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog store %s: %w", path, err)
	}

	registerDriver.Do(func() {
		sql.Register(driverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("noDiacritic", stripDiacritics, true)
			},
		})
	})

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: driverName, DSN: dsn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	// One connection: the store is a single local file, and the in-memory
	// variant must not be split across pooled connections.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to catalog: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA synchronous = OFF",
		"PRAGMA journal_mode = OFF",
		"PRAGMA temp_store = MEMORY",
	} {
		if err := db.Exec(pragma).Error; err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	// Force a real read so a corrupt or non-database file fails here
	// instead of on the first query.
	var tableCount int64
	if err := db.Raw("SELECT count(*) FROM sqlite_master").Scan(&tableCount).Error; err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to read catalog schema: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Close closes the underlying connection.
func (c *Catalog) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// txKey carries an open transaction through a context, scoped to one
// Catalog instance so independent catalogs never share a guard.
type txKey struct {
	catalog *Catalog
}

// InTransaction runs work inside a transaction on this catalog. It is
// reentrant per instance and call chain: when ctx already carries an open
// transaction for the same Catalog, work runs directly inside it instead of
// starting a nested transaction. The outermost call commits on success and
// rolls back on error; a failure inside work always propagates.
func (c *Catalog) InTransaction(ctx context.Context, work func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{c}).(*gorm.DB); ok {
		return work(ctx)
	}
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return work(context.WithValue(ctx, txKey{c}, tx))
	})
}

// conn returns the transaction carried by ctx for this catalog, if any,
// falling back to the shared handle.
func (c *Catalog) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{c}).(*gorm.DB); ok {
		return tx
	}
	return c.db.WithContext(ctx)
}

// Query failures are swallowed by design: list accessors return an empty
// slice and lookups return nil, so callers never see engine errors. The
// error is logged so it is not lost entirely. Not-found is the expected
// outcome of a lookup and is not logged.
func logQueryError(op string, err error) {
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("catalog: %s: %v", op, err)
	}
}
