package sql

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	_queryTimeout = 5 * time.Second
	_maxRetries   = 10
	_retryDelay   = 5 * time.Second
)

type PostgreDatabase struct {
	url  string
	Conn *pgxpool.Pool
}

var (
	postgreInstance *PostgreDatabase
	postgreOnce     sync.Once
	postgreMutex    sync.RWMutex
)

func NewPosgreORM(dsn string, timeout time.Duration) (*DB, error) {
	pass, ok := os.LookupEnv("FINANCE_TRACKER_POSTGRES_PASSWORD")
	if ok {
		dsn = fmt.Sprintf("%s password=%s", dsn, pass)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	return &DB{
		DB:                   gormDB,
		autoMigrationEnabled: true,
		timeout:              timeout,
		system:               "postgresql",
	}, nil
}

func NewPosgreDatabase(url string) *PostgreDatabase {
	postgreMutex.Lock()
	defer postgreMutex.Unlock()

	postgreOnce.Do(func() {
		postgreInstance = &PostgreDatabase{
			url: url,
		}
	})

	return postgreInstance
}

var _ Database = (*PostgreDatabase)(nil)

func (d *PostgreDatabase) Open() error {
	for range _maxRetries {
		conn, err := pgxpool.New(context.Background(), d.url)
		if err == nil {
			if err = conn.Ping(context.Background()); err == nil {
				d.Conn = conn
				return nil
			}
			conn.Close()
		}

		slog.Warn("postgres not ready, retrying", slog.String("error", err.Error()))
		time.Sleep(_retryDelay)
	}

	return fmt.Errorf("imposible to connect to database after %d retries", _maxRetries)
}

func (d *PostgreDatabase) Close() {
	d.Conn.Close()
}

func (d *PostgreDatabase) Command(sql string) error {
	_, err := d.Conn.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	return nil
}

func (d *PostgreDatabase) Query(ctx context.Context, sql string, args ...any) ([][]byte, error) {
	queryCtx, cancelFn := context.WithTimeout(ctx, _queryTimeout)
	defer cancelFn()

	rows, err := d.Conn.Query(queryCtx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("postgre query: %w", err)
	}

	defer rows.Close()
	values := make([][]byte, 0)
	for rows.Next() {
		values = append(values, rows.RawValues()[0])
	}
	return values, nil
}

// Up runs every *.sql file of path in lexical order. Each {{key}} in a file is
// replaced by its value in replacements before execution.
func (d *PostgreDatabase) Up(path string, replacements map[string]string) error {
	files, err := filepath.Glob(filepath.Join(path, "*.sql"))
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", file, err)
		}

		statement := applyReplacements(string(content), replacements)
		if err := d.Command(statement); err != nil {
			return fmt.Errorf("applying migration %s: %w", filepath.Base(file), err)
		}
		slog.Info("migration applied", slog.String("file", filepath.Base(file)))
	}

	return nil
}

func applyReplacements(statement string, replacements map[string]string) string {
	for key, value := range replacements {
		statement = strings.ReplaceAll(statement, "{{"+key+"}}", value)
	}
	return statement
}
