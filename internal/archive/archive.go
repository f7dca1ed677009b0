package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/webharvest/internal/model"
)

// DB provides SQLite-based storage for extracted articles.
// It manages connection pooling and provides CRUD operations.
type DB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures DB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates the article archive in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error
// is returned.
func Open(dbDir string, opts Options) (*DB, error) {
	dbPath := filepath.Join(dbDir, "webharvest.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("archive not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check archive path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	// SQLite only supports one writer; multiple connections just contend.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	a := &DB{db: db, dbPath: dbPath}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := a.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return a, nil
}

// Close closes the database connection.
func (a *DB) Close() error {
	return a.db.Close()
}

// Path returns the path to the SQLite database file.
func (a *DB) Path() string {
	return a.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (a *DB) createTables() error {
	schema := `
	-- Articles store one row per extracted article, deduplicated by URL
	CREATE TABLE IF NOT EXISTS articles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		author TEXT,
		published_date TEXT,
		source TEXT,
		images TEXT,
		extracted_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_articles_source ON articles(source);
	CREATE INDEX IF NOT EXISTS idx_articles_extracted_at ON articles(extracted_at);
	`

	_, err := a.db.ExecContext(context.Background(), schema)
	return err
}

// Record is a stored article with its archive metadata.
type Record struct {
	// ID is the archive row identifier.
	ID int64

	// URL is the article URL the record was extracted from.
	URL string

	// Article is the stored article.
	Article model.Article

	// ExtractedAt is when the article was stored.
	ExtractedAt time.Time
}

// SaveArticle inserts or updates the article extracted from url.
// Re-extracting the same URL replaces the stored row.
func (a *DB) SaveArticle(ctx context.Context, url string, article *model.Article) (int64, error) {
	var imagesJSON []byte
	if len(article.Images) > 0 {
		var err error
		imagesJSON, err = json.Marshal(article.Images)
		if err != nil {
			return 0, fmt.Errorf("failed to serialize images: %w", err)
		}
	}

	query := `
	INSERT INTO articles (url, title, content, author, published_date, source, images)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(url) DO UPDATE SET
		title = excluded.title,
		content = excluded.content,
		author = excluded.author,
		published_date = excluded.published_date,
		source = excluded.source,
		images = excluded.images,
		extracted_at = CURRENT_TIMESTAMP
	`

	result, err := a.db.ExecContext(ctx, query,
		url,
		article.Title,
		article.Content,
		article.Author,
		article.PublishedDate,
		article.Source,
		string(imagesJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save article: %w", err)
	}

	return result.LastInsertId()
}

// GetByURL retrieves the stored article for a URL.
// Returns nil without error when the URL has not been archived.
func (a *DB) GetByURL(ctx context.Context, url string) (*Record, error) {
	query := `
	SELECT id, url, title, content, author, published_date, source, images, extracted_at
	FROM articles
	WHERE url = ?
	`

	record, err := scanRecord(a.db.QueryRowContext(ctx, query, url))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return record, nil
}

// List returns the most recently archived articles, newest first.
// A non-positive limit returns every record.
func (a *DB) List(ctx context.Context, limit int) ([]*Record, error) {
	query := `
	SELECT id, url, title, content, author, published_date, source, images, extracted_at
	FROM articles
	ORDER BY extracted_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Count returns the number of archived articles.
func (a *DB) Count(ctx context.Context) (int, error) {
	var count int
	if err := a.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecord reads one article row.
func scanRecord(row scanner) (*Record, error) {
	var record Record
	var author, publishedDate, source, imagesJSON sql.NullString
	var extractedAt string

	err := row.Scan(
		&record.ID,
		&record.URL,
		&record.Article.Title,
		&record.Article.Content,
		&author,
		&publishedDate,
		&source,
		&imagesJSON,
		&extractedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Article.Author = author.String
	record.Article.PublishedDate = publishedDate.String
	record.Article.Source = source.String

	if imagesJSON.String != "" {
		if err := json.Unmarshal([]byte(imagesJSON.String), &record.Article.Images); err != nil {
			return nil, fmt.Errorf("failed to parse images: %w", err)
		}
	}

	record.ExtractedAt = parseTimestamp(extractedAt)

	return &record, nil
}

// parseTimestamp parses the timestamp formats SQLite emits depending on
// version and configuration.
func parseTimestamp(s string) time.Time {
	formats := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04:05Z",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
