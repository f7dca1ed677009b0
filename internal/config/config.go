package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These mirror the behavior of the upstream services and typical page
// sizes; most can be overridden via CLI flags.
const (
	// DefaultTimeout is the per-request timeout for extraction and search.
	// 10 seconds is long enough for slow news sites without letting a
	// single stuck request hold up a batch.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodySize limits the response body size to read.
	// 10MB covers any realistic HTML page while preventing memory
	// exhaustion from unexpectedly large responses.
	DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

	// DefaultBatchSize is the number of concurrent extractions when
	// processing multiple URLs. Higher values increase throughput but
	// hammer remote sites harder.
	DefaultBatchSize = 5

	// DefaultNumResults is the number of search results requested when the
	// caller does not specify one. The executor clamps all requests to
	// MaxNumResults before calling upstream.
	DefaultNumResults = 30

	// MaxNumResults is the hard ceiling on search results per request.
	// The upstream API rejects larger counts, and clamping here protects
	// against abusive or accidental oversized requests.
	MaxNumResults = 20

	// DefaultLanguage is the default search result language code.
	DefaultLanguage = "ja"

	// SearchAPIKeyEnv is the environment variable holding the Brave Search
	// subscription token. The credential is read from the process
	// environment, never passed as a call argument, so it cannot leak into
	// shell history or logs via flags.
	SearchAPIKeyEnv = "BRAVE_SEARCH_API_KEY"

	// AppName is the application name used for XDG directory paths.
	AppName = "webharvest"
)

// Config holds all configuration options for webharvest.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Timeout is the per-request timeout for fetch and search operations.
	Timeout time.Duration

	// MaxBodySize is the maximum response body size in bytes to read.
	// Set to 0 to use the default.
	MaxBodySize int64

	// UserAgent overrides the browser-like User-Agent header.
	// Empty means use the built-in default.
	UserAgent string

	// BatchSize is the number of concurrent extractions when processing
	// multiple URLs.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output instead of human-readable
	// format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for results.
	// When empty, results are written to stdout.
	ReportFile string

	// ConfigFilePath is the path to the site-rules file. If empty, the
	// loader searches .webharvest.yml in the current directory and then
	// the XDG config directory.
	ConfigFilePath string

	// SiteRules holds per-hostname extraction rules loaded from the
	// config file. Nil when no config file is present.
	SiteRules *File

	// DBDir is the directory for the article archive database.
	// Empty means the XDG data directory.
	DBDir string

	// SaveToDB indicates whether successful extractions are stored in the
	// article archive.
	SaveToDB bool
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Timeout:     DefaultTimeout,
		MaxBodySize: DefaultMaxBodySize,
		BatchSize:   DefaultBatchSize,
	}
}

// SearchAPIKey returns the Brave Search credential from the environment.
// An empty return value is a first-class condition: the search executor
// fails fast without attempting a network call.
func SearchAPIKey() string {
	return os.Getenv(SearchAPIKeyEnv)
}

// XDGDataDir returns the XDG data directory for webharvest.
// On Linux: ~/.local/share/webharvest
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for webharvest.
// On Linux: ~/.config/webharvest
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found rather than collecting all errors,
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
