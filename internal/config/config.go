package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/nao1215/spamscan/internal/filter"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "spamscan"

	// DefaultEndpoint is the classification service address.
	DefaultEndpoint = "http://127.0.0.1:8000/analyze"

	// DefaultTimeout bounds each classification request.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxInputSize limits how much email text is read from a file or stdin.
	DefaultMaxInputSize = 1 << 20 // 1MB

	// DefaultMaxBodySize limits the classification service response and request bodies.
	DefaultMaxBodySize = 1 << 20 // 1MB

	// DefaultServerAddr is the listen address of the local service.
	DefaultServerAddr = "127.0.0.1:8000"

	// DefaultMaxConns caps simultaneous connections to the local service.
	DefaultMaxConns = 256

	// DefaultConcurrency is the number of emails classified at once during evaluation.
	DefaultConcurrency = 1

	// EnvEndpoint overrides the configured endpoint when no flag is given.
	EnvEndpoint = "SPAMSCAN_ENDPOINT"
)

// Config holds all configuration options for spamscan.
// It is populated from defaults, then the config file, then the
// environment and finally CLI flags.
type Config struct {
	// Endpoint is the URL of the classification service.
	Endpoint string

	// Timeout bounds each classification request.
	Timeout time.Duration

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	ProxyAddress string

	// UserAgent is sent with classification requests. Empty means the client default.
	UserAgent string

	// MaxBodySize limits request and response bodies in bytes.
	MaxBodySize int64

	// MaxInputSize limits the email text read from a file or stdin.
	MaxInputSize int64

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file given with --config.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// InputFile is the file holding the email text. "-" means stdin.
	InputFile string

	// Local classifies in process with the rule-based filter.
	Local bool

	// ServerAddr is the listen address of the local service.
	ServerAddr string

	// MaxConns caps simultaneous connections to the local service.
	// Zero means no limit.
	MaxConns int

	// AllowedOrigins are the CORS origins accepted by the local service.
	AllowedOrigins []string

	// Concurrency is the number of emails classified at once during evaluation.
	Concurrency int

	// Rules are the spam filter rules.
	Rules filter.Rules
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Endpoint:       DefaultEndpoint,
		Timeout:        DefaultTimeout,
		MaxBodySize:    DefaultMaxBodySize,
		MaxInputSize:   DefaultMaxInputSize,
		ServerAddr:     DefaultServerAddr,
		MaxConns:       DefaultMaxConns,
		AllowedOrigins: []string{"*"},
		Concurrency:    DefaultConcurrency,
		Rules:          filter.DefaultRules(),
	}
}

// XDGConfigDir returns the XDG config directory for spamscan.
// On Linux: ~/.config/spamscan
// On macOS: ~/Library/Application Support/spamscan
// On Windows: %APPDATA%\spamscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ApplyFile overrides the configuration with every value set in f.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}

	if f.Client.Endpoint != "" {
		c.Endpoint = f.Client.Endpoint
	}
	if f.Client.Timeout != 0 {
		c.Timeout = f.Client.Timeout
	}
	if f.Client.Proxy != "" {
		c.ProxyAddress = f.Client.Proxy
	}
	if f.Client.UserAgent != "" {
		c.UserAgent = f.Client.UserAgent
	}
	if f.Client.MaxBodySize != 0 {
		c.MaxBodySize = f.Client.MaxBodySize
	}

	if f.Server.Addr != "" {
		c.ServerAddr = f.Server.Addr
	}
	if f.Server.MaxConns != 0 {
		c.MaxConns = f.Server.MaxConns
	}
	if len(f.Server.AllowedOrigins) > 0 {
		c.AllowedOrigins = f.Server.AllowedOrigins
	}

	if f.Evaluate.Concurrency != 0 {
		c.Concurrency = f.Evaluate.Concurrency
	}

	c.Rules = c.Rules.Merge(f.Filter)
}

// ApplyEnv overrides the configuration from the environment.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.Endpoint = v
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.Endpoint == "" && !c.Local {
		return ErrNoEndpoint
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 || c.MaxInputSize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.MaxConns < 0 {
		return ErrInvalidMaxConns
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	return nil
}
