package workbook

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

// Loader parses workbooks from different sources (filesystem, fs.FS, remote
// sheet export). Implementations live under internal/workbook but satisfy
// this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (*Workbook, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; nil means the
	// operating system.
	FileSystem fs.FS

	// HTTPClient performs remote sheet fetches. Nil with AllowRemote set
	// means the default client.
	HTTPClient *http.Client

	// AllowRemote toggles remote fetching. When false, remote sources load
	// straight from their local cache path.
	AllowRemote bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration

	// Logger receives fetch-fallback notices. Nil means slog.Default().
	Logger *slog.Logger
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote workbooks and
// enables remote fetching.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
		opts.AllowRemote = client != nil
	}
}

// WithRemoteFetch enables remote fetching with an optional timeout.
func WithRemoteFetch(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowRemote = true
		opts.RequestTimeout = timeout
	}
}

// WithLogger injects the logger used for fetch-fallback notices.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Logger = logger
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
