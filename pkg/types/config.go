package types

import "errors"

// Supported backend names.
const (
	BackendSheets = "sheets"
	BackendSQLite = "sqlite"
)

// DefaultCacheTTLSeconds bounds how long a loaded table may be served from
// the read cache before the next Load round-trips to the remote.
const DefaultCacheTTLSeconds = 60

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend         string `json:"backend" yaml:"backend"`
	SheetURL        string `json:"sheet_url" yaml:"sheet_url"`
	DataDir         string `json:"data_dir" yaml:"data_dir"`
	CacheTTLSeconds int    `json:"cache_ttl" yaml:"cache_ttl"`
}

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrSheetURLEmpty   = errors.New("sheet_url must not be empty for the sheets backend")
	ErrCacheTTLInvalid = errors.New("cache_ttl must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSheets: true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend == BackendSheets && c.SheetURL == "" {
		return ErrSheetURLEmpty
	}
	if c.CacheTTLSeconds < 0 {
		return ErrCacheTTLInvalid
	}
	return nil
}

// CacheTTL returns the configured cache TTL in seconds, falling back to
// DefaultCacheTTLSeconds when unset.
func (c Config) CacheTTL() int {
	if c.CacheTTLSeconds == 0 {
		return DefaultCacheTTLSeconds
	}
	return c.CacheTTLSeconds
}
