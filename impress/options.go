package impress

import (
	"errors"

	"go.uber.org/zap"
)

// resolverConfig holds the resolved configuration for a resolver.
type resolverConfig struct {
	baseDir string
	store   Store
	logger  *zap.Logger
}

// Option configures resolver construction.
type Option func(*resolverConfig) error

// WithBaseDir resolves entries against dir on the local filesystem.
// Default: the working directory at construction time.
func WithBaseDir(dir string) Option {
	return func(cfg *resolverConfig) error {
		if dir == "" {
			return errors.New("impress: base directory must be non-empty")
		}
		cfg.baseDir = dir
		return nil
	}
}

// WithStore resolves entries against store instead of the local
// filesystem. Takes precedence over WithBaseDir.
func WithStore(store Store) Option {
	return func(cfg *resolverConfig) error {
		if store == nil {
			return errors.New("impress: store must be non-nil")
		}
		cfg.store = store
		return nil
	}
}

// WithLogger sets the logger that receives warnings for skipped entries.
// Default: logging.Default() (console warnings on stderr).
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *resolverConfig) error {
		if logger == nil {
			return errors.New("impress: logger must be non-nil")
		}
		cfg.logger = logger
		return nil
	}
}
