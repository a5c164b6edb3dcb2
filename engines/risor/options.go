package risor

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/tavener/go-hamlet/haml"
	"github.com/tavener/go-hamlet/internal/helpers"
)

// FunctionalOption is a function that configures a Compiler instance.
type FunctionalOption func(*Compiler) error

// WithOptions sets the template compilation options (escaping, output format,
// namespace and path).
func WithOptions(opts haml.Options) FunctionalOption {
	return func(c *Compiler) error {
		c.opts = opts
		return nil
	}
}

// WithLogHandler creates an option to set the log handler for the compiler.
// This is the preferred option for logging configuration as it provides
// more flexibility through the slog.Handler interface.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(c *Compiler) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger creates an option to set a specific logger for the compiler.
// This is less flexible than WithLogHandler but allows users to customize
// their logging group configuration.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(c *Compiler) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

// setupLogger configures the logger and handler based on the current state.
// This is idempotent and can be called multiple times during initialization.
func (c *Compiler) setupLogger() {
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
	} else {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "risor", "Compiler")
	}
}

var (
	identRe       = regexp.MustCompile(`^[A-Za-z_]\w*$`)
	dottedIdentRe = regexp.MustCompile(`^[A-Za-z_]\w*(\.[A-Za-z_]\w*)*$`)
)

// validate checks if the compiler configuration is valid.
func (c *Compiler) validate() error {
	if c.logHandler == nil && c.logger == nil {
		return fmt.Errorf("either log handler or logger must be specified")
	}
	if !identRe.MatchString(c.opts.Namespace) {
		return fmt.Errorf("namespace %q is not a valid identifier", c.opts.Namespace)
	}
	if c.opts.CustomEscape != "" && !dottedIdentRe.MatchString(c.opts.CustomEscape) {
		return fmt.Errorf("custom escape %q is not a valid reference", c.opts.CustomEscape)
	}
	return nil
}

// applyDefaults sets the default values for a compiler.
func (c *Compiler) applyDefaults() {
	if c.logHandler == nil && c.logger == nil {
		c.logHandler = slog.NewTextHandler(os.Stderr, nil)
	}

	if c.opts == (haml.Options{}) {
		c.opts = haml.DefaultOptions()
	}
}
