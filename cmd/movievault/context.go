package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ChrisDaskalos/myMovieRatingApp/internal/config"
	"github.com/ChrisDaskalos/myMovieRatingApp/internal/library"
	"github.com/ChrisDaskalos/myMovieRatingApp/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error

	// sessionID tags every log event of one invocation so interleaved
	// output from concurrent shells stays attributable.
	sessionID string
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		sessionID:  uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger.With(logging.String("session_id", c.sessionID))
	})
	return c.logger, c.loggerErr
}

// openLibrary resolves config and logging, then opens a locked catalog
// session. Callers must Close the returned library.
func (c *commandContext) openLibrary() (*library.Library, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return library.Open(cfg, logger)
}
