package main

import (
	"log/slog"
	"strings"
	"sync"

	"substation/internal/catalog"
	"substation/internal/config"
	"substation/internal/document"
	"substation/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Read(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.configValue())
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// loadOptions translates config into document load options.
func (c *commandContext) loadOptions() document.LoadOptions {
	cfg := c.configValue()
	if cfg == nil {
		return document.LoadOptions{}
	}
	return document.LoadOptions{
		Ingest: document.IngestOptions{
			StyleFields: cfg.Load.StyleFields,
			EventFields: cfg.Load.EventFields,
		},
	}
}

func (c *commandContext) loadDocument(path string) (*document.Document, error) {
	return document.LoadFile(path, c.loadOptions())
}

func (c *commandContext) openCatalog() (*catalog.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return catalog.Open(cfg.Paths.CatalogPath)
}
