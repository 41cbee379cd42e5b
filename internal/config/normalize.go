package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganize()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.MapFile) == "" {
		c.Paths.MapFile = defaultMapFile
	}
	if c.Paths.MapFile, err = expandPath(c.Paths.MapFile); err != nil {
		return fmt.Errorf("paths.map_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganize() {
	c.Organize.DefaultCategory = strings.TrimSpace(c.Organize.DefaultCategory)
	if c.Organize.RenameAttempts == 0 {
		c.Organize.RenameAttempts = defaultRenameAttempts
	}
	if c.Organize.HashChunkBytes == 0 {
		c.Organize.HashChunkBytes = defaultHashChunkBytes
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
