package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateBatch(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn or error)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateBatch() error {
	if c.Batch.Workers < 1 {
		return errors.New("batch.workers must be positive")
	}
	if c.Batch.Workers > maxBatchWorkers {
		return fmt.Errorf("batch.workers must be at most %d", maxBatchWorkers)
	}
	if c.Batch.RecordHistory && c.Paths.HistoryDB == "" {
		return errors.New("paths.history_db must be set when batch.record_history is true")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case OutputTable, OutputJSON, OutputAuto:
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q (want table, json or auto)", c.Output.Format)
	}
}
