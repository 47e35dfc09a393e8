package config

import (
	"errors"
	"net"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Store.validate(),
		c.Live.validate(c.Store.Driver),
	)
}

func (s ServerConfig) validate() error {
	var errs []error
	switch _, _, err := net.SplitHostPort(s.HTTPAddr); {
	case s.HTTPAddr == "":
		errs = append(errs, missing("server", "http_addr"))
	case err != nil:
		errs = append(errs, invalid("server", "http_addr", "%v", err))
	}
	if s.GRPCAddr != "" {
		if _, _, err := net.SplitHostPort(s.GRPCAddr); err != nil {
			errs = append(errs, invalid("server", "grpc_addr", "%v", err))
		} else if s.GRPCAddr == s.HTTPAddr {
			errs = append(errs, invalid("server", "grpc_addr", "must differ from http_addr"))
		}
	}
	if s.ReadHeaderTimeout < 0 {
		errs = append(errs, invalid("server", "read_header_timeout", "must not be negative"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, invalid("server", "shutdown_timeout", "must be positive"))
	}
	return errors.Join(errs...)
}

func (s StoreConfig) validate() error {
	switch s.Driver {
	case store.DriverPostgres, store.DriverMemory:
		return nil
	case store.DriverDisk:
		if s.DiskPath == "" {
			return missing("store", "disk_path")
		}
		return nil
	default:
		return invalid("store", "driver", "%q (want postgres, memory or disk)", s.Driver)
	}
}

func (l LiveConfig) validate(driver store.Driver) error {
	var errs []error
	switch l.CommitMode {
	case commit.ModeBestEffort:
	case commit.ModeTransactional:
		// Only stores implementing commit.BatchWriter can apply a batch atomically.
		if driver == store.DriverDisk {
			errs = append(errs, invalid("live", "commit_mode", "the disk store has no transactional writes"))
		}
	default:
		errs = append(errs, invalid("live", "commit_mode", "%q (want best_effort or transactional)", l.CommitMode))
	}
	if l.CommitConcurrency < 0 {
		errs = append(errs, invalid("live", "commit_concurrency", "must not be negative"))
	}
	if l.WriteTimeout < 0 {
		errs = append(errs, invalid("live", "write_timeout", "must not be negative"))
	}
	return errors.Join(errs...)
}
