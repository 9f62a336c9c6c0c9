package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/yashkumarverma/cronparser/src/command"
	"github.com/yashkumarverma/cronparser/src/expander"
	"github.com/yashkumarverma/cronparser/src/report"
	"github.com/yashkumarverma/cronparser/src/schedule"
	"github.com/yashkumarverma/cronparser/src/utils"
	"github.com/yashkumarverma/cronparser/src/utils/cache"
	"go.uber.org/multierr"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}

// run parses one cron line from args and renders it to stdout
func run(name string, args []string, stdout, stderr io.Writer) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config, err := utils.LoadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	logger, err := utils.NewLogger(config)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	logger = utils.GetChildLogger(logger, map[string]string{"request_id": uuid.New().String()})
	ctx = utils.LoggerWithCtx(ctx, logger)

	opts, fields, err := command.ParseCommandLine(name, args, config, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	var exp *expander.Expander
	if opts.Strict {
		exp = expander.New(expander.WithStrictBounds())
	} else {
		exp = expander.New()
	}

	var store schedule.Cache
	var client *cache.Client
	if !opts.NoCache {
		client, err = cache.NewClient(ctx, config)
		if err != nil {
			logger.Warnw("Cache unavailable, continuing without it", "scheme", config.CacheURLScheme, "error", err)
		} else {
			store = client
		}
	}

	status := exitOK
	record, err := schedule.NewService(exp, store, config.CacheTTL).Parse(ctx, fields)
	if err != nil {
		logger.Errorw("Failed to parse cron expression", "error", err)
		fmt.Fprintln(stderr, err)
		status = exitError
	} else if err := report.Render(stdout, record.Schedule, opts.Output); err != nil {
		logger.Errorw("Failed to render schedule", "format", opts.Output, "error", err)
		fmt.Fprintln(stderr, err)
		status = exitError
	}

	var shutdownErr error
	if client != nil {
		shutdownErr = multierr.Append(shutdownErr, client.Close())
	}
	// stderr cannot always be synced; only report real failures
	if err := logger.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
		shutdownErr = multierr.Append(shutdownErr, err)
	}
	if shutdownErr != nil {
		fmt.Fprintln(stderr, "shutdown:", shutdownErr)
	}
	return status
}
