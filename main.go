package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-dla/utils"
)

var errInterrupted = errors.New("interrupted")

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	found := err == nil
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config = utils.DefaultConfig()
	}

	if err = utils.ConfigureLogging(os.Stderr, config.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.WithField("path", *configPath).WithField("found", found).Debug("configuration loaded")

	seed := config.ResolveSeed()
	err = runWithSignals(context.Background(), func(ctx context.Context) error {
		if config.Runs > 1 {
			return runBatch(ctx, config, seed)
		}
		return runInteractive(ctx, config, seed)
	})
	if err != nil && !errors.Is(err, errInterrupted) {
		log.WithError(err).Error("run failed")
		os.Exit(1)
	}
}

// runWithSignals runs fn beside a watcher that cancels it on Ctrl+C or SIGTERM
func runWithSignals(parent context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		select {
		case sig := <-sigChan:
			log.WithField("signal", sig.String()).Info("shutting down gracefully")
			return errInterrupted
		case <-ctx.Done():
			return nil
		}
	})
	eg.Go(func() error {
		defer cancel()
		return fn(ctx)
	})
	return eg.Wait()
}
