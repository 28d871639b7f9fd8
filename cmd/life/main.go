// Command life runs a headless Game of Life.
//
// Usage:
//
//	go run ./cmd/life -pattern glider.rle -rate 30 -generations 1000
//
// Commands are read from stdin, one per line:
//
//	place x y    make a cell alive
//	remove x y   kill a cell
//	pause        pause or resume
//	clear        kill every cell
//	rate +n      change the rate by n generations per second
//	backup       store the world
//	restore      return to the most recent backup
//	quit         stop
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/axcontainers/internal/cancel"
	"github.com/randomizedcoder/axcontainers/internal/life"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "life:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	pattern := flag.String("pattern", "", "plaintext (.cells) or RLE (.rle) pattern file")
	rules := flag.String("rules", "", "B/S rulestring, e.g. B36/S23 (default: the pattern's, else B3/S23)")
	rate := flag.Int("rate", 0, "generations per second")
	generations := flag.Uint64("generations", 0, "stop after this many generations (0 = until quit)")
	paused := flag.Bool("paused", false, "start paused")
	metricsAddr := flag.String("metrics-addr", "", "serve prometheus metrics on this address")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg := life.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = life.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pattern":
			cfg.Pattern = *pattern
		case "rules":
			cfg.Rules = *rules
		case "rate":
			cfg.Rate = *rate
		case "generations":
			cfg.Generations = *generations
		case "paused":
			cfg.Paused = *paused
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(*debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	pat, err := loadPattern(cfg.Pattern)
	if err != nil {
		return err
	}
	rulestring := cfg.Rules
	if rulestring == "" {
		rulestring = pat.Rule
	}
	r, err := life.ParseRules(rulestring)
	if err != nil {
		return err
	}

	world := life.NewWorld(r, life.NewPool[life.Cell](cfg.MaxCells))
	defer world.Close()
	if err := world.Load(pat, 0, 0); err != nil {
		return fmt.Errorf("loading %s: %w", cfg.Pattern, err)
	}

	inputs := life.NewInputs(life.NewPool[life.Input](0), cfg.MaxInputs)
	defer inputs.Close()
	mb, err := life.NewMailbox(cfg.MaxInputs, 1)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := life.NewMetrics(reg)
	if err != nil {
		return err
	}

	ctx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()
	g, ctx := errgroup.WithContext(ctx)
	stop := cancel.NewContext(ctx)

	runner := life.NewRunner(cfg, world, inputs, mb, stop, log, metrics)
	g.Go(func() error {
		defer stop.Cancel()
		return runner.Run()
	})

	// Scanning stdin cannot be interrupted, so the reader is not part of
	// the group; it dies with the process.
	go readCommands(os.Stdin, mb, log)

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			log.Info("Serving metrics", zap.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-stop.Context().Done()
			ctx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			return srv.Shutdown(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Generations: %s\n", humanize.Comma(int64(runner.Generation())))
	fmt.Printf("Population:  %s\n", humanize.Comma(int64(world.Population())))
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

func loadPattern(path string) (life.Pattern, error) {
	if path == "" {
		return life.Pattern{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return life.Pattern{}, err
	}
	content := string(b)
	p, err := life.ParsePattern(life.FormatOf(path, content), content)
	if err != nil {
		return life.Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func readCommands(r io.Reader, mb *life.Mailbox, log *zap.Logger) {
	pid := mb.Producer()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		in, err := life.ParseInput(sc.Text())
		if err != nil {
			log.Warn("Ignoring command", zap.String("line", sc.Text()), zap.Error(err))
			continue
		}
		if !mb.Post(pid, in) {
			log.Warn("Mailbox full, dropping command", zap.Stringer("kind", in.Kind))
		}
	}
	if err := sc.Err(); err != nil {
		log.Error("Reading commands", zap.Error(err))
	}
}
