package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/lunchsweeper/internal/config"
	"github.com/vancomm/lunchsweeper/internal/logging"
	"github.com/vancomm/lunchsweeper/internal/mines"
	"github.com/vancomm/lunchsweeper/internal/stats"
)

var (
	log = logrus.New()

	configPath string
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", "", usage)
	flag.StringVar(&configPath, "c", "", usage+" (shorthand)")
}

// run feeds lines from in to executeCommand until in is exhausted or ctx is
// done. When ctx is done and in is an [io.Closer], in is closed so a pending
// read returns.
func run(ctx context.Context, s *mines.Session, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	done := make(chan struct{})

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}
		if err := gCtx.Err(); err != nil {
			return err
		}
		return scanner.Err()
	})
	g.Go(func() error {
		defer close(done)
		fmt.Fprintln(out, render(s.Snapshot()))
		for {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				res, err := executeCommand(s, line)
				if err != nil {
					log.WithError(err).WithField("command", line).Debug("command failed")
					fmt.Fprintln(out, "error:", err)
					continue
				}
				if res != "" {
					fmt.Fprintln(out, res)
				}
			}
		}
	})
	g.Go(func() error {
		select {
		case <-gCtx.Done():
			if c, ok := in.(io.Closer); ok {
				return c.Close()
			}
		case <-done:
		}
		return nil
	})
	return g.Wait()
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()
	// the second signal falls through to the default handler
	context.AfterFunc(mainCtx, stop)

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	if err := logging.Setup(log, cfg); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	recorder := stats.New()
	session, err := mines.NewSession(
		mines.WithRand(mines.NewRand(cfg.Seed)),
		mines.WithLogger(log),
		mines.WithObserver(recorder),
		mines.WithDifficulty(cfg.Difficulty),
		mines.WithFoodOptions(cfg.Foods.Favorites, cfg.Foods.Normals),
	)
	if err != nil {
		log.Fatal("unable to start a session: ", err)
	}

	err = run(mainCtx, session, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("exit reason: %s\n", err)
	}

	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			log.WithError(err).Error("unable to write metrics")
		}
	}
}
