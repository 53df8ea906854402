package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/dayplan/internal/config"
	"github.com/sandeepkv93/dayplan/internal/logging"
	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/schedule"
	"github.com/sandeepkv93/dayplan/internal/update"
	"github.com/sandeepkv93/dayplan/internal/views"
)

func main() {
	fs := flag.NewFlagSet("dayplan", flag.ExitOnError)
	batch := fs.Bool("batch", false, "read commands from stdin, one per line, without the TUI")
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dayplan: %v\n", err)
		os.Exit(2)
	}

	logger, closer, err := logging.Open(cfg.LogOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "dayplan: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()
	logger.Info("daily schedule organizer started")
	defer logger.Info("application stopped")

	store := schedule.NewStore(logger)
	store.AddObserver(&schedule.LogNotifier{Logger: logger})

	if *batch {
		if err := runBatch(os.Stdin, os.Stdout, store, cfg, logger); err != nil {
			logger.Error("batch run failed", "err", err)
			fmt.Fprintf(os.Stderr, "dayplan: %v\n", err)
			os.Exit(1)
		}
		return
	}

	program := tea.NewProgram(update.NewModel(store, update.Options{
		DefaultPriority: cfg.Priority(),
		HelpStyle:       cfg.HelpStyle,
		Logger:          logger,
	}))
	if _, err := program.Run(); err != nil {
		logger.Error("critical error", "err", err)
		fmt.Fprintf(os.Stderr, "dayplan failed: %v\n", err)
		os.Exit(1)
	}
}

func runBatch(in io.Reader, out io.Writer, store *schedule.Store, cfg config.Config, logger *log.Logger) error {
	store.AddObserver(&batchNotifier{out: out})
	actions := update.Actions{
		Store:           store,
		DefaultPriority: cfg.Priority(),
		Logger:          logger,
		Shown: func(l update.Listing) {
			fmt.Fprintln(out, l.Render())
		},
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit") {
			break
		}
		res, err := actions.Run(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, res.Message)
	}
	return scanner.Err()
}

type batchNotifier struct {
	out io.Writer
}

func (b *batchNotifier) OnConflict(message string, existing model.Task) error {
	_, err := fmt.Fprintln(b.out, views.RenderConflict(message, existing.String()))
	return err
}
