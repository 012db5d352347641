package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/catalogkit/layered-catalog-go/catalog"
	"github.com/catalogkit/layered-catalog-go/catalog/memoryengine"
	"github.com/catalogkit/layered-catalog-go/catalog/oteladapters"
	"github.com/catalogkit/layered-catalog-go/catalog/slogadapters"
	"github.com/catalogkit/layered-catalog-go/internal/config"
	"github.com/catalogkit/layered-catalog-go/internal/tracing"
)

const (
	promptCommand     = "Enter command (add, remove, show, exit): "
	promptTitle       = "Enter title: "
	promptAuthor      = "Enter author: "
	promptYear        = "Enter year: "
	promptRemoveTitle = "Enter title to remove: "
	msgRecordAdded    = "Record added."
	msgRecordRemoved  = "Record removed."
	msgRecordNotFound = "Record not found."
	msgEmptyCatalog   = "No records in catalog."
	msgInvalidCommand = "Invalid command. Please try again."
)

// runShell composes the store chain from the loaded configuration and drives
// the interactive command loop until "exit" or end of input.
func runShell(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cfg.Debug)

	provider, err := tracing.NewProvider(cfg.Tracing.Enabled)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(context.Background()) }()

	manager, cleanup, err := buildManager(cfg, logger, provider)
	if err != nil {
		return err
	}
	defer cleanup()

	return interact(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), manager)
}

// newLogger builds the structured logger backing every layer of the chain.
func newLogger(debug bool) *slogadapters.SlogLogger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return slogadapters.NewSlogLoggerWithHandler(handler)
}

// buildManager composes the decorator chain bottom-up: base engine, then
// audit, then sorted view, and hands the top of the chain to the manager.
// The returned cleanup closes the audit log file, if one was opened.
func buildManager(
	cfg config.Config,
	logger catalog.Logger,
	provider *tracing.Provider,
) (*catalog.Manager, func(), error) {
	cleanup := func() {}

	store, err := memoryengine.NewStore(memoryengine.WithLogger(logger))
	if err != nil {
		return nil, cleanup, fmt.Errorf("creating store: %w", err)
	}

	var chain catalog.Store = store

	if cfg.Audit.Enabled {
		options := []catalog.AuditOption{catalog.WithAuditLogger(logger)}

		if cfg.Audit.Path != "" {
			file, openErr := os.OpenFile(cfg.Audit.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if openErr != nil {
				return nil, cleanup, fmt.Errorf("opening audit log: %w", openErr)
			}

			cleanup = func() { _ = file.Close() }
			options = append(options, catalog.WithAuditSink(catalog.NewJSONLinesSink(file)))
		} else {
			options = append(options, catalog.WithAuditSink(catalog.NewLoggerSink(logger)))
		}

		if provider.Enabled() {
			options = append(options,
				catalog.WithAuditTracing(oteladapters.NewTracingCollector(provider.Tracer())),
				catalog.WithAuditMetrics(oteladapters.NewMetricsCollector(otel.Meter("catalog"))),
			)
		}

		chain, err = catalog.NewAuditDecorator(chain, options...)
		if err != nil {
			return nil, cleanup, fmt.Errorf("creating audit decorator: %w", err)
		}
	}

	if cfg.Sorted {
		chain, err = catalog.NewSortedView(chain)
		if err != nil {
			return nil, cleanup, fmt.Errorf("creating sorted view: %w", err)
		}
	}

	manager, err := catalog.NewManager(chain, catalog.WithManagerLogger(logger))
	if err != nil {
		return nil, cleanup, fmt.Errorf("creating manager: %w", err)
	}

	return manager, cleanup, nil
}

// interact reads commands line by line until "exit" or end of input.
// Validation errors are displayed and the loop continues; any other manager
// error ends the loop, preserving fail-fast semantics at the boundary.
func interact(ctx context.Context, in io.Reader, out io.Writer, manager *catalog.Manager) error {
	scanner := bufio.NewScanner(in)

	for {
		command, ok := prompt(scanner, out, promptCommand)
		if !ok {
			return scanner.Err()
		}

		switch strings.ToLower(command) {
		case "add":
			if err := runAdd(ctx, scanner, out, manager); err != nil {
				return err
			}

		case "remove":
			if err := runRemove(ctx, scanner, out, manager); err != nil {
				return err
			}

		case "show":
			if err := runShow(ctx, out, manager); err != nil {
				return err
			}

		case "exit":
			return nil

		default:
			fmt.Fprintln(out, msgInvalidCommand)
		}
	}
}

func runAdd(ctx context.Context, scanner *bufio.Scanner, out io.Writer, manager *catalog.Manager) error {
	title, ok := prompt(scanner, out, promptTitle)
	if !ok {
		return scanner.Err()
	}
	author, ok := prompt(scanner, out, promptAuthor)
	if !ok {
		return scanner.Err()
	}
	rawYear, ok := prompt(scanner, out, promptYear)
	if !ok {
		return scanner.Err()
	}

	_, err := manager.AddRecord(ctx, title, author, rawYear)
	if err != nil {
		var validationErr *catalog.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintf(out, "Error: %s\n", validationErr.Error())
			return nil
		}

		return fmt.Errorf("adding record: %w", err)
	}

	fmt.Fprintln(out, msgRecordAdded)

	return nil
}

func runRemove(ctx context.Context, scanner *bufio.Scanner, out io.Writer, manager *catalog.Manager) error {
	title, ok := prompt(scanner, out, promptRemoveTitle)
	if !ok {
		return scanner.Err()
	}

	removed, err := manager.RemoveRecord(ctx, title)
	if err != nil {
		return fmt.Errorf("removing record: %w", err)
	}

	if removed {
		fmt.Fprintln(out, msgRecordRemoved)
	} else {
		fmt.Fprintln(out, msgRecordNotFound)
	}

	return nil
}

func runShow(ctx context.Context, out io.Writer, manager *catalog.Manager) error {
	records, err := manager.ListRecords(ctx)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, msgEmptyCatalog)
		return nil
	}

	for _, record := range records {
		fmt.Fprintln(out, record.String())
	}

	return nil
}

// prompt writes the prompt and reads one trimmed line. The boolean is false
// when input is exhausted.
func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)

	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}
