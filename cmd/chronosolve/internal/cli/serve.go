package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/temporalgraph/chronosolve/config"
	"github.com/temporalgraph/chronosolve/host"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a long-lived solve worker over newline-delimited JSON on stdin/stdout",
	Long: `serve starts one host.Worker and keeps it running until stdin closes or
the process receives SIGINT/SIGTERM. Each input line is a JSON solve
request (the same "events"/"assertions" shape solve reads from a file);
each output line is the worker's Response, per spec.md §6's host/worker
wire protocol.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := host.NewWorker(slog.Default(), host.WithConstants(cfg))
	defer worker.Stop()

	if ready := <-worker.Responses(); ready.Type != host.ResponseReady {
		return fmt.Errorf("serve: worker did not report ready, got %q", ready.Type)
	}

	slog.Info("serve: worker ready, reading requests from stdin")

	return serveLoop(ctx, os.Stdin, os.Stdout, worker)
}

// serveLoop reads one solveRequest per line from in, submits it to worker,
// and writes the matching Response as one JSON line to out, until in is
// exhausted or ctx is canceled. Factored out of runServe so it can run
// against an in-memory reader/writer in tests, the same way AleutianFOSS's
// chat runners take an injectable InputReader.
func serveLoop(ctx context.Context, in io.Reader, out io.Writer, worker *host.Worker) error {
	scanner := bufio.NewScanner(in)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			slog.Info("serve: shutting down")
			return nil
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req solveRequest
		if err := json.Unmarshal(line, &req); err != nil {
			slog.Error("serve: malformed request", slog.String("error", err.Error()))
			continue
		}

		id := worker.Submit(req.Events, req.Assertions)
		resp := <-worker.Responses()
		if resp.RequestID != id {
			slog.Error("serve: response id mismatch",
				slog.Int64("expected", id), slog.Int64("got", resp.RequestID))
			continue
		}

		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("encoding response: %w", err)
		}
	}

	return scanner.Err()
}
