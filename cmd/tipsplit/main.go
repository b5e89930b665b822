package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tipsplit/internal/diag"
	"github.com/mmynk/tipsplit/internal/tui"
	"github.com/mmynk/tipsplit/internal/web"
	"github.com/mmynk/tipsplit/pkg/logging"
)

const (
	defaultPort     = 8080
	shutdownTimeout = 10 * time.Second
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func defaultServePort() int {
	if p, err := strconv.Atoi(getEnv("PORT", "")); err == nil && p > 0 {
		return p
	}
	return defaultPort
}

var (
	logFile  string
	fragment string
	port     int
)

var rootCmd = &cobra.Command{
	Use:   "tipsplit",
	Short: "TipSplit - split the bill, skip the math",
	Long: `TipSplit works out the tip, the total and each person's share of a bill.

Run without arguments to start the interactive calculator in the terminal.
Use "tipsplit serve" to offer the same calculator in a browser.`,
	SilenceUsage: true,
	RunE:         runTerminal,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator over HTTP",
	Long: `Serves the calculator page at /, the Connect API at
/tipsplit.v1.CalculatorService/Calculate, health at /healthz and
Prometheus metrics at /metrics. Nothing entered is stored.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.Flags().StringVar(&logFile, "log-file",
		getEnv("TIPSPLIT_LOG_FILE", filepath.Join(os.TempDir(), "tipsplit.log")),
		"file receiving diagnostic logs (env TIPSPLIT_LOG_FILE)")
	rootCmd.Flags().StringVar(&fragment, "open", "", `view to open first: "#terms" or "#privacy"`)

	serveCmd.Flags().IntVarP(&port, "port", "p", defaultServePort(), "port to listen on (env PORT)")

	rootCmd.AddCommand(serveCmd)
}

func runTerminal(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := logging.ToFile(logFile, logging.LevelFromEnv())
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(cmd.Context(), tui.Options{
		Logger:   logger,
		Reporter: diag.NewLogReporter(logger),
		Fragment: fragment,
	})
}

func runServe(cmd *cobra.Command, args []string) error {
	logging.Setup()

	srv, err := web.New(web.Config{Reporter: diag.NewLogReporter(slog.Default())})
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	addr := fmt.Sprintf(":%d", port)
	httpServer := &http.Server{
		Addr: addr,
		// Wrap with h2c for HTTP/2 without TLS
		Handler:           h2c.NewHandler(srv.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-cmd.Context().Done():
	}

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("tipsplit failed", "error", err)
		stop()
		os.Exit(1)
	}
}
