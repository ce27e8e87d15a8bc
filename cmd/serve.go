package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kozaktomas/face-verify/internal/config"
	"github.com/kozaktomas/face-verify/internal/embedder"
	"github.com/kozaktomas/face-verify/internal/verification"
	"github.com/kozaktomas/face-verify/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the verification HTTP server",
	Long: `Start the face verification server.
The server exposes embed, verify and health endpoints over JSON and talks
to the configured InsightFace embedding server for detection.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides WEB_PORT)")
	serveCmd.Flags().String("host", "", "Host to bind to (overrides WEB_HOST)")
}

// newService builds the embedder handle and verification service from config.
// The embedder is constructed once here and shared by all requests.
func newService(cfg *config.Config) (*verification.Service, *embedder.InsightFace) {
	client := embedder.NewInsightFace(cfg.Embedder.URL, cfg.Embedder.Model)
	svc := verification.New(client, cfg.DefaultThreshold(client.Model()))
	return svc, client
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	port := cfg.Web.Port
	if p := mustGetInt(cmd, "port"); p > 0 {
		port = p
	}
	host := cfg.Web.Host
	if h := mustGetString(cmd, "host"); h != "" {
		host = h
	}

	svc, client := newService(cfg)
	fmt.Printf("Embedding model: %s\n", client.Model())

	server := web.NewServer(cfg, svc, port, host)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting face verification API on http://%s:%d\n", host, port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
