package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/pluqqy/docdesk/internal/config"
	"github.com/pluqqy/docdesk/internal/logging"
	"github.com/pluqqy/docdesk/internal/telemetry"
	"github.com/pluqqy/docdesk/pkg/client"
)

// CommandContext carries what every command needs: the loaded
// configuration, a logger and a client for the document service.
type CommandContext struct {
	Config   *config.Config
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Client   *client.Client

	shutdown []telemetry.ShutdownFunc
}

// NewCommandContext loads configuration from configFile, the environment
// and flags, then wires logging, metrics, tracing and the client.
func NewCommandContext(ctx context.Context, configFile string, flags *pflag.FlagSet, version string) (*CommandContext, error) {
	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile, Flags: flags})
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log, version)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	c := &CommandContext{
		Config:   cfg,
		Logger:   logger,
		Registry: telemetry.NewRegistry(),
	}

	metrics, err := client.NewMetrics(c.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	traceShutdown, err := telemetry.InitTracing(ctx, cfg.Tracing, version, logger)
	if err != nil {
		return nil, err
	}
	c.shutdown = append(c.shutdown, traceShutdown)

	metricsShutdown, err := telemetry.ServeMetrics(cfg.Metrics.Addr, c.Registry, logger)
	if err != nil {
		c.Close(ctx)
		return nil, fmt.Errorf("failed to start metrics endpoint: %w", err)
	}
	c.shutdown = append(c.shutdown, metricsShutdown)

	c.Client, err = client.New(client.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
		Logger:  logger,
		Metrics: metrics,
	})
	if err != nil {
		c.Close(ctx)
		return nil, err
	}

	logger.Debug("command context ready", zap.String("base_url", cfg.BaseURL))
	return c, nil
}

// Close stops telemetry and flushes the logger
func (c *CommandContext) Close(ctx context.Context) error {
	var errs []error
	for i := len(c.shutdown) - 1; i >= 0; i-- {
		if err := c.shutdown[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	c.shutdown = nil
	// Sync on a Nop logger or a closed terminal is not worth reporting
	_ = c.Logger.Sync()
	return errors.Join(errs...)
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) == 0 {
		return fmt.Errorf("no editor configured")
	}

	editorCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}

// EditContent opens initial content in the editor and returns the saved text
func (e *EditorLauncher) EditContent(pattern, initial string) (string, error) {
	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(initial); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := e.OpenFile(tmpFile.Name()); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(data), nil
}

// ContentSource names where create takes the document content from
type ContentSource struct {
	Content string
	File    string
	Stdin   bool
}

// ReadContent resolves the content of a new document from exactly one source
func ReadContent(src ContentSource, in io.Reader) (string, error) {
	set := 0
	if src.Content != "" {
		set++
	}
	if src.File != "" {
		set++
	}
	if src.Stdin {
		set++
	}
	if set > 1 {
		return "", fmt.Errorf("use only one of --content, --file or --stdin")
	}

	switch {
	case src.File != "":
		if err := ValidateFilePath(src.File); err != nil {
			return "", err
		}
		data, err := os.ReadFile(src.File)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", src.File, err)
		}
		return string(data), nil
	case src.Stdin:
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		return src.Content, nil
	}
}
