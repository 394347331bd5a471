// ============================================================================
// Taskgraph CLI - Command Line Interface
// ============================================================================
//
// Package: internal/cli
// File: cli.go
// Purpose: Cobra-based command tree over the execution engine
//
// Command Structure:
//   taskgraph                     # Root command
//   ├── run                       # Execute a sample task graph
//   │   └── --config, -c         # Specify config file
//   │   └── --items               # Total items for the sample workload
//   ├── status                    # Show resolved configuration
//   └── version                   # Print build version
//
// Configuration Management:
//   YAML config file (default: configs/default.yaml), covering engine
//   worker count and whether/where to expose Prometheus metrics.
//
// run Command:
//   1. Load config file (missing file falls back to defaults)
//   2. Start the Prometheus metrics HTTP server, if enabled
//   3. Build the sample task graph (internal/cli/workload.go)
//   4. Run it to completion on a new executor.Engine
//   5. Report elapsed time
//
// ============================================================================

package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ChuLiYu/taskgraph/internal/executor"
	"github.com/ChuLiYu/taskgraph/internal/metrics"
)

var configFile string

// version is overridden at build time via -ldflags.
var version = "dev"

// BuildCLI assembles the root cobra command and its subcommands.
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taskgraph",
		Short: "taskgraph: an in-process task-graph execution engine",
		Long: `taskgraph runs a DAG of tasks over a bounded worker pool,
dispatching each task as soon as every declared predecessor has
returned.`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "configs/default.yaml", "config file path")

	rootCmd.AddCommand(buildRunCommand())
	rootCmd.AddCommand(buildStatusCommand())
	rootCmd.AddCommand(buildVersionCommand())

	return rootCmd
}

func buildRunCommand() *cobra.Command {
	var items int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the sample task graph",
		Long:  "Build a fan-out/fan-in task graph over --items items and run it to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(items)
		},
	}

	cmd.Flags().IntVar(&items, "items", 1000, "total items for the sample workload")
	return cmd
}

func runSample(items int) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	workerCount := cfg.Engine.WorkerCount
	if workerCount <= 0 {
		workerCount = 4
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		port := cfg.Metrics.Port
		if port == 0 {
			port = 9090
		}
		go func() {
			if err := metrics.StartServer(port); err != nil {
				slog.Default().Error("metrics server stopped", "error", err)
			}
		}()
	}

	engine := executor.New(workerCount)
	defer engine.Close()
	if collector != nil {
		engine.SetObserver(collector)
	}

	g := buildSampleGraph(items, workerCount)

	slog.Default().Info("starting execution", "items", items, "workers", workerCount)
	started := time.Now()
	if err := engine.Execute(g); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	fmt.Printf("completed %d items across %d workers in %s\n", items, workerCount, time.Since(started))
	return nil
}

func buildStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStatus()
		},
	}
	return cmd
}

func showStatus() error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("taskgraph status")
	fmt.Printf("  config file:    %s\n", configFile)
	fmt.Printf("  worker count:   %d\n", cfg.Engine.WorkerCount)
	fmt.Printf("  metrics:        enabled=%t port=%d\n", cfg.Metrics.Enabled, cfg.Metrics.Port)
	return nil
}

func buildVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the taskgraph version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version)
			return nil
		},
	}
}
