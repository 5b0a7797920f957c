package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// newWatchCmd creates the "watch" subcommand for auto-rebuilding on
// variables-file changes.
func newWatchCmd() *cobra.Command {
	cfg := loadEnvConfig()
	var (
		blueprintName string
		debounce      time.Duration
		outputFormat  string
		outputFile    string
	)

	cmd := &cobra.Command{
		Use:   "watch VARIABLES_FILE",
		Short: "Auto-rebuild on variables-file changes",
		Long: `Watch monitors the variables file and rebuilds the template on each change.

Rapid changes are debounced to avoid excessive rebuilds. Editors that
replace the file on save are handled by watching the containing directory.

Examples:
    blueprints watch vars.yaml -o template.json
    blueprints watch vars.yaml --debounce 1s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], watchOptions{
				blueprintName: blueprintName,
				debounce:      debounce,
				outputFormat:  outputFormat,
				outputFile:    outputFile,
			})
		},
	}

	cmd.Flags().StringVarP(&blueprintName, "blueprint", "b", defaultBlueprint, "Blueprint to build")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", cfg.Format, "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputFile, "output", "o", cfg.Output, "Output file (default: stdout)")

	return cmd
}

type watchOptions struct {
	blueprintName string
	debounce      time.Duration
	outputFormat  string
	outputFile    string
}

// runWatch monitors the variables file and rebuilds on changes.
func runWatch(varsFile string, opts watchOptions) error {
	absPath, err := filepath.Abs(varsFile)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the directory, not the file: editors that save by rename would
	// otherwise detach the watch.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}
	fmt.Printf("Watching: %s\n", absPath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("Running initial build...")
	rebuild(varsFile, opts)

	var debounceTimer *time.Timer
	rebuildChan := make(chan struct{}, 1)

	fmt.Println("\nWatching for changes... (Ctrl+C to stop)")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Debounce: reset the timer on each change.
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case rebuildChan <- struct{}{}:
				default:
				}
			})

		case <-rebuildChan:
			fmt.Printf("\n[%s] Change detected, rebuilding...\n", time.Now().Format("15:04:05"))
			rebuild(varsFile, opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// rebuild runs one build pass, reporting failures without stopping the
// watch loop.
func rebuild(varsFile string, opts watchOptions) {
	if err := runBuild(varsFile, opts.blueprintName, opts.outputFormat, opts.outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Build failed: %v\n", err)
		return
	}
	if opts.outputFile != "" {
		fmt.Printf("Wrote %s\n", opts.outputFile)
	}
}
