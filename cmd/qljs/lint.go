package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"fortio.org/safecast"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"qljs/internal/batch"
	"qljs/internal/config"
	"qljs/internal/diag"
	"qljs/internal/diagfmt"
	"qljs/internal/eventlog"
	"qljs/internal/globals"
	"qljs/internal/source"
	"qljs/internal/ui"
)

var (
	lintFormat    string
	lintWorkspace string
	lintJobs      int
)

func init() {
	lintCmd.Flags().StringVar(&lintFormat, "format", "pretty", "output format (pretty|json|sarif|short)")
	lintCmd.Flags().StringVar(&lintWorkspace, "workspace", "", "path to a qljs-workspace.toml manifest")
	lintCmd.Flags().IntVar(&lintJobs, "jobs", 0, "max concurrent file analyses (0 = GOMAXPROCS)")
}

var lintCmd = &cobra.Command{
	Use:   "lint [event-log files or directories...]",
	Short: "Analyze recorded parser event logs and report diagnostics",
	Long: `lint replays one or more *.qljs-events.json event logs — a JSON-encoded
stand-in for a parser's visit-event stream (spec.md §6.1 places the actual
parser fully outside this module) — through the variable analyzer and
reports the resulting diagnostics. A directory argument is walked for
every *.qljs-events.json file beneath it; --workspace adds every root a
qljs-workspace.toml manifest names.`,
	RunE: runLint,
}

// group is one batch.Run call's worth of tasks: every file resolving to
// the same *config.Config (same VarOptions, same extra globals).
type group struct {
	cfg   *config.Config
	tasks []batch.FileTask
}

func runLint(cmd *cobra.Command, args []string) error {
	paths, err := collectLintPaths(args, lintWorkspace)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no event logs to lint")
	}

	maxDiagnosticsFlag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	// diag.Bag caps its count in a uint16 (§6.2); reject an out-of-range
	// --max-diagnostics up front instead of letting it silently truncate.
	if _, err := safecast.Conv[uint16](maxDiagnosticsFlag); err != nil {
		return fmt.Errorf("--max-diagnostics: %w", err)
	}
	maxDiagnostics := maxDiagnosticsFlag

	colorMode, _ := cmd.Root().PersistentFlags().GetString("color")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	fs := source.NewFileSet()
	loader := config.NewLoader(globals.StrictMode(), nil)

	groups := make(map[*config.Config]*group)
	var groupOrder []*group
	allTasks := make([]batch.FileTask, 0, len(paths))

	for _, p := range paths {
		log, sourcePath, err := eventlog.LoadFile(p)
		if err != nil {
			return err
		}
		fileID := fs.Add(sourcePath, []byte(log.Source), 0)

		cfg, err := loader.Load(sourcePath)
		if err != nil {
			return err
		}

		task := batch.FileTask{
			Path:    sourcePath,
			Produce: eventlog.ProduceFunc(log, fileID),
		}

		g, ok := groups[cfg]
		if !ok {
			g = &group{cfg: cfg}
			groups[cfg] = g
			groupOrder = append(groupOrder, g)
		}
		g.tasks = append(g.tasks, task)
		allTasks = append(allTasks, task)
	}

	events := make(chan batch.Event, 64)
	showProgress := !quiet && isTerminal(os.Stdout) && lintFormat == "pretty"
	var program *tea.Program
	progressDone := make(chan struct{})
	if showProgress {
		names := make([]string, len(allTasks))
		for i, t := range allTasks {
			names[i] = t.Path
		}
		program = tea.NewProgram(ui.NewProgressModel("qljs lint", names, events))
		go func() {
			_, _ = program.Run()
			close(progressDone)
		}()
	} else {
		close(progressDone)
		go func() {
			for range events {
			}
		}()
	}

	ctx := context.Background()
	var results []batch.FileResult
	for _, g := range groupOrder {
		opts := batch.Options{
			Globals:        g.cfg.Globals,
			VarOptions:     g.cfg.VarOptions,
			MaxDiagnostics: maxDiagnostics,
			Jobs:           lintJobs,
			Sink: func(ev batch.Event) {
				events <- ev
			},
		}
		groupResults, err := batch.Run(ctx, g.tasks, opts)
		if err != nil {
			close(events)
			<-progressDone
			return err
		}
		results = append(results, groupResults...)
	}
	close(events)
	<-progressDone

	hasErrors := false
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
			hasErrors = true
			continue
		}
		if r.Bag.HasErrors() {
			hasErrors = true
		}
		r.Bag.Sort()
	}

	if err := renderLintResults(cmd, results, fs, colorMode); err != nil {
		return err
	}
	if hasErrors {
		return errLintFoundErrors
	}
	return nil
}

var errLintFoundErrors = errors.New("lint: one or more files reported errors")

func renderLintResults(cmd *cobra.Command, results []batch.FileResult, fs *source.FileSet, colorMode string) error {
	out := cmd.OutOrStdout()
	switch lintFormat {
	case "json":
		for _, r := range results {
			if r.Bag == nil {
				continue
			}
			if err := diagfmt.JSON(out, r.Bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
				return err
			}
		}
	case "sarif":
		merged := diag.NewBag(0)
		for _, r := range results {
			if r.Bag != nil {
				merged.Merge(r.Bag)
			}
		}
		return diagfmt.Sarif(out, merged, fs, diagfmt.SarifRunMeta{ToolName: "qljs", ToolVersion: "0.1.0"})
	case "short":
		for _, r := range results {
			if r.Bag == nil {
				continue
			}
			fmt.Fprint(out, diag.FormatGoldenDiagnostics(r.Bag.Items(), fs, true))
		}
	default:
		for _, r := range results {
			if r.Bag == nil {
				continue
			}
			diagfmt.Pretty(out, r.Bag, fs, diagfmt.PrettyOpts{
				Color:     resolveColor(colorMode),
				Context:   1,
				ShowNotes: true,
				ShowFixes: true,
			})
		}
	}
	return nil
}
