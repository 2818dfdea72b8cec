package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TimelordUK/logcli/internal/config"
	"github.com/TimelordUK/logcli/internal/export"
	"github.com/TimelordUK/logcli/internal/logging"
	"github.com/TimelordUK/logcli/internal/query"
	"github.com/TimelordUK/logcli/internal/render"
	"github.com/TimelordUK/logcli/internal/source"
	"github.com/TimelordUK/logcli/internal/ui"
)

// runner processes the input files one at a time
type runner struct {
	cfg       *config.Config
	log       *zap.Logger
	out       io.Writer
	styles    *lipgloss.Renderer
	pipeline  *query.Pipeline
	formatter *render.Formatter
	exporter  *export.Exporter
	sections  []ui.Section
	pager     bool
}

func run(cmd *cobra.Command, opts *options, paths []string) error {
	// Conflicts and bad numbers do not depend on the configured defaults
	if _, err := buildCriteria(opts, config.DefaultConfig().Defaults); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	criteria, err := buildCriteria(opts, cfg.Defaults)
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Debug("criteria", zap.Stringer("criteria", criteria), zap.Int("files", len(paths)))

	out := cmd.OutOrStdout()
	lg := render.NewLipglossRenderer(out, cfg.Display.Color)
	r := &runner{
		cfg:       cfg,
		log:       log,
		out:       out,
		styles:    lg,
		pipeline:  query.NewPipeline(criteria),
		formatter: render.NewFormatter(render.NewStyles(lg, cfg.Theme), cfg.Display.AlwaysHeader),
		pager:     opts.pager,
	}

	if opts.exportDir != "" {
		r.exporter, err = export.NewExporter(opts.exportDir)
		if err != nil {
			return err
		}
		log.Debug("exporting", zap.String("dir", r.exporter.Dir()))
	}

	for i, path := range paths {
		if err := r.process(i+1, len(paths), path); err != nil {
			return err
		}
	}

	if r.pager {
		return ui.Run(r.sections, cfg, lg)
	}
	return nil
}

// process reads, filters and renders file i of n. The first failure
// aborts the run; output already written for earlier files stays.
func (r *runner) process(i, n int, path string) error {
	lines, err := source.ReadFile(path)
	if err != nil {
		r.log.Debug("read failed", zap.String("path", path), zap.Error(err))
		return err
	}

	selected, stats := r.pipeline.ApplyWithStats(lines)
	r.log.Debug("filtered",
		zap.String("path", path),
		zap.Int("input", stats.Input),
		zap.Int("relative", stats.Relative),
		zap.Int("absolute", stats.Absolute),
		zap.Int("keywords", stats.Keywords),
		zap.Int("latest", stats.Latest),
	)

	content := render.ForFile(r.styles, r.cfg, path, r.cfg.Display.Syntax)

	if r.pager {
		r.sections = append(r.sections, ui.Section{Path: path, Lines: selected, Content: content})
	} else if err := r.formatter.WriteSection(r.out, i, n, path, selected, content); err != nil {
		return err
	}

	if r.exporter != nil {
		info, err := r.exporter.Write(path, selected)
		if err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		r.log.Info("exported",
			zap.String("path", info.OutputPath),
			zap.Int("lines", info.Lines),
			zap.Int("first", info.FirstLine),
			zap.Int("last", info.LastLine),
		)
	}
	return nil
}
