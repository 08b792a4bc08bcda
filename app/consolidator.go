package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sheetfuse/domain/core"
	"sheetfuse/domain/table"
	"sheetfuse/ports"
)

// Warning records a recoverable condition: a sheet excluded for having no
// retained columns, or a file skipped because it would not decode (Sheet is
// empty in that case). Warnings never stop the run.
type Warning struct {
	File   string
	Sheet  string
	Reason string
}

// Result is the outcome of one consolidation run.
type Result struct {
	RunID    uuid.UUID
	Table    *table.Merged
	Warnings []Warning
}

// Empty reports whether the run produced no data rows at all. Callers must
// surface this distinctly from a run that succeeded with warnings.
func (r *Result) Empty() bool {
	return r.Table.Empty()
}

type phase int

const (
	phaseInit phase = iota
	phaseRegistryBuilt
	phaseMerging
	phaseDone
)

// Options configures a consolidation run.
type Options struct {
	Policy        table.Policy
	IncludeHidden bool
	// StrictDecode aborts the run on the first file that fails to decode
	// instead of skipping it with a warning.
	StrictDecode bool
}

// Consolidator drives the two-phase pipeline: a complete pass over every file
// and sheet builds the column-occurrence registry, then a merge pass replays
// the loaded tables against the retained-key set resolved from it. The
// retained set is resolved exactly once, after the whole corpus has been
// counted; the merge phase never mutates the registry.
type Consolidator struct {
	decoder  ports.Decoder
	progress ports.ProgressSink
	logger   *zap.Logger
	opts     Options

	phase    phase
	loaded   []*table.Table // phase-one cache, replayed by the merge phase
	registry *table.Registry
	warnings []Warning
}

func NewConsolidator(decoder ports.Decoder, progress ports.ProgressSink, logger *zap.Logger, opts Options) *Consolidator {
	if progress == nil {
		progress = ports.NopProgress
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consolidator{
		decoder:  decoder,
		progress: progress,
		logger:   logger,
		opts:     opts,
		registry: table.NewRegistry(),
	}
}

// Run consolidates the given files in order. Files are processed strictly
// sequentially; each workbook is opened, fully read, and closed before the
// next. The context is checked between sheets only, never mid-sheet.
func (c *Consolidator) Run(ctx context.Context, files []string) (*Result, error) {
	c.phase = phaseInit
	c.loaded = nil
	c.registry = table.NewRegistry()
	c.warnings = nil

	runID := uuid.New()
	log := c.logger.With(zap.String("run_id", runID.String()))
	log.Info("consolidation started",
		zap.Int("files", len(files)),
		zap.String("policy", c.opts.Policy.String()))

	if err := c.buildRegistry(ctx, files); err != nil {
		return nil, err
	}
	merged, err := c.merge(ctx)
	if err != nil {
		return nil, err
	}

	log.Info("consolidation finished",
		zap.Int("columns", len(merged.Header())),
		zap.Int("rows", merged.Len()),
		zap.Int("warnings", len(c.warnings)))

	return &Result{RunID: runID, Table: merged, Warnings: c.warnings}, nil
}

// buildRegistry is phase one: load every sheet of every file and count the
// normalized header keys. Nothing may merge before this pass is complete,
// because the common-column decision is only valid over the full corpus.
func (c *Consolidator) buildRegistry(ctx context.Context, files []string) error {
	if c.phase != phaseInit {
		return fmt.Errorf("registry build attempted in phase %d", c.phase)
	}

	loader := &SheetLoader{IncludeHidden: c.opts.IncludeHidden}
	for _, path := range files {
		if err := c.scanFile(ctx, loader, path); err != nil {
			return err
		}
	}

	c.phase = phaseRegistryBuilt
	return nil
}

// scanFile loads every sheet of one workbook into the phase-one cache. The
// workbook is closed before the next one opens, also on failure.
func (c *Consolidator) scanFile(ctx context.Context, loader *SheetLoader, path string) error {
	base := filepath.Base(path)

	wb, err := c.decoder.Open(path)
	if err != nil {
		decodeErr := core.NewDecodeError(base, err)
		if c.opts.StrictDecode {
			return decodeErr
		}
		c.logger.Warn("skipping unreadable file", zap.String("file", base), zap.Error(err))
		c.warnings = append(c.warnings, Warning{File: base, Reason: decodeErr.Error()})
		return nil
	}
	defer wb.Close()

	for _, name := range wb.Sheets() {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.progress.Progress(fmt.Sprintf("scanning %s / %s", base, name))

		sheet, err := wb.Sheet(name)
		if err != nil {
			decodeErr := core.NewDecodeError(base, fmt.Errorf("sheet %s: %w", name, err))
			if c.opts.StrictDecode {
				return decodeErr
			}
			c.warnings = append(c.warnings, Warning{File: base, Sheet: name, Reason: decodeErr.Error()})
			continue
		}

		t := loader.Load(base, sheet)
		if t == nil {
			// below the header-plus-data threshold, silently dropped
			continue
		}
		c.registry.Observe(t)
		c.loaded = append(c.loaded, t)
	}
	return nil
}

// merge is phase two: resolve the retained columns once and replay the cached
// tables against them in traversal order.
func (c *Consolidator) merge(ctx context.Context) (*table.Merged, error) {
	if c.phase != phaseRegistryBuilt {
		return nil, fmt.Errorf("merge attempted in phase %d", c.phase)
	}
	c.phase = phaseMerging

	retained := c.registry.Retained(c.opts.Policy)
	retainedKeys := make(map[string]bool, len(retained))
	for _, col := range retained {
		retainedKeys[col.Key] = true
	}

	merged := table.NewMerged(retained)
	for _, t := range c.loaded {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if c.opts.Policy == table.PolicyCommon && !contributes(t, retainedKeys) {
			c.progress.Progress(fmt.Sprintf("excluding %s / %s: no columns in common", t.File, t.Sheet))
			c.warnings = append(c.warnings, Warning{
				File:   t.File,
				Sheet:  t.Sheet,
				Reason: "no columns in common with other sheets",
			})
			continue
		}
		c.progress.Progress(fmt.Sprintf("merging %s / %s (%d rows)", t.File, t.Sheet, len(t.Rows)))
		merged.Append(t)
	}

	c.phase = phaseDone
	return merged, nil
}

// contributes reports whether any of the sheet's header keys survived the
// policy decision. A sheet that would carry the provenance columns only is
// excluded and warned about instead of merged.
func contributes(t *table.Table, retained map[string]bool) bool {
	for _, key := range t.Keys() {
		if retained[key] {
			return true
		}
	}
	return false
}
