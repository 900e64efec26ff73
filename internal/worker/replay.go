package worker

import (
	"runtime"
	"sort"

	"github.com/lgbarn/cheese-go/internal/config"
	"github.com/lgbarn/cheese-go/internal/eco"
	"github.com/lgbarn/cheese-go/internal/errors"
	"github.com/lgbarn/cheese-go/internal/session"
)

// Replayer plays scripts as session games. Each job gets its own game,
// which is dropped from the manager once exported.
type Replayer struct {
	manager    *session.Manager
	cfg        *config.ReplayConfig
	classifier *eco.ECOClassifier
}

// NewReplayer creates a replayer registering games with m.
func NewReplayer(m *session.Manager, cfg *config.ReplayConfig) *Replayer {
	if cfg == nil {
		cfg = config.NewReplayConfig()
	}
	return &Replayer{manager: m, cfg: cfg}
}

// SetClassifier adds ECO tags to games replayed from the initial position.
func (r *Replayer) SetClassifier(c *eco.ECOClassifier) {
	r.classifier = c
}

// Process replays one script. It satisfies ProcessFunc.
func (r *Replayer) Process(item WorkItem) ProcessResult {
	result := ProcessResult{Index: item.Index, File: item.File}
	script := item.Script

	fen := item.StartFEN
	if fen == "" {
		fen = script.Tag("FEN")
	}
	opts := []session.GameOption{session.WithTags(script.Tags)}
	if fen != "" {
		opts = append(opts, session.WithFEN(fen))
	}

	g, err := r.manager.Create(opts...)
	if err != nil {
		result.Error = &errors.ParseError{Err: err, File: item.File, Line: script.StartLine, Got: fen}
		return result
	}
	defer r.manager.Remove(g.ID)

	for i, mt := range script.Moves {
		if r.cfg.MaxPlies > 0 && i >= r.cfg.MaxPlies {
			break
		}
		res, err := g.MoveText(mt.Text)
		if err == nil && !res.Completed() {
			err = errors.ErrMissingPromotionChoice
		}
		if err == nil {
			continue
		}

		located := &errors.ParseError{Err: err, File: item.File, Line: mt.Line, Column: mt.Column, Got: mt.Text}
		if r.cfg.StopOnError || errors.Is(err, errors.ErrGameOver) {
			result.Error = located
			break
		}
		result.Skipped++
	}

	if r.classifier != nil && fen == "" {
		r.classifier.AddTags(g.Positions(), g.SetTag)
	}
	result.Game = g.Export()
	return result
}

// Run replays every item on a pool sized from cfg and returns the results
// in item order. With cfg.FailFast the first failed script stops the
// batch, so items never started have no result.
func Run(items []WorkItem, process ProcessFunc, cfg *config.ReplayConfig) []ProcessResult {
	if cfg == nil {
		cfg = config.NewReplayConfig()
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(items) && len(items) > 0 {
		workers = len(items)
	}
	bufferSize := cfg.BufferSize
	if bufferSize == 0 {
		bufferSize = 2 * workers
	}

	var pool *Pool
	pool = NewPool(func(item WorkItem) ProcessResult {
		res := process(item)
		if cfg.FailFast && res.Error != nil {
			pool.Stop()
		}
		return res
	}, WithWorkers(workers), WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for i, item := range items {
			item.Index = i
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for result := range pool.Results() {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
