package gomamayo

import (
	"context"
	"errors"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

type Detector struct {
	analyzer Analyzer
	logger   *zap.Logger
	workers  int
}

type DetectorOption func(*Detector)

func WithLogger(logger *zap.Logger) DetectorOption {
	return func(d *Detector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithWorkers はDetectAllで同時に解析するフレーズ数を指定する
func WithWorkers(n int) DetectorOption {
	return func(d *Detector) {
		if n > 0 {
			d.workers = n
		}
	}
}

func NewDetector(analyzer Analyzer, options ...DetectorOption) *Detector {
	d := &Detector{
		analyzer: analyzer,
		logger:   zap.NewNop(),
		workers:  defaultWorkers,
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Result はDetectAllの1フレーズ分の結果。ErrがnilでなければGomamayoはゼロ値
type Result struct {
	Phrase   string
	Gomamayo Gomamayo
	Tokens   TokenStream
	Err      error
}

// Detect はフレーズを分かち書きし、ゴママヨかどうか判定する
// 返すエラーは常に *Error
func (d *Detector) Detect(phrase string) (Gomamayo, error) {
	g, _, err := d.detect(phrase)
	return g, err
}

// DetectTokens はDetectに加えて分かち書きの結果も返す
func (d *Detector) DetectTokens(phrase string) (Gomamayo, TokenStream, error) {
	return d.detect(phrase)
}

func (d *Detector) detect(phrase string) (Gomamayo, TokenStream, error) {
	tokenStream, err := d.analyzer.Analyze(phrase)
	if err != nil {
		return Gomamayo{}, TokenStream{}, asError(phrase, err)
	}
	readings, err := tokenStream.Readings()
	if err != nil {
		return Gomamayo{}, TokenStream{}, asError(phrase, err)
	}

	g := Classify(readings)
	d.logger.Debug("classified",
		zap.String("phrase", phrase),
		zap.Strings("readings", readings),
		zap.Int("ary", g.Ary()),
		zap.Int("degree", g.Degree()),
	)
	return g, tokenStream, nil
}

// DetectAll は複数のフレーズを並行に判定する
// 結果は入力と同じ順に並ぶ。失敗したフレーズがあっても他のフレーズの判定は続け、
// 失敗をまとめたエラーを返す
func (d *Detector) DetectAll(ctx context.Context, phrases []string) ([]Result, error) {
	results := make([]Result, len(phrases))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(d.workers)
	for i, phrase := range phrases {
		i, phrase := i, phrase
		results[i].Phrase = phrase
		if err := ctx.Err(); err != nil {
			results[i].Err = NewInputError(err).withPhrase(phrase)
			continue
		}
		eg.Go(func() error {
			g, tokens, err := d.detect(phrase)
			results[i] = Result{Phrase: phrase, Gomamayo: g, Tokens: tokens, Err: err}
			if err != nil {
				d.logger.Warn("detection failed", zap.String("phrase", phrase), zap.Error(err))
			}
			return nil
		})
	}
	_ = eg.Wait()

	var errs error
	for _, r := range results {
		errs = multierr.Append(errs, r.Err)
	}
	return results, errs
}

func asError(phrase string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e.withPhrase(phrase)
	}
	return NewTokenizationError(phrase, err)
}
