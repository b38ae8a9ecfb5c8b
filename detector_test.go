package gomamayo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/kotaroooo0/gomamayo/morphology"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newReadingDetector(options ...DetectorOption) *Detector {
	analyzer := NewAnalyzer(StandardCharFilters(true, nil), NewReadingTokenizer(), StandardTokenFilters(false))
	return NewDetector(analyzer, options...)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		phrase string
		kind   *Kind
	}{
		{phrase: "ゴマ マヨ", kind: &Kind{Ary: 1, Degree: 1}},
		{phrase: "ハクレー レーム", kind: &Kind{Ary: 1, Degree: 2}},
		{phrase: "モバイル ルータ タンマツ", kind: &Kind{Ary: 2, Degree: 1}},
		{phrase: "たいこ こーぼ ぼしゅー しゅーりょー", kind: &Kind{Ary: 3, Degree: 2}},
		{phrase: "シンリョー ウケツケ", kind: nil},
		{phrase: "オレンジ ジュース", kind: nil},
		{phrase: "ゴマ", kind: nil},
	}
	d := newReadingDetector()
	for _, tt := range tests {
		t.Run(fmt.Sprintf("phrase = %v", tt.phrase), func(t *testing.T) {
			g, err := d.Detect(tt.phrase)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(g.Kind, tt.kind); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestDetectUnresolvedReading(t *testing.T) {
	_, err := newReadingDetector().Detect("ゴマ Mayo")
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("Detector.Detect() error = %v, want *Error", err)
	}
	want := &Error{Kind: UnresolvedReading, Phrase: "ゴマ Mayo", Token: "Mayo"}
	if diff := cmp.Diff(e, want); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestDetectTokenizationFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	mockMorphology := NewMockMorphology(mockCtrl)
	mockMorphology.EXPECT().Analyze("ゴママヨ").Return(nil, morphology.ErrInvalidInput)

	d := NewDetector(NewAnalyzer(nil, NewMorphologicalTokenizer(mockMorphology), nil))
	_, err := d.Detect("ゴママヨ")
	if !errors.Is(err, ErrTokenization) {
		t.Errorf("Detector.Detect() error = %v, want %v", err, ErrTokenization)
	}
	var e *Error
	if errors.As(err, &e) && e.Phrase != "ゴママヨ" {
		t.Errorf("Detector.Detect() error phrase = %v, want %v", e.Phrase, "ゴママヨ")
	}
}

func TestDetectTokens(t *testing.T) {
	d := newReadingDetector()
	g, tokens, err := d.DetectTokens("ごま まよ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g.Readings, []string{"ゴマ", "マヨ"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	if diff := cmp.Diff(tokens.Terms(), []string{"ごま", "まよ"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestDetectAll(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	d := newReadingDetector(WithLogger(zap.New(core)), WithWorkers(2))

	phrases := []string{
		"ゴマ マヨ",
		"胡麻 マヨ",
		"シンリョー ウケツケ",
		"タイコ コーボ ボシュー シューリョー",
		"ハクレー Reimu",
	}
	results, err := d.DetectAll(context.Background(), phrases)
	if err == nil {
		t.Fatal("Detector.DetectAll() error = nil, want failures")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("len(multierr.Errors()) = %v, want %v", got, 2)
	}
	if got := logs.Len(); got != 2 {
		t.Errorf("warn logs = %v, want %v", got, 2)
	}

	type summary struct {
		Phrase string
		Kind   *Kind
		Token  string
	}
	want := []summary{
		{Phrase: "ゴマ マヨ", Kind: &Kind{Ary: 1, Degree: 1}},
		{Phrase: "胡麻 マヨ", Token: "胡麻"},
		{Phrase: "シンリョー ウケツケ"},
		{Phrase: "タイコ コーボ ボシュー シューリョー", Kind: &Kind{Ary: 3, Degree: 2}},
		{Phrase: "ハクレー Reimu", Token: "Reimu"},
	}
	got := make([]summary, len(results))
	for i, r := range results {
		got[i] = summary{Phrase: r.Phrase, Kind: r.Gomamayo.Kind}
		var e *Error
		if errors.As(r.Err, &e) {
			got[i].Token = e.Token
		}
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestDetectAllErrorNamesPhrase(t *testing.T) {
	results, err := newReadingDetector().DetectAll(context.Background(), []string{"ゴマ abc", "マヨ abc"})
	if got := len(multierr.Errors(err)); got != 2 {
		t.Fatalf("len(multierr.Errors()) = %v, want %v", got, 2)
	}
	want := []string{
		"単語の読み方を取得できませんでした: abc (ゴマ abc)",
		"単語の読み方を取得できませんでした: abc (マヨ abc)",
	}
	got := make([]string, len(results))
	for i, r := range results {
		got[i] = r.Err.Error()
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestDetectAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := newReadingDetector().DetectAll(ctx, []string{"ゴマ マヨ", "ハクレー レーム"})
	if !errors.Is(err, ErrInput) {
		t.Errorf("Detector.DetectAll() error = %v, want %v", err, ErrInput)
	}
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("Result.Err = %v, want %v", r.Err, context.Canceled)
		}
	}
}

func TestDetectAllEmpty(t *testing.T) {
	results, err := newReadingDetector().DetectAll(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %v, want 0", len(results))
	}
}
