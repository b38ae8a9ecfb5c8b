package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kotaroooo0/gomamayo"
	"github.com/kotaroooo0/gomamayo/config"
	"github.com/kotaroooo0/gomamayo/morphology"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// errReported は標準エラーに出力済みのエラー。終了コードだけを1にする
var errReported = errors.New("reported")

// フラグ名と設定キーの対応
var flagKeys = map[string]string{
	"mode":      "tokenizer.mode",
	"user-dict": "tokenizer.user_dict",
	"normalize": "normalize",
	"workers":   "workers",
	"format":    "format",
	"romaji":    "romaji",
	"driver":    "storage.driver",
	"dsn":       "storage.dsn",
	"addr":      "server.addr",
}

type app struct {
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	configPath string
	verbose    bool
}

type rootOptions struct {
	readings    bool
	interactive bool
	debug       bool
	store       bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "gomamayo [phrase...]",
		Short: "フレーズがゴママヨかどうか判定する",
		Long: `フレーズを形態素解析して語ごとの読みを求め、
隣り合う語の末尾と先頭で読みが重なるゴママヨかどうか判定します。
引数がなければ標準入力から1行読み込みます。`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoot(cmd, args, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "設定ファイルのパス")
	pf.BoolVar(&a.verbose, "verbose", false, "詳細なログを出力する")
	pf.String("driver", "", "記録に使うデータベース (sqlite, mysql)")
	pf.String("dsn", "", "データベースの接続文字列。空ならSQLiteはgomamayo.db、MySQLはstorage.mysqlから組み立てる")

	f := cmd.Flags()
	f.BoolVar(&opts.readings, "readings", false, "入力を空白区切りの読みとして扱う")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "対話モードで起動する")
	f.BoolVar(&opts.debug, "debug", false, "解析結果をすべて表示する")
	f.BoolVar(&opts.store, "store", false, "判定結果を記録する")
	addAnalysisFlags(f)
	f.String("format", "text", "出力形式 (text, json, yaml)")
	f.Bool("romaji", false, "読みのローマ字表記も出力する")

	cmd.AddCommand(newServeCmd(a), newHistoryCmd(a))
	return cmd
}

type flagSet interface {
	String(name, value, usage string) *string
	Bool(name string, value bool, usage string) *bool
	Int(name string, value int, usage string) *int
}

func addAnalysisFlags(f flagSet) {
	f.String("mode", "search", "形態素解析のモード (normal, search, extended)")
	f.String("user-dict", "", "ユーザー辞書のパス")
	f.Bool("normalize", true, "入力をNFKC正規化する")
	f.Int("workers", 4, "同時に判定するフレーズ数")
}

// loadConfig は設定ファイルと環境変数に、コマンドのフラグを重ねて読み込む
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.New(a.configPath)
	if err != nil {
		return nil, err
	}
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, err
		}
	}
	return config.Unmarshal(v)
}

func (a *app) newLogger() (*zap.Logger, error) {
	if a.verbose {
		return zap.NewDevelopment()
	}
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return c.Build()
}

func newDetector(cfg *config.Config, readings bool, logger *zap.Logger) (*gomamayo.Detector, error) {
	var tokenizer gomamayo.Tokenizer
	if readings {
		tokenizer = gomamayo.NewReadingTokenizer()
	} else {
		k, err := morphology.NewKagome(
			morphology.WithMode(cfg.Tokenizer.Mode),
			morphology.WithUserDict(cfg.Tokenizer.UserDict),
		)
		if err != nil {
			return nil, err
		}
		tokenizer = gomamayo.NewMorphologicalTokenizer(k)
	}
	analyzer := gomamayo.NewAnalyzer(
		gomamayo.StandardCharFilters(cfg.Normalize, cfg.CharMap),
		tokenizer,
		gomamayo.StandardTokenFilters(cfg.Romaji),
	)
	return gomamayo.NewDetector(analyzer, gomamayo.WithLogger(logger), gomamayo.WithWorkers(cfg.Workers)), nil
}

// openStorage は記録用のストレージを開く。ドライバが未指定ならSQLiteを使う
func openStorage(c config.StorageConfig) (*gomamayo.StorageRdbImpl, error) {
	if c.Driver == "" {
		c.Driver = "sqlite"
	}
	db, err := gomamayo.NewDBClient(c.Driver, c.DataSourceName())
	if err != nil {
		return nil, fmt.Errorf("open %s storage: %w", c.Driver, err)
	}
	storage := gomamayo.NewStorageRdbImpl(db)
	if err := storage.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return storage, nil
}

func (a *app) runRoot(cmd *cobra.Command, args []string, opts rootOptions) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := a.newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	detector, err := newDetector(cfg, opts.readings, logger)
	if err != nil {
		return err
	}
	s := &session{
		detector: detector,
		format:   cfg.Format,
		debug:    opts.debug,
		errOut:   a.errOut,
	}
	if opts.store || cfg.StorageEnabled() {
		storage, err := openStorage(cfg.Storage)
		if err != nil {
			return err
		}
		defer storage.DB.Close()
		s.recorder = gomamayo.NewRecorder(storage, logger)
	}

	if opts.interactive {
		return s.interactive(a.in)
	}

	phrases := args
	if len(phrases) == 0 {
		line, err := readLine(a.in)
		if err != nil {
			s.report(err)
			return errReported
		}
		phrases = []string{line}
	}
	return s.detectAll(cmd.Context(), a.out, phrases)
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", gomamayo.NewInputError(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// session は1回の起動で判定するフレーズの処理をまとめる
type session struct {
	detector *gomamayo.Detector
	recorder *gomamayo.Recorder
	format   string
	debug    bool
	errOut   io.Writer
}

func (s *session) report(err error) {
	fmt.Fprintln(s.errOut, "Error: "+err.Error())
}

func (s *session) record(results []gomamayo.Result) {
	if s.recorder == nil {
		return
	}
	if _, err := s.recorder.Record(results); err != nil {
		s.report(err)
	}
}

// detectAll は失敗したフレーズを報告しながら、残りのフレーズの結果を出力する
func (s *session) detectAll(ctx context.Context, out io.Writer, phrases []string) error {
	p := newPrinter(out, s.format, s.debug)
	defer p.Close()

	results, detectErr := s.detector.DetectAll(ctx, phrases)
	for _, r := range results {
		if r.Err != nil {
			s.report(r.Err)
			continue
		}
		if err := p.Print(r); err != nil {
			return err
		}
	}
	s.record(results)
	if detectErr != nil {
		return errReported
	}
	return nil
}

func (s *session) interactive(in io.Reader) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
		Stdin:  io.NopCloser(in),
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	s.errOut = rl.Stderr()
	p := newPrinter(rl.Stdout(), s.format, s.debug)
	defer p.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		g, tokens, err := s.detector.DetectTokens(line)
		if err != nil {
			s.report(err)
			continue
		}
		r := gomamayo.Result{Phrase: line, Gomamayo: g, Tokens: tokens}
		if err := p.Print(r); err != nil {
			return err
		}
		s.record([]gomamayo.Result{r})
	}
}
