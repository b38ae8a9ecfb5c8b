package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/kotaroooo0/gojaconv/jaconv"
	"github.com/kotaroooo0/gomamayo"
	"github.com/kotaroooo0/gomamayo/morphology"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	detector *gomamayo.Detector
	storage  gomamayo.Storage // nilなら記録しない
	recorder *gomamayo.Recorder
	logger   *zap.Logger
	engine   *gin.Engine
}

type Option func(*Server)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStorage は判定結果を記録し、/detections で参照できるようにする
func WithStorage(storage gomamayo.Storage) Option {
	return func(s *Server) {
		s.storage = storage
	}
}

func New(detector *gomamayo.Detector, options ...Option) *Server {
	s := &Server{
		detector: detector,
		logger:   zap.NewNop(),
	}
	for _, option := range options {
		option(s)
	}
	if s.storage != nil {
		s.recorder = gomamayo.NewRecorder(s.storage, s.logger)
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())
	r.GET("/healthz", s.healthz)
	r.GET("/analyze", s.analyzeQuery)
	r.POST("/analyze", s.analyzeBody)
	r.POST("/analyze/batch", s.analyzeBatch)
	if s.storage != nil {
		r.GET("/detections", s.detections)
	}
	s.engine = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run はctxがキャンセルされるまでaddrで待ち受ける
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

type analyzeRequest struct {
	Text     string   `json:"text"`
	Readings []string `json:"readings"`
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

type analyzeResponse struct {
	Phrase     string              `json:"phrase"`
	Readings   []string            `json:"readings"`
	IsGomamayo bool                `json:"is_gomamayo"`
	Ary        int                 `json:"ary"`
	Degree     int                 `json:"degree"`
	Junctions  []gomamayo.Junction `json:"junctions"`
	Message    string              `json:"message"`
}

type errorBody struct {
	Kind    string `json:"kind"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// batchFailure は一括判定で失敗したフレーズ
type batchFailure struct {
	Phrase string     `json:"phrase"`
	Error  *errorBody `json:"error"`
}

// Resultsの要素は *analyzeResponse か batchFailure
type batchResponse struct {
	Results []interface{} `json:"results"`
}

func newAnalyzeResponse(phrase string, g gomamayo.Gomamayo) *analyzeResponse {
	return &analyzeResponse{
		Phrase:     phrase,
		Readings:   g.Readings,
		IsGomamayo: g.IsGomamayo(),
		Ary:        g.Ary(),
		Degree:     g.Degree(),
		Junctions:  g.Junctions,
		Message:    g.Message(phrase),
	}
}

func newErrorBody(err error) *errorBody {
	var e *gomamayo.Error
	if !errors.As(err, &e) {
		return &errorBody{Kind: "internal", Message: err.Error()}
	}
	return &errorBody{Kind: e.Kind.String(), Token: e.Token, Message: e.Error()}
}

// render はgoccy/go-jsonでエンコードして書き込む
func render(c *gin.Context, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(status, "application/json; charset=utf-8", b)
}

func renderError(c *gin.Context, status int, body *errorBody) {
	render(c, status, errorResponse{Error: *body})
}

func badRequest(c *gin.Context, message string) {
	renderError(c, http.StatusBadRequest, &errorBody{Kind: gomamayo.InputFailure.String(), Message: message})
}

func (s *Server) healthz(c *gin.Context) {
	render(c, http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) analyzeQuery(c *gin.Context) {
	s.analyzeText(c, c.Query("text"))
}

func (s *Server) analyzeBody(c *gin.Context) {
	var req analyzeRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		badRequest(c, "リクエストを読み込めませんでした: "+err.Error())
		return
	}
	if len(req.Readings) > 0 {
		s.analyzeReadings(c, req.Readings)
		return
	}
	s.analyzeText(c, req.Text)
}

func (s *Server) analyzeText(c *gin.Context, text string) {
	if strings.TrimSpace(text) == "" {
		badRequest(c, "text is empty")
		return
	}
	g, err := s.detector.Detect(text)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.record(gomamayo.Result{Phrase: text, Gomamayo: g})
	render(c, http.StatusOK, newAnalyzeResponse(text, g))
}

// analyzeReadings は形態素解析を通さず、与えられた読みをそのまま判定する
// かな以外を含む読みは、読みを取得できなかった語として扱う
func (s *Server) analyzeReadings(c *gin.Context, readings []string) {
	phrase := strings.Join(readings, " ")
	normalized := make([]string, len(readings))
	for i, r := range readings {
		r = strings.TrimSpace(r)
		if r == "" {
			badRequest(c, "readings["+strconv.Itoa(i)+"] is empty")
			return
		}
		if !morphology.IsKana(r) {
			s.fail(c, gomamayo.NewUnresolvedReadingError(phrase, r))
			return
		}
		normalized[i] = jaconv.HiraganaToKatakana(r)
	}
	g := gomamayo.Classify(normalized)
	s.record(gomamayo.Result{Phrase: phrase, Gomamayo: g})
	render(c, http.StatusOK, newAnalyzeResponse(phrase, g))
}

func (s *Server) analyzeBatch(c *gin.Context) {
	var req batchRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		badRequest(c, "リクエストを読み込めませんでした: "+err.Error())
		return
	}
	if len(req.Texts) == 0 {
		badRequest(c, "texts is empty")
		return
	}

	results, err := s.detector.DetectAll(c.Request.Context(), req.Texts)
	if err != nil {
		s.logger.Debug("batch has failures", zap.Error(err))
	}
	s.record(results...)

	res := batchResponse{Results: make([]interface{}, len(results))}
	for i, r := range results {
		if r.Err != nil {
			res.Results[i] = batchFailure{Phrase: r.Phrase, Error: newErrorBody(r.Err)}
			continue
		}
		res.Results[i] = newAnalyzeResponse(r.Phrase, r.Gomamayo)
	}
	render(c, http.StatusOK, res)
}

func (s *Server) detections(c *gin.Context) {
	minDegree := 0
	if v := c.Query("min_degree"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "min_degree must be an integer")
			return
		}
		minDegree = n
	}

	var (
		detections []gomamayo.Detection
		err        error
	)
	if minDegree > 0 {
		detections, err = s.storage.GetGomamayoDetections(minDegree)
	} else {
		detections, err = s.storage.GetAllDetections()
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	render(c, http.StatusOK, gin.H{"detections": detections})
}

func (s *Server) fail(c *gin.Context, err error) {
	var e *gomamayo.Error
	switch {
	case errors.As(err, &e) && e.Kind == gomamayo.InputFailure:
		renderError(c, http.StatusBadRequest, newErrorBody(err))
	case errors.As(err, &e):
		renderError(c, http.StatusUnprocessableEntity, newErrorBody(err))
	default:
		s.logger.Error("internal error", zap.Error(err))
		renderError(c, http.StatusInternalServerError, newErrorBody(err))
	}
}

func (s *Server) record(results ...gomamayo.Result) {
	if s.recorder == nil {
		return
	}
	if _, err := s.recorder.Record(results); err != nil {
		s.logger.Warn("record failed", zap.Error(err))
	}
}
