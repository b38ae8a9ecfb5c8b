package gomamayo

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Recorder は判定結果をストレージに記録する
type Recorder struct {
	storage Storage
	logger  *zap.Logger
}

func NewRecorder(storage Storage, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		storage: storage,
		logger:  logger,
	}
}

// Record は判定に成功した結果だけを記録し、記録した件数を返す
func (r *Recorder) Record(results []Result) (int, error) {
	var (
		count int
		errs  error
	)
	for _, result := range results {
		if result.Err != nil {
			continue
		}
		id, err := r.storage.AddDetection(NewDetection(result.Phrase, result.Gomamayo))
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		r.logger.Debug("recorded", zap.Uint64("id", uint64(id)), zap.String("phrase", result.Phrase))
		count++
	}
	return count, errs
}
