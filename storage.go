package gomamayo

import "time"

type DetectionID uint64

// Detection は判定したフレーズの記録
type Detection struct {
	ID        DetectionID `db:"id" json:"id" yaml:"id"`
	Phrase    string      `db:"phrase" json:"phrase" yaml:"phrase"`
	Readings  []string    `db:"-" json:"readings" yaml:"readings"`
	Ary       int         `db:"ary" json:"ary" yaml:"ary"`
	Degree    int         `db:"degree" json:"degree" yaml:"degree"`
	CreatedAt time.Time   `db:"created_at" json:"created_at" yaml:"created_at"`
}

func NewDetection(phrase string, g Gomamayo) Detection {
	return Detection{
		Phrase:   phrase,
		Readings: g.Readings,
		Ary:      g.Ary(),
		Degree:   g.Degree(),
	}
}

func (d Detection) IsGomamayo() bool {
	return d.Ary > 0
}

// Gomamayo は記録から判定結果を組み立て直す
func (d Detection) Gomamayo() Gomamayo {
	return Classify(d.Readings)
}

type Storage interface {
	GetAllDetections() ([]Detection, error)                   // 全ての記録を返す
	GetDetections([]DetectionID) ([]Detection, error)         // 複数IDから複数の記録を返す
	GetGomamayoDetections(minDegree int) ([]Detection, error) // 次数がminDegree以上のゴママヨの記録を返す
	AddDetection(Detection) (DetectionID, error)              // 記録を挿入する。挿入した記録のIDを返す。
	CountDetections() (int, error)                            // 記録の件数を返す
}
