package gomamayo

import "fmt"

// Kind はゴママヨの項数と次数
type Kind struct {
	Ary    int `json:"ary" yaml:"ary"`       // 重なりのある語境界の数
	Degree int `json:"degree" yaml:"degree"` // 最も長い重なりのモーラ数
}

// Junction は隣接する2語の境界
type Junction struct {
	Index  int    `json:"index" yaml:"index"` // 左側の語の位置
	Left   string `json:"left" yaml:"left"`
	Right  string `json:"right" yaml:"right"`
	Degree int    `json:"degree" yaml:"degree"`
}

// Shared は境界で重なっているモーラ列を返す
func (j Junction) Shared() Morae {
	right := SplitMorae(j.Right)
	return right[:j.Degree]
}

type Gomamayo struct {
	Kind      *Kind      `json:"kind" yaml:"kind"` // ゴママヨでなければnil
	Readings  []string   `json:"readings" yaml:"readings"`
	Junctions []Junction `json:"junctions" yaml:"junctions"`
}

// Classify は語ごとの読みの並びからゴママヨを判定する
// 1.各読みをモーラ列に分割する
// 2.隣接する読みの組ごとに重なりの長さを求める
// 3.重なりのある境界の数を項数、最大の重なりを次数とする
func Classify(readings []string) Gomamayo {
	morae := make([]Morae, len(readings))
	for i, r := range readings {
		morae[i] = SplitMorae(r)
	}

	var ary, degree int
	junctions := make([]Junction, 0, len(readings))
	for i := 0; i+1 < len(morae); i++ {
		d := Overlap(morae[i], morae[i+1])
		junctions = append(junctions, Junction{
			Index:  i,
			Left:   readings[i],
			Right:  readings[i+1],
			Degree: d,
		})
		if d == 0 {
			continue
		}
		ary++
		if d > degree {
			degree = d
		}
	}

	g := Gomamayo{
		Readings:  readings,
		Junctions: junctions,
	}
	if ary > 0 {
		g.Kind = &Kind{Ary: ary, Degree: degree}
	}
	return g
}

func (g Gomamayo) IsGomamayo() bool {
	return g.Kind != nil
}

func (g Gomamayo) Ary() int {
	if g.Kind == nil {
		return 0
	}
	return g.Kind.Ary
}

func (g Gomamayo) Degree() int {
	if g.Kind == nil {
		return 0
	}
	return g.Kind.Degree
}

// Message は判定結果を表示用の文に整形する
func (g Gomamayo) Message(phrase string) string {
	if g.Kind == nil {
		return fmt.Sprintf("%s: ゴママヨではありません。", phrase)
	}
	return fmt.Sprintf("%s: %d項%d次のゴママヨです。", phrase, g.Kind.Ary, g.Kind.Degree)
}
