package morphology

import "errors"

// ErrInvalidInput は形態素解析できない入力(不正なUTF-8など)
var ErrInvalidInput = errors.New("morphology: invalid input")

type Morphology interface {
	Analyze(string) ([]MorphologyToken, error)
}

type MorphologyToken struct {
	Term string
	Kana string // 発音。見つからなければ空文字
}

func NewMorphologyToken(term, kana string) MorphologyToken {
	return MorphologyToken{
		Term: term,
		Kana: kana,
	}
}

// HasKana は発音がかなで得られているか判定する
func (t MorphologyToken) HasKana() bool {
	return IsKana(t.Kana)
}
