package gomamayo

import (
	"strings"
	"unicode"

	"github.com/kotaroooo0/gojaconv/jaconv"
	"github.com/kotaroooo0/gomamayo/morphology"
)

type Tokenizer interface {
	Tokenize(string) (TokenStream, error)
}

// ReadingTokenizer は既に読みで分かち書きされた入力を扱う
// 「ゴマ マヨ」「ごま/まよ」のように空白や区切り記号で語を区切る
type ReadingTokenizer struct{}

func NewReadingTokenizer() ReadingTokenizer {
	return ReadingTokenizer{}
}

func (t ReadingTokenizer) Tokenize(s string) (TokenStream, error) {
	terms := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '/' || r == '・' || r == '|'
	})
	tokens := make([]Token, len(terms))
	for i, term := range terms {
		if !morphology.IsKana(term) {
			tokens[i] = NewToken(term)
			continue
		}
		tokens[i] = NewToken(term, SetKana(jaconv.HiraganaToKatakana(term)))
	}
	return NewTokenStream(tokens), nil
}

type MorphologicalTokenizer struct {
	morphology morphology.Morphology
}

func NewMorphologicalTokenizer(morphology morphology.Morphology) *MorphologicalTokenizer {
	return &MorphologicalTokenizer{
		morphology: morphology,
	}
}

func (t *MorphologicalTokenizer) Tokenize(s string) (TokenStream, error) {
	mTokens, err := t.morphology.Analyze(s)
	if err != nil {
		return TokenStream{}, NewTokenizationError(s, err)
	}
	tokens := make([]Token, len(mTokens))
	for i, t := range mTokens {
		if !t.HasKana() {
			tokens[i] = NewToken(t.Term)
			continue
		}
		tokens[i] = NewToken(t.Term, SetKana(t.Kana))
	}
	return NewTokenStream(tokens), nil
}
