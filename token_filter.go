package gomamayo

import (
	"unicode"

	"github.com/kotaroooo0/gojaconv/jaconv"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

// SymbolFilter は記号や空白だけのトークンを取り除く
type SymbolFilter struct{}

func NewSymbolFilter() SymbolFilter {
	return SymbolFilter{}
}

func (f SymbolFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if !isSymbol(token.Term) {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

func isSymbol(s string) bool {
	for _, c := range s {
		if !unicode.IsPunct(c) && !unicode.IsSymbol(c) && !unicode.IsSpace(c) {
			return false
		}
	}
	return true
}

// KanaReadingformFilter は読みをカタカナにそろえる
type KanaReadingformFilter struct{}

func NewKanaReadingformFilter() KanaReadingformFilter {
	return KanaReadingformFilter{}
}

func (f KanaReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		token.Kana = jaconv.HiraganaToKatakana(token.Kana)
		r[i] = token
	}
	return NewTokenStream(r)
}

// RomajiReadingformFilter は読みのヘボン式ローマ字をセットする
type RomajiReadingformFilter struct{}

func NewRomajiReadingformFilter() RomajiReadingformFilter {
	return RomajiReadingformFilter{}
}

func (f RomajiReadingformFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Kana != "" {
			token.Romaji = jaconv.ToHebon(jaconv.KatakanaToHiragana(token.Kana))
		}
		r[i] = token
	}
	return NewTokenStream(r)
}
