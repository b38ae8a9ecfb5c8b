package gomamayo

type Token struct {
	Term   string `json:"term" yaml:"term"`
	Kana   string `json:"kana" yaml:"kana"`
	Romaji string `json:"romaji,omitempty" yaml:"romaji,omitempty"`
}

type TokenOption func(*Token)

func NewToken(term string, options ...TokenOption) Token {
	token := Token{Term: term}
	for _, option := range options {
		option(&token)
	}
	return token
}

func SetKana(kana string) TokenOption {
	return func(s *Token) {
		s.Kana = kana
	}
}

func SetRomaji(romaji string) TokenOption {
	return func(s *Token) {
		s.Romaji = romaji
	}
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Term
	}
	return terms
}

// Readings は各トークンの読みを返す
// 読みのないトークンがあれば、最初のトークンを示すエラーを返す
func (ts TokenStream) Readings() ([]string, error) {
	readings := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		if t.Kana == "" {
			return nil, NewUnresolvedReadingError("", t.Term)
		}
		readings[i] = t.Kana
	}
	return readings, nil
}

func (ts TokenStream) Romaji() []string {
	romaji := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		romaji[i] = t.Romaji
	}
	return romaji
}
