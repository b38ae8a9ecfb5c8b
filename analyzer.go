package gomamayo

type Analyzer struct {
	charFilters  []CharFilter
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(charFilters []CharFilter, tokenizer Tokenizer, tokenFilters []TokenFilter) Analyzer {
	return Analyzer{
		charFilters:  charFilters,
		tokenizer:    tokenizer,
		tokenFilters: tokenFilters,
	}
}

func (a Analyzer) Analyze(s string) (TokenStream, error) {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	tokenStream, err := a.tokenizer.Tokenize(s)
	if err != nil {
		return TokenStream{}, err
	}
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream, nil
}

// StandardCharFilters は前後の空白を除き、normalizeならNFKC正規化する
// charMapがあれば正規化の後に表記を置き換える
func StandardCharFilters(normalize bool, charMap map[string]string) []CharFilter {
	filters := []CharFilter{NewTrimCharFilter()}
	if normalize {
		filters = append(filters, NewNormalizeCharFilter())
	}
	if len(charMap) > 0 {
		filters = append(filters, NewMappingCharFilter(charMap))
	}
	return filters
}

// StandardTokenFilters は記号を除き、読みをカタカナにそろえる。romajiならローマ字もセットする
func StandardTokenFilters(romaji bool) []TokenFilter {
	filters := []TokenFilter{NewSymbolFilter(), NewKanaReadingformFilter()}
	if romaji {
		filters = append(filters, NewRomajiReadingformFilter())
	}
	return filters
}
