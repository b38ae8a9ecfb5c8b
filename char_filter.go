package gomamayo

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type CharFilter interface {
	Filter(string) string
}

// MappingCharFilter は辞書が誤読する表記を読みやすい表記に置き換える
// 「胡麻」->「ごま」のように固有名詞の読みを補正する
// 同じ位置で複数のキーに一致するときは長いキーを優先する
type MappingCharFilter struct {
	replacer *strings.Replacer
}

func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	keys := make([]string, 0, len(mapper))
	for k := range mapper {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	oldnew := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		oldnew = append(oldnew, k, mapper[k])
	}
	return &MappingCharFilter{replacer: strings.NewReplacer(oldnew...)}
}

func (c *MappingCharFilter) Filter(s string) string {
	return c.replacer.Replace(s)
}

// NormalizeCharFilter はNFKC正規化する。半角カナは全角に、全角英数は半角になる
type NormalizeCharFilter struct{}

func NewNormalizeCharFilter() NormalizeCharFilter {
	return NormalizeCharFilter{}
}

func (c NormalizeCharFilter) Filter(s string) string {
	return norm.NFKC.String(s)
}

type TrimCharFilter struct{}

func NewTrimCharFilter() TrimCharFilter {
	return TrimCharFilter{}
}

func (c TrimCharFilter) Filter(s string) string {
	return strings.TrimSpace(s)
}
