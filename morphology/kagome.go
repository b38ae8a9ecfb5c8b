package morphology

import (
	"fmt"
	"strings"
	"unicode/utf8"

	ipaneologd "github.com/ikawaha/kagome-dict-ipa-neologd"
	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/kotaroooo0/gojaconv/jaconv"
)

// IPA辞書の素性の位置
const (
	featurePOS1          = 1
	featureReading       = 7
	featurePronunciation = 8
	// ユーザー辞書の素性は 品詞,分割,読み
	userFeatureYomi = 2
)

// github.com/ikawaha/kagomeに直接依存しないようにラップする
type Kagome struct {
	kagome *tokenizer.Tokenizer
	mode   tokenizer.TokenizeMode
}

type KagomeOption func(*kagomeConfig) error

type kagomeConfig struct {
	mode     tokenizer.TokenizeMode
	userDict *dict.UserDict
}

// WithMode は分割モードを指定する。normal, search, extended のいずれか
func WithMode(mode string) KagomeOption {
	return func(c *kagomeConfig) error {
		m, err := parseMode(mode)
		if err != nil {
			return err
		}
		c.mode = m
		return nil
	}
}

// WithUserDict は固有名詞の読みを補うユーザー辞書を読み込む
func WithUserDict(path string) KagomeOption {
	return func(c *kagomeConfig) error {
		if path == "" {
			return nil
		}
		d, err := dict.NewUserDict(path)
		if err != nil {
			return fmt.Errorf("load user dictionary %s: %w", path, err)
		}
		c.userDict = d
		return nil
	}
}

// ValidateMode は分割モード名が正しいか検証する
func ValidateMode(mode string) error {
	_, err := parseMode(mode)
	return err
}

func parseMode(mode string) (tokenizer.TokenizeMode, error) {
	switch strings.ToLower(mode) {
	case "", "search":
		return tokenizer.Search, nil
	case "normal":
		return tokenizer.Normal, nil
	case "extended":
		return tokenizer.Extended, nil
	default:
		return tokenizer.Normal, fmt.Errorf("unknown tokenize mode: %q", mode)
	}
}

func NewKagome(options ...KagomeOption) (*Kagome, error) {
	c := &kagomeConfig{mode: tokenizer.Search}
	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	opts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if c.userDict != nil {
		opts = append(opts, tokenizer.UserDict(c.userDict))
	}
	t, err := tokenizer.New(ipaneologd.Dict(), opts...)
	if err != nil {
		return nil, err
	}
	return &Kagome{
		kagome: t,
		mode:   c.mode,
	}, nil
}

func (k *Kagome) Analyze(text string) ([]MorphologyToken, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInput, text)
	}
	tokens := k.kagome.Analyze(text, k.mode)
	kagomeTokens := make([]MorphologyToken, 0, len(tokens))
	for _, token := range tokens {
		features := token.Features()
		if len(features) > featurePOS1 && features[featurePOS1] == "空白" {
			continue
		}
		kagomeTokens = append(kagomeTokens, NewMorphologyToken(token.Surface, kana(token.Class, token.Surface, features)))
	}
	return kagomeTokens, nil
}

// kana は語の発音を決める
// 1.発音 2.読み 3.ユーザー辞書の読み 4.表層形がかなだけならそのカタカナ表記
// いずれもなければ空文字を返す
func kana(class tokenizer.TokenClass, surface string, features []string) string {
	if class == tokenizer.USER {
		if len(features) > userFeatureYomi {
			return strings.ReplaceAll(features[userFeatureYomi], "/", "")
		}
		return ""
	}
	if len(features) > featurePronunciation && isReading(features[featurePronunciation]) {
		return features[featurePronunciation]
	}
	if len(features) > featureReading && isReading(features[featureReading]) {
		return features[featureReading]
	}
	if IsKana(surface) {
		return jaconv.HiraganaToKatakana(surface)
	}
	return ""
}

func isReading(s string) bool {
	return s != "" && s != "*"
}

// IsKana はsが空でなく、ひらがな・カタカナ・長音符のみからなるか判定する
func IsKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'ぁ' && r <= 'ゖ':
		case r >= 'ァ' && r <= 'ヺ':
		case r == 'ー' || r == 'ゝ' || r == 'ゞ' || r == 'ヽ' || r == 'ヾ':
		default:
			return false
		}
	}
	return true
}
