package gomamayo

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	TokenizationFailure ErrorKind = iota + 1 // 入力を分かち書きできない
	UnresolvedReading                        // 単語の読みが見つからない
	InputFailure                             // 入力そのものを取得できない
)

func (k ErrorKind) String() string {
	switch k {
	case TokenizationFailure:
		return "tokenization_failure"
	case UnresolvedReading:
		return "unresolved_reading"
	case InputFailure:
		return "input_failure"
	default:
		return "unknown"
	}
}

// errors.Is で種別を判定するための番兵
var (
	ErrTokenization      = &Error{Kind: TokenizationFailure}
	ErrUnresolvedReading = &Error{Kind: UnresolvedReading}
	ErrInput             = &Error{Kind: InputFailure}
)

type Error struct {
	Kind   ErrorKind
	Phrase string // 処理中のフレーズ
	Token  string // 読みが見つからなかった語(UnresolvedReadingのみ)
	Err    error
}

func NewTokenizationError(phrase string, err error) *Error {
	return &Error{Kind: TokenizationFailure, Phrase: phrase, Err: err}
}

func NewUnresolvedReadingError(phrase, token string) *Error {
	return &Error{Kind: UnresolvedReading, Phrase: phrase, Token: token}
}

func NewInputError(err error) *Error {
	return &Error{Kind: InputFailure, Err: err}
}

func (e *Error) Error() string {
	switch e.Kind {
	case TokenizationFailure:
		return fmt.Sprintf("入力を分かち書きできませんでした: %s: %v", e.Phrase, e.Err)
	case UnresolvedReading:
		if e.Phrase == "" {
			return fmt.Sprintf("単語の読み方を取得できませんでした: %s", e.Token)
		}
		return fmt.Sprintf("単語の読み方を取得できませんでした: %s (%s)", e.Token, e.Phrase)
	case InputFailure:
		if e.Phrase == "" {
			return fmt.Sprintf("入力を読み込めませんでした: %v", e.Err)
		}
		return fmt.Sprintf("入力を読み込めませんでした: %s: %v", e.Phrase, e.Err)
	default:
		return fmt.Sprintf("不明なエラーが発生しました: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is は種別が同じであれば一致とみなす
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// withPhrase はフレーズが未設定のエラーにフレーズを埋める
func (e *Error) withPhrase(phrase string) *Error {
	if e.Phrase != "" {
		return e
	}
	c := *e
	c.Phrase = phrase
	return &c
}
