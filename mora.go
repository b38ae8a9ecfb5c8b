package gomamayo

import "strings"

// Mora は読みの最小単位。基底文字1つと、それに続く拗音などの小書き文字からなる
type Mora string

type Morae []Mora

// 直前の文字と結合して1モーラになる小書き文字
var combiningKana = map[rune]struct{}{
	'ャ': {}, 'ュ': {}, 'ョ': {}, 'ァ': {}, 'ィ': {}, 'ゥ': {}, 'ェ': {}, 'ォ': {},
	'ゃ': {}, 'ゅ': {}, 'ょ': {}, 'ぁ': {}, 'ぃ': {}, 'ぅ': {}, 'ぇ': {}, 'ぉ': {},
}

func isCombining(r rune) bool {
	_, ok := combiningKana[r]
	return ok
}

// SplitMorae は読みをモーラ列に分割する
// 長音符「ー」、促音「ッ」、撥音「ン」は直前の文字と結合せず、それぞれ1モーラになる
func SplitMorae(reading string) Morae {
	morae := make(Morae, 0, len(reading)/3)
	var buf strings.Builder
	for _, r := range reading {
		if !isCombining(r) && buf.Len() > 0 {
			morae = append(morae, Mora(buf.String()))
			buf.Reset()
		}
		buf.WriteRune(r)
	}
	if buf.Len() > 0 {
		morae = append(morae, Mora(buf.String()))
	}
	return morae
}

func (m Morae) Size() int {
	return len(m)
}

// String はモーラ列を連結して元の読みに戻す
func (m Morae) String() string {
	var b strings.Builder
	for _, mora := range m {
		b.WriteString(string(mora))
	}
	return b.String()
}

// Strings は各モーラを文字列のスライスとして返す
func (m Morae) Strings() []string {
	s := make([]string, len(m))
	for i, mora := range m {
		s[i] = string(mora)
	}
	return s
}
