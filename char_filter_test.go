package gomamayo

import (
	"fmt"
	"testing"
)

func TestMappingCharFilter_Filter(t *testing.T) {
	tests := []struct {
		mapper map[string]string
		s      string
		want   string
	}{
		{
			mapper: map[string]string{"か": "ka", "き": "ki"},
			s:      "かきくけこ",
			want:   "kakiくけこ",
		},
		{
			mapper: map[string]string{"胡麻": "ごま"},
			s:      "胡麻マヨ",
			want:   "ごまマヨ",
		},
		{
			mapper: map[string]string{"博麗": "はくれい", "博麗霊夢": "はくれい れいむ"},
			s:      "博麗霊夢と博麗神社",
			want:   "はくれい れいむとはくれい神社",
		},
		{
			mapper: map[string]string{"": "x", "ゴマ": "ごま"},
			s:      "ゴマ",
			want:   "ごま",
		},
		{
			mapper: nil,
			s:      "ゴマ",
			want:   "ゴマ",
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("mapper = %v, s = %v, want = %v", tt.mapper, tt.s, tt.want), func(t *testing.T) {
			c := NewMappingCharFilter(tt.mapper)
			if got := c.Filter(tt.s); got != tt.want {
				t.Errorf("MappingCharFilter.Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeCharFilter_Filter(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{s: "ｺﾞﾏﾏﾖ", want: "ゴママヨ"},
		{s: "ｼｭｰﾘｮｰ", want: "シューリョー"},
		{s: "ＡＢＣ１２３", want: "ABC123"},
		{s: "ゴママヨ", want: "ゴママヨ"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("s = %v, want = %v", tt.s, tt.want), func(t *testing.T) {
			if got := NewNormalizeCharFilter().Filter(tt.s); got != tt.want {
				t.Errorf("NormalizeCharFilter.Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrimCharFilter_Filter(t *testing.T) {
	if got := NewTrimCharFilter().Filter(" 　ゴママヨ\n"); got != "ゴママヨ" {
		t.Errorf("TrimCharFilter.Filter() = %v, want %v", got, "ゴママヨ")
	}
}

func TestStandardCharFilters(t *testing.T) {
	tests := []struct {
		normalize bool
		charMap   map[string]string
		s         string
		want      string
	}{
		{normalize: false, charMap: nil, s: " ｺﾞﾏ ", want: "ｺﾞﾏ"},
		{normalize: true, charMap: nil, s: " ｺﾞﾏ ", want: "ゴマ"},
		{normalize: true, charMap: map[string]string{"ゴマ": "ごま"}, s: " ｺﾞﾏ ", want: "ごま"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("normalize = %v, charMap = %v", tt.normalize, tt.charMap), func(t *testing.T) {
			s := tt.s
			for _, f := range StandardCharFilters(tt.normalize, tt.charMap) {
				s = f.Filter(s)
			}
			if s != tt.want {
				t.Errorf("StandardCharFilters() = %v, want %v", s, tt.want)
			}
		})
	}
}
