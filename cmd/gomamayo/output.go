package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/k0kubun/pp"
	"github.com/kotaroooo0/gomamayo"
	"gopkg.in/yaml.v3"
)

type output struct {
	Phrase     string              `json:"phrase" yaml:"phrase"`
	Readings   []string            `json:"readings" yaml:"readings"`
	Romaji     []string            `json:"romaji,omitempty" yaml:"romaji,omitempty"`
	IsGomamayo bool                `json:"is_gomamayo" yaml:"is_gomamayo"`
	Kind       *gomamayo.Kind      `json:"kind" yaml:"kind"`
	Junctions  []gomamayo.Junction `json:"junctions" yaml:"junctions"`
}

func newOutput(r gomamayo.Result) output {
	o := output{
		Phrase:     r.Phrase,
		Readings:   r.Gomamayo.Readings,
		IsGomamayo: r.Gomamayo.IsGomamayo(),
		Kind:       r.Gomamayo.Kind,
		Junctions:  r.Gomamayo.Junctions,
	}
	if romaji := r.Tokens.Romaji(); hasRomaji(romaji) {
		o.Romaji = romaji
	}
	return o
}

func hasRomaji(romaji []string) bool {
	for _, r := range romaji {
		if r != "" {
			return true
		}
	}
	return false
}

// printer は判定結果を指定の形式で書き出す
type printer struct {
	w      io.Writer
	format string
	debug  bool
	yaml   *yaml.Encoder
}

func newPrinter(w io.Writer, format string, debug bool) *printer {
	p := &printer{w: w, format: format, debug: debug}
	if format == "yaml" {
		p.yaml = yaml.NewEncoder(w)
	}
	if debug {
		// 色付けのエスケープシーケンスはパイプ先で読みにくい
		pp.ColoringEnabled = false
	}
	return p
}

func (p *printer) Print(r gomamayo.Result) error {
	if p.debug {
		if _, err := pp.Fprintln(p.w, r); err != nil {
			return err
		}
	}

	switch p.format {
	case "json":
		b, err := json.Marshal(newOutput(r))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(p.w, string(b))
		return err
	case "yaml":
		return p.yaml.Encode(newOutput(r))
	default:
		msg := r.Gomamayo.Message(r.Phrase)
		if romaji := r.Tokens.Romaji(); hasRomaji(romaji) {
			msg += " (" + strings.Join(romaji, " ") + ")"
		}
		_, err := fmt.Fprintln(p.w, msg)
		return err
	}
}

func (p *printer) Close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}
