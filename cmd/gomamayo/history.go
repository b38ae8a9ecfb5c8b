package main

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/kotaroooo0/gomamayo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newHistoryCmd(a *app) *cobra.Command {
	var minDegree int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "記録した判定結果を一覧する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			storage, err := openStorage(cfg.Storage)
			if err != nil {
				return err
			}
			defer storage.DB.Close()

			var detections []gomamayo.Detection
			if minDegree > 0 {
				detections, err = storage.GetGomamayoDetections(minDegree)
			} else {
				detections, err = storage.GetAllDetections()
			}
			if err != nil {
				return err
			}
			return a.printDetections(cfg.Format, detections)
		},
	}
	f := cmd.Flags()
	f.IntVar(&minDegree, "min-degree", 0, "次数がこれ以上のゴママヨだけを表示する")
	f.String("format", "text", "出力形式 (text, json, yaml)")
	return cmd
}

func (a *app) printDetections(format string, detections []gomamayo.Detection) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(detections, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(b))
		return err
	case "yaml":
		e := yaml.NewEncoder(a.out)
		if err := e.Encode(detections); err != nil {
			return err
		}
		return e.Close()
	default:
		for _, d := range detections {
			fmt.Fprintf(a.out, "%d\t%s\t%s\n", d.ID, d.CreatedAt.Format(time.RFC3339), d.Gomamayo().Message(d.Phrase))
		}
		return nil
	}
}
