package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

var formats = []string{"text", "json", "yaml", "table"}

type tokenRecord struct {
	Line int    `json:"line" yaml:"line"`
	Col  int    `json:"col" yaml:"col"`
	Kind string `json:"kind" yaml:"kind"`
	Text string `json:"text" yaml:"text"`
}

func writeTokens(w io.Writer, format string, tokens []tokenRecord) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if e := enc.Encode(tokens); e != nil {
			return e
		}
		return enc.Close()

	case "table":
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeader([]string{"Pos", "Kind", "Text"})
		for _, t := range tokens {
			table.Append([]string{fmt.Sprintf("%d:%d", t.Line, t.Col), t.Kind, strconv.Quote(t.Text)})
		}
		table.Render()
		return nil

	default:
		for _, t := range tokens {
			if _, e := fmt.Fprintf(w, "%d:%d %s %q\n", t.Line, t.Col, t.Kind, t.Text); e != nil {
				return e
			}
		}
		return nil
	}
}
