package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderResults renders one row per sentence with its scansion and
// syllable count.
func renderResults(sentences, scans []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Sentence", "Scansion", "Syllables"})

	for i, sent := range sentences {
		tw.AppendRow(table.Row{i + 1, sent, scans[i], len([]rune(scans[i]))})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, WidthMax: 60},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
