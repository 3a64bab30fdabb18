package main

import (
	"fmt"
	"io"

	"github.com/arloliu/metacoder"
)

type inspectItem struct {
	Index int    `json:"index" yaml:"index"`
	End   uint64 `json:"end" yaml:"end"`
	Start int    `json:"start" yaml:"start"`
	Stop  int    `json:"stop" yaml:"stop"`
	Text  string `json:"text" yaml:"text"`
}

type inspectReport struct {
	Count  int           `json:"count" yaml:"count"`
	Size   int           `json:"size" yaml:"size"`
	Digest string        `json:"digest" yaml:"digest"`
	Items  []inspectItem `json:"items" yaml:"items"`
}

// inspect prints the count word, end-offset table and item segments of a
// string array buffer. Segment bounds are relative to the filler word.
func inspect(w io.Writer, s, outputFormat string) error {
	result, err := metacoder.Inspect(s)
	if err != nil {
		return err
	}

	report := inspectReport{
		Count:  result.Layout.Count,
		Size:   result.Layout.Size,
		Digest: fmt.Sprintf("%016x", result.Digest),
		Items:  make([]inspectItem, result.Layout.Count),
	}

	for i, seg := range result.Layout.Segments {
		report.Items[i] = inspectItem{
			Index: i,
			End:   result.Layout.Ends[i],
			Start: seg.Start,
			Stop:  seg.End,
			Text:  result.Items[i],
		}
	}

	return render(w, report, outputFormat)
}
