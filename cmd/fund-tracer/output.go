package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/goodnatureofminers/blockinsight7000-fundtrace/internal/fundtrace/model"
)

const (
	outputJSON = "json"
	outputDump = "dump"
)

func writeReport(w io.Writer, format string, rep model.Report) error {
	switch format {
	case outputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case outputDump:
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(w, rep)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
