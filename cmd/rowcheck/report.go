package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrymomot/strcheck/pkg/validator"
)

type report struct {
	RunID   string                     `json:"run_id"`
	Records int                        `json:"records"`
	Valid   bool                       `json:"valid"`
	Errors  validator.ValidationErrors `json:"errors"`
}

func (r report) write(w io.Writer, format string) error {
	if format == "json" {
		if r.Errors == nil {
			r.Errors = validator.ValidationErrors{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	for _, err := range r.Errors {
		if _, werr := fmt.Fprintln(w, err.ErrorMessage()); werr != nil {
			return werr
		}
	}
	_, err := fmt.Fprintf(w, "%d rows checked, %d errors\n", r.Records, len(r.Errors))
	return err
}
