package main

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// batchEntry is a formula to evaluate in a batch file, which is a YAML list of
// entries.
type batchEntry struct {
	Name string   `yaml:"name,omitempty"`
	Expr string   `yaml:"expr"`
	X    *float64 `yaml:"x,omitempty"`
}

type batchResult struct {
	Name   string   `yaml:"name,omitempty"`
	Expr   string   `yaml:"expr"`
	X      *float64 `yaml:"x,omitempty"`
	Result string   `yaml:"result,omitempty"`
	Error  string   `yaml:"error,omitempty"`
}

func readBatch(r io.Reader) ([]batchEntry, error) {
	var entries []batchEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}

func writeBatch(w io.Writer, res []batchResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}
