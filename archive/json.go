package archive

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arloliu/evseq/dataset"
	"github.com/arloliu/evseq/errs"
)

type jsonDataset struct {
	Types         []string       `json:"types"`
	EventFeatures [][]float64    `json:"event_features,omitempty"`
	Sequences     []jsonSequence `json:"sequences"`
}

type jsonSequence struct {
	Name    string    `json:"name,omitempty"`
	Times   []float64 `json:"times"`
	Events  []int     `json:"events,omitempty"`
	Counts  [][]int   `json:"counts,omitempty"`
	Feature []float64 `json:"feature,omitempty"`
	TStart  float64   `json:"t_start"`
	TStop   float64   `json:"t_stop"`
	Label   *float64  `json:"label,omitempty"`
}

// WriteJSON writes ds as an indented JSON document.
//
// The document is the interchange form read by ReadJSON; the binary
// archive remains the compact form.
func WriteJSON(w io.Writer, ds *dataset.Dataset) error {
	if ds == nil {
		return errs.ErrNilDataset
	}
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	doc := jsonDataset{
		Types:         ds.TypeNames(),
		EventFeatures: ds.EventFeatures,
		Sequences:     make([]jsonSequence, len(ds.Sequences)),
	}
	for i, seq := range ds.Sequences {
		doc.Sequences[i] = jsonSequence{
			Name:    ds.IndexToSeq[i],
			Times:   seq.Times,
			Events:  seq.Events,
			Counts:  seq.Counts,
			Feature: seq.Feature,
			TStart:  seq.TStart,
			TStop:   seq.TStop,
			Label:   seq.Label,
		}
		if doc.Sequences[i].Times == nil {
			doc.Sequences[i].Times = []float64{}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// ReadJSON reads a document written by WriteJSON.
//
// Sequences are either all named or all unnamed.
func ReadJSON(r io.Reader) (*dataset.Dataset, error) {
	var doc jsonDataset
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	b := dataset.NewBuilder()
	if err := b.AddTypes(doc.Types...); err != nil {
		return nil, err
	}
	b.SetEventFeatures(doc.EventFeatures)

	named := 0
	for _, s := range doc.Sequences {
		if s.Name != "" {
			named++
		}
	}
	if named != 0 && named != len(doc.Sequences) {
		return nil, fmt.Errorf("%w: %d of %d sequences are named", errs.ErrInvalidName, named, len(doc.Sequences))
	}

	seqs := make([]dataset.Sequence, len(doc.Sequences))
	for i, s := range doc.Sequences {
		seqs[i] = dataset.Sequence{
			Times:   s.Times,
			Events:  s.Events,
			Counts:  s.Counts,
			Feature: s.Feature,
			TStart:  s.TStart,
			TStop:   s.TStop,
			Label:   s.Label,
		}
		if len(seqs[i].Times) == 0 {
			seqs[i].Times = nil
		}
		if named != 0 {
			if _, err := b.AddSequence(s.Name, seqs[i]); err != nil {
				return nil, err
			}
		}
	}

	ds, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if named == 0 {
		ds.Sequences = seqs
		if err := ds.Validate(); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	}

	return ds, nil
}
