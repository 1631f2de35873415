package dataset

import "go.uber.org/zap"

// Stats summarizes a dataset.
type Stats struct {
	NumTypes        int
	NumSequences    int
	EventFeatureDim int
	// SeqFeatureDim is the feature dimension of the first sequence, 0 when
	// the dataset is empty or the first sequence has no feature.
	SeqFeatureDim int
	MaxEvents     int
	MinEvents     int
	MeanEvents    float64
}

// Stats computes summary statistics over d. Event counts are timestamp
// counts, so an aggregated dataset reports bins.
func (d *Dataset) Stats() Stats {
	st := Stats{
		NumTypes:        d.NumTypes(),
		NumSequences:    d.Len(),
		EventFeatureDim: d.EventFeatureDim(),
	}
	if len(d.Sequences) == 0 {
		return st
	}

	st.SeqFeatureDim = len(d.Sequences[0].Feature)
	st.MinEvents = d.Sequences[0].Len()
	total := 0
	for i := range d.Sequences {
		n := d.Sequences[i].Len()
		total += n
		st.MaxEvents = max(st.MaxEvents, n)
		st.MinEvents = min(st.MinEvents, n)
	}
	st.MeanEvents = float64(total) / float64(len(d.Sequences))

	return st
}

// LogFields renders the statistics as zap fields.
func (s Stats) LogFields() []zap.Field {
	return []zap.Field{
		zap.Int("types", s.NumTypes),
		zap.Int("sequences", s.NumSequences),
		zap.Int("event_feature_dim", s.EventFeatureDim),
		zap.Int("seq_feature_dim", s.SeqFeatureDim),
		zap.Int("max_events", s.MaxEvents),
		zap.Int("min_events", s.MinEvents),
		zap.Float64("mean_events", s.MeanEvents),
	}
}

// LogStats logs the statistics of d at info level.
func LogStats(logger *zap.Logger, d *Dataset) {
	if logger == nil {
		return
	}
	logger.Info("dataset info", d.Stats().LogFields()...)
}
