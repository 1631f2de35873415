// Package sampler adapts prepared datasets to minibatch consumers.
//
// EventSampler emits one Sample per event with a fixed-size history window.
// SequenceSampler emits one Sample per sequence, targeting its label.
// Collate packs samples into a Batch whose Fields mapping uses the key names
// expected by point-process trainers; EnumerateAllEvents builds the matching
// table of every event type.
package sampler
