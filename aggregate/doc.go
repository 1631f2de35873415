// Package aggregate turns irregular event sequences into fixed-width
// binned count series.
//
// Every sequence of the input is replaced by one row of per-type counts per
// bin. Events whose bin falls outside the allocated range, which happens for
// events outside [TStart, TStop] or near the last bin boundary, follow the
// configured BinPolicy.
//
//	out, err := aggregate.Aggregate(ds, 5,
//		aggregate.WithBinAssignment(aggregate.AssignFloor),
//		aggregate.WithBinPolicy(aggregate.PolicyClamp),
//	)
package aggregate
