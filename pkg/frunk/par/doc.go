// Package par runs the algebra concurrently. Associativity is what makes
// this sound: a run of values can be folded in independent chunks and the
// chunk results folded afterwards without changing the answer.
//
// - CombineAll: chunked parallel fold with a monoid.Monoid
// - Traverse: concurrent fallible calls with every failure kept, in order
// - WithWorkers/WithChunkSize/WithLogger: options carried in the context
//
// Workers default to runtime.GOMAXPROCS(0). Debug records go to the
// slog.Logger from WithLogger, or slog.Default.
package par
