// Package builder assembles synthetic transit networks for tests, benchmarks
// and demos.
//
// A network is composed from Constructors applied in order to one graph:
//
//	g, err := builder.BuildNetwork(
//		[]builder.Option{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 4))},
//		builder.Grid(10, 10),
//		builder.RandomLines(3, 8, 100),
//	)
//
// Determinism: the same options, seed and constructor order always produce
// the same stations, edges, insertion order and weights.
//
// Option constructors panic on meaningless input (nil functions, inverted
// ranges); Constructors never panic and return sentinel errors instead.
package builder
