// Package render converts arbitrary runtime values into readable,
// optionally colored display strings.
//
// The renderer is a single recursive function parameterized by Options;
// the named presets (Plain, JSONLike, Terminal, History, Bus, Inspect)
// are fixed parameter combinations, not separate implementations.
//
// Cycles are detected with an identity-based visited set threaded
// through the recursion. A container is added before its children are
// rendered and removed afterwards, so only true ancestors render as
// "[Circular]". Two siblings referencing the same container both expand
// normally.
//
// Containers with 100 or more own entries render as the literal "{...}"
// at whatever depth they appear, bounding output size for large
// structures.
//
// Values without a rendering rule produce ErrUnknownType. Logging
// front-ends are expected to catch it so a bad argument cannot take down
// the whole log call chain.
package render
