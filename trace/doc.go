// Package trace defines the snapshot contract shared by every generator
// family: Step, Trace, Dist and the Generator function type.
//
// What
//
//   - Step is the complete renderable state at one position of an
//     algorithm run. It is never a diff: a renderer given a single Step and
//     the base core.GraphData (or Step.Graph when set) can draw the frame
//     without consulting neighboring Steps.
//   - Trace is the ordered, finite, non-empty []Step returned by exactly one
//     generator call. It is created once, read many times and discarded when
//     the topic changes.
//   - Dist is a distance with distinguished +∞ and -∞ sentinels, ordered
//     around every finite value and never overflowing.
//
// Snapshot ownership
//
//	A generator mutates its own frontier, distance map and so on while it
//	runs. Before a facet goes into a Step it must be copied with Strings,
//	DistMap, FlowMap and friends. Emitting a live reference would make earlier
//	Steps change under the reader's feet. tracetest.AssertIndependent checks
//	this property for any trace.
//
// JSON
//
//	Step and core.GraphData carry json tags; they are the wire contract to
//	rendering collaborators. Dist encodes +∞ as "inf" and -∞ as "-inf".
//	core.Pair map keys encode as "From->To".
package trace
