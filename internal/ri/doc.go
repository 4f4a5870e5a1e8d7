// Package ri defines the RenderMan-style scene description interface shared
// by every stage in a stream filtering pipeline.
//
// The central type is Renderer: one method per scene description request,
// using RIB-level signatures (procedural and filter function arguments are
// carried as token names, the form they take on the wire). A pipeline stage
// implements Renderer, consumes each call, and usually forwards it to the
// next stage.
//
// Optional per-request parameters travel as a ParamList, an ordered list of
// declaration/value pairs. Values are constrained to a sealed set of array
// types (FloatArray, IntArray, StringArray) so that every stage can capture,
// compare, and serialize them without reflection.
package ri
