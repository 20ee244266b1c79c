// Package tickstep implements a fixed timestep simulation loop.
//
// A Simulation owns an ordered collection of Objects and converts elapsed
// wall clock time into a whole number of fixed length ticks, so that objects
// advance deterministically no matter how irregularly the caller renders.
// Objects implement the small Tick/Draw contract, optionally extended by
// Expirer for bodies with a limited lifetime.
//
// The tickbiten package drives a Simulation from an ebiten frame loop; the
// physics package provides a chipmunk backed object variant.
package tickstep
