// Package animation interpolates between retained graphics scenes and
// assembles the results into a timeline of keyframes and transitions.
//
// Actions in the start and end scene are matched by tag and type; each
// matched pair gets an interpolation strategy appropriate for the
// action type. Paths with differing topology are morphed by resampling
// their figures to a common point count and aligning them. Everything
// else that cannot be blended continuously switches at the midpoint of
// the transition.
package animation
