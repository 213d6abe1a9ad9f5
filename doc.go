// Package vectsharp implements a retained-mode 2D vector graphics model.
//
// A scene is built as an ordered list of drawing actions (paths, text,
// rectangles, raster images, transforms, state markers and filtered
// sub-scenes) collected in a [Graphics]. Scenes are wrapped in a [Page]
// for consumption by a rendering back end, and two scenes can be morphed
// into one another by the animation subpackage.
//
// The geometric core is the [Segment] union (move, line, close, cubic
// Bezier, arc) and the [GraphicsPath] built from it. Segments provide
// length measurement, point and tangent sampling, linearisation to
// equal-arc-length polylines, adaptive flattening with bounded error and
// offset-aware flattening for stroking.
//
// Rasterisation, output encoding and platform compositing are out of
// scope: this package produces and transforms the action lists a renderer
// walks, it does not paint pixels.
package vectsharp
