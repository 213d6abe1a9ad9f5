// Package filters provides raster filters for filtered graphics
// content: Gaussian blur, arbitrary convolution and colour matrix
// transforms. A filter describes itself in graphics units and is
// applied to pixel data at rasterisation time, scaled to the output
// resolution.
package filters
