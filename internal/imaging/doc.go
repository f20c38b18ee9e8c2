// Package imaging loads image files into pixel buffers for the search
// server and describes colors found in them.
//
// This package is the collaborator around the pixelsearch core: it decodes
// image files, caches them as ARGB buffers, parses target colors, samples
// single pixels and renders zoomed previews of a match. All coordinates are
// 0-based with (0,0) at the top-left corner, X increasing rightward and Y
// increasing downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use, and so are the buffers it
// returns. Other functions are stateless.
//
// # Color Representation
//
// Colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - ARGB: packed 32-bit word "0xAARRGGBB", usable as a search target
//   - RGB: 8-bit components (0-255)
//   - RGBA: 8-bit components with alpha (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Supported Formats
//
// PNG, JPEG and GIF use the standard library decoders; BMP, TIFF and WebP
// come from golang.org/x/image.
//
// # Performance Considerations
//
// Each cached image is held twice: decoded, and as an ARGB buffer of
// width*height*4 bytes. Use Evict() or Clear() to release them.
package imaging
