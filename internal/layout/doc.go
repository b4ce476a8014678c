// Package layout holds the integer geometry shared by the positioning
// strategies: rectangles, edges, points, sizes and dimension values.
//
// Everything here is pure. Rectangles are measured fresh by callers on every
// apply; nothing in this package caches.
// Types are re-exported through the root overlay package for public consumption.
package layout
