// Package desktop runs the dashboard in a native window through raylib.
//
// The window loop polls the pointer, lays out a frame with the dashboard
// callbacks, and paints the render commands with a Drawer over raylib
// primitives. Text uses the bundled typeface loaded into a raylib font.
package desktop
