// Package viewer navigates a compiled deck.
//
// A Viewer holds the navigation state over the pages produced by
// layout.Compile. Model drives it from a terminal with bubbletea, and
// RenderHTML draws the current page as a standalone HTML document. Both
// read the same rendered elements the pptx producer writes, so what is on
// screen matches the exported file.
package viewer
