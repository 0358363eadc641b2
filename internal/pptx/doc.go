// Package pptx writes compiled decks as PowerPoint presentations and reads
// them back.
//
// Produce is a pure transform: one document in, one byte slice out. It keeps
// no state between calls and is safe for concurrent use. Output is
// byte-for-byte reproducible when the clock is fixed with WithClock; the
// clock only feeds the creation timestamps.
//
// Every rendered element becomes one text shape positioned in EMU and filled
// from the palette. Speaker notes go to notes slides and never into a
// slide's shape tree.
package pptx
