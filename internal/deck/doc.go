// Package deck defines the presentation document model shared by every
// consumer of a deck: the layout compiler, the PPTX producer and the viewer.
//
// A Document is an ordered list of slides. Each slide is one variant of a
// closed set keyed by its declared layout. Decoding is lenient: fields with
// the wrong shape are dropped, unknown layouts become ContentSlide, and every
// decoded slide keeps its original JSON so a document re-encodes without
// losing fields that its layout ignores.
//
// This package imports nothing internal.
package deck
