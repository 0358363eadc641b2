// Package layout turns deck documents into positioned elements.
//
// Compile runs once per document. It expands slides that overflow their
// per-slide capacity into several pages, resolves each page to one layout
// algorithm and renders it onto a logical 16:9 canvas measured in Units per
// axis. The resulting Deck is what the PPTX producer writes and what the
// viewers navigate, so both always agree on slide count, geometry and colors.
package layout
