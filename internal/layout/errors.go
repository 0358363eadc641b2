package layout

import "fmt"

// StructuralError reports a document that cannot be laid out at all. Bad
// slide content never causes one; it degrades instead.
type StructuralError struct {
	Index   int // slide index, -1 for the document itself
	Message string
}

func (e *StructuralError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("layout: %s", e.Message)
	}
	return fmt.Sprintf("layout: slide %d: %s", e.Index, e.Message)
}
