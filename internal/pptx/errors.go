package pptx

import "fmt"

// ProduceError is a failure while assembling the package. Part names the
// package part being written, if any.
type ProduceError struct {
	Part string
	Err  error
}

func (e *ProduceError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("pptx: writing %s: %v", e.Part, e.Err)
	}
	return fmt.Sprintf("pptx: %v", e.Err)
}

func (e *ProduceError) Unwrap() error {
	return e.Err
}
