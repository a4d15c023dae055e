package embedding

import "fmt"

// DimensionMismatchError reports an embedding whose length disagrees with
// the profile's chunk embedding dimension. This is a configuration error
// and aborts the run.
type DimensionMismatchError struct {
	Want int
	Got  int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: profile has %d, provider produced %d", e.Want, e.Got)
}
