// Package optimizer orchestrates the scoring and one-page optimization
// pipeline across bounded iterations.
package optimizer

// InvalidJobDescriptionError reports a job description that cannot drive a
// run, such as one with no usable text. It is fatal and surfaces
// immediately.
type InvalidJobDescriptionError struct {
	Message string
}

func (e *InvalidJobDescriptionError) Error() string {
	return "invalid job description: " + e.Message
}
