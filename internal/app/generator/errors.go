package generator

import "fmt"

// ValidationError reports a request that can never succeed, such as an
// unknown platform or language. It is raised before any network call.
type ValidationError struct {
	Field string
	Value string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Msg)
}
