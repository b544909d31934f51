package colorimetry

import "fmt"

// NotFoundError reports an unknown observer, illuminant, colorspace,
// checker or patch name.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// StateError reports an operation invoked before its prerequisite, such as
// converting a patch to RGB before its XYZ has been computed.
type StateError struct {
	Op     string
	Patch  string
	Reason string
}

func (e *StateError) Error() string {
	if e.Patch == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: patch %q: %s", e.Op, e.Patch, e.Reason)
}
