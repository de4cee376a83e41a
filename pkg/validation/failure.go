package validation

import "fmt"

// Failure is the error a rule returns to report a per-field validation
// problem. Failures are collected into the error map and never escalate out
// of a Run; custom rules use Fail or Failf to signal them, and they are
// handled identically to built-in rule failures.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// Fail constructs a Failure with a literal message.
func Fail(message string) *Failure {
	return &Failure{Message: message}
}

// Failf constructs a Failure with a formatted message.
func Failf(format string, args ...any) *Failure {
	return &Failure{Message: fmt.Sprintf(format, args...)}
}
