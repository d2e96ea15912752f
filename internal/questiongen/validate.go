package questiongen

import "fmt"

// ValidationError describes why a decoded batch failed structural checks.
// Regeneration is the only recovery: there is no retry middleware, so the
// error surfaces directly to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// validateBatch checks the decoded batch against the requested count.
// Schema validation already ran at the provider layer; this guards the
// constraints a compliant-looking payload can still break.
func validateBatch(questions []Question, count int) *ValidationError {
	if len(questions) != count {
		return &ValidationError{
			Message: fmt.Sprintf("expected %d questions, got %d", count, len(questions)),
		}
	}

	seen := make(map[int]bool, len(questions))
	for i, q := range questions {
		if q.ID < 1 {
			return &ValidationError{
				Message: fmt.Sprintf("question %d has invalid id %d", i+1, q.ID),
			}
		}
		if seen[q.ID] {
			return &ValidationError{
				Message: fmt.Sprintf("duplicate question id %d", q.ID),
			}
		}
		seen[q.ID] = true

		if q.Text == "" {
			return &ValidationError{
				Message: fmt.Sprintf("question %d has empty text", q.ID),
			}
		}
		if len(q.Options) != 4 {
			return &ValidationError{
				Message: fmt.Sprintf("question %d has %d options, want 4", q.ID, len(q.Options)),
			}
		}
	}

	return nil
}
