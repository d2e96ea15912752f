package llm

import "context"

type ctxKey int

const ctxKeyPurpose ctxKey = iota

// WithPurpose labels the context with the gateway operation being served
// (question-gen, profile-analysis). The logging decorator stamps it onto
// the recorded event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, ctxKeyPurpose, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" when the caller
// never set one.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyPurpose).(string); ok {
		return v
	}
	return "unknown"
}
