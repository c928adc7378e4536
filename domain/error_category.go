package domain

// ErrorCategory buckets an error for CLI recovery-suggestion purposes. It
// is a coarser, user-facing partition than the DomainError codes above -
// several DomainError codes can map to the same ErrorCategory.
type ErrorCategory string

const (
	ErrorCategoryInput      ErrorCategory = "Input Error"
	ErrorCategoryConfig     ErrorCategory = "Configuration Error"
	ErrorCategoryProcessing ErrorCategory = "Processing Error"
	ErrorCategoryOutput     ErrorCategory = "Output Error"
	ErrorCategoryTimeout    ErrorCategory = "Timeout Error"
	ErrorCategoryUnknown    ErrorCategory = "Unknown Error"
)

// CategorizedError wraps an error with its ErrorCategory and a
// user-facing message, surfaced by the CLI alongside recovery suggestions.
type CategorizedError struct {
	Category ErrorCategory
	Message  string
	Original error
}

func (e *CategorizedError) Error() string {
	if e.Original != nil {
		return e.Original.Error()
	}
	return e.Message
}

func (e *CategorizedError) Unwrap() error {
	return e.Original
}

// ErrorCategorizer classifies a raw error into an ErrorCategory and offers
// recovery suggestions for it. Implemented by service.ErrorCategorizerImpl.
type ErrorCategorizer interface {
	Categorize(err error) *CategorizedError
	GetRecoverySuggestions(category ErrorCategory) []string
}
