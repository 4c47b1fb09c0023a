package apperrors

type Code string

const (
	CodeUnknown              Code = "UNKNOWN"
	CodeInvalidMessageFormat Code = "INVALID_MESSAGE_FORMAT"
	CodeValidation           Code = "VALIDATION"
	CodeNotFound             Code = "NOT_FOUND"
	CodeFetch                Code = "FETCH"
	CodeUpload               Code = "UPLOAD"
	CodeReasoning            Code = "REASONING"
	CodeSearchProvider       Code = "SEARCH_PROVIDER"
	CodeInternal             Code = "INTERNAL"
)
