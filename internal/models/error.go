package models

// ErrorCode representa o código de erro retornado pela API
type ErrorCode string

const (
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeDuplicateCode    ErrorCode = "DUPLICATE_CODE"
	ErrorCodeInvalidReference ErrorCode = "INVALID_REFERENCE"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeInternal         ErrorCode = "INTERNAL"
)

// ErrorDetail representa um detalhe específico do erro
type ErrorDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// ErrorResponse representa a resposta de erro padronizada
type ErrorResponse struct {
	Error ErrorInfo `json:"error"`
}

// ErrorInfo representa a informação do erro
type ErrorInfo struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(code),
			Message: message,
		},
	}
}

// NewValidationError cria um erro de validação com detalhes
func NewValidationError(message string, details []ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Error: ErrorInfo{
			Code:    string(ErrorCodeInvalidRequest),
			Message: message,
			Details: details,
		},
	}
}

// NewNotFoundError cria um erro de recurso não encontrado
func NewNotFoundError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeNotFound, message)
}

// NewDuplicateCodeError cria um erro de código único duplicado
func NewDuplicateCodeError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeDuplicateCode, message)
}

// NewInvalidReferenceError cria um erro de referência inexistente
func NewInvalidReferenceError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeInvalidReference, message)
}

// NewInternalError cria um erro interno do servidor
func NewInternalError(message string) ErrorResponse {
	return NewErrorResponse(ErrorCodeInternal, message)
}
