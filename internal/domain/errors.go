package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrStorageUnavailable - движок хранилища не открывается
	ErrStorageUnavailable = &DomainError{
		Code:    "STORAGE_UNAVAILABLE",
		Message: "storage engine cannot be opened",
	}

	// ErrReadFailed - транзакция чтения завершилась ошибкой
	ErrReadFailed = &DomainError{
		Code:    "READ_FAILED",
		Message: "read transaction failed",
	}

	// ErrWriteFailed - транзакция записи завершилась ошибкой
	ErrWriteFailed = &DomainError{
		Code:    "WRITE_FAILED",
		Message: "write transaction failed",
	}

	// ErrValidation - обязательное поле пустое или имеет неверный формат
	ErrValidation = &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: "all member fields are required",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewStorageUnavailableError оборачивает ошибку открытия движка
func NewStorageUnavailableError(err error) *DomainError {
	return &DomainError{
		Code:    "STORAGE_UNAVAILABLE",
		Message: fmt.Sprintf("storage engine cannot be opened: %v", err),
	}
}

// NewReadFailedError оборачивает ошибку транзакции чтения
func NewReadFailedError(op string, err error) *DomainError {
	return &DomainError{
		Code:    "READ_FAILED",
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}

// NewWriteFailedError оборачивает ошибку транзакции записи
func NewWriteFailedError(op string, err error) *DomainError {
	return &DomainError{
		Code:    "WRITE_FAILED",
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}

// NewValidationError создает ошибку VALIDATION_FAILED для конкретного поля
func NewValidationError(field string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: fmt.Sprintf("%s is required", field),
	}
}

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}
