package service

import "errors"

// Сентинелы бизнес-ошибок. Хэндлеры сопоставляют их с HTTP-статусами
// через errors.Is; все прочие ошибки считаются серверными.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRescuingIDTaken    = errors.New("rescuing id already in use")
	ErrInvalidRescuingID  = errors.New("invalid rescuing id pattern")
)
