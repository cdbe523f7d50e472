package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrUsernameAlreadyExists = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrProductInactive       = errors.New("producto inactivo")
	ErrInsufficientStock     = errors.New("stock insuficiente")
)
