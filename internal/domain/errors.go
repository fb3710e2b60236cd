package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrConflict      = errors.New("clave única duplicada")
	ErrInvalidData   = errors.New("documento rechazado por el almacenamiento")
	ErrInvalidID     = errors.New("id inválido")
	ErrAlreadyLoaded = errors.New("datos iniciales ya cargados")
)
