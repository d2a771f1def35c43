package response

// ErrCode identifies an API failure. Codes select the client-facing message;
// they are not part of the response body.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Requests ──────────────────────────────────────────────────────
	ErrMalformedRequest  ErrCode = "MALFORMED_REQUEST"
	ErrNotFound          ErrCode = "NOT_FOUND"
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns the user-facing message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "Credenciales inválidas"
	case ErrTokenRequired:
		return "Se requiere un token de autenticación"
	case ErrTokenInvalid:
		return "Token de autenticación inválido o expirado"
	case ErrMalformedRequest:
		return "Solicitud mal formada"
	case ErrNotFound:
		return "Recurso no encontrado"
	case ErrRateLimitExceeded:
		return "Demasiadas solicitudes. Inténtalo de nuevo más tarde"
	case ErrInternal:
		return "Error interno del servidor"
	default:
		return "Error inesperado"
	}
}
