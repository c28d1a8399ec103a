package contextkeys

type contextKey string

const (
	// ClaimsKey guarda os claims do token já verificados no contexto da requisição.
	ClaimsKey contextKey = "authClaims"
)
