package dto

// UserClaims é a identidade extraída de um token de acesso já verificado.
type UserClaims struct {
	UserID      uint64   `json:"userId"`
	Username    string   `json:"username"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
}

// HasAnyRole verifica pertencimento com semântica "qualquer um de".
func (c *UserClaims) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range c.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

func (c *UserClaims) HasAnyPermission(permissions ...string) bool {
	for _, want := range permissions {
		for _, have := range c.Permissions {
			if have == want {
				return true
			}
		}
	}
	return false
}
