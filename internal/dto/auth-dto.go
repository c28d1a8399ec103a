package dto

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Senha    string `json:"senha" validate:"required"`
}

type RegisterDTO struct {
	Nome           string  `json:"nome" validate:"required,min=2,max=150"`
	Apelido        *string `json:"apelido" validate:"omitempty,max=100"`
	Username       string  `json:"username" validate:"required,min=3,max=100,alphanum"`
	Senha          string  `json:"senha" validate:"required,min=8,max=72"`
	DepartamentoID *uint64 `json:"departamentoId" validate:"omitempty,gt=0"`
}

type ChangePasswordDTO struct {
	SenhaAtual string `json:"senhaAtual" validate:"required"`
	NovaSenha  string `json:"novaSenha" validate:"required,min=8,max=72,nefield=SenhaAtual"`
}

type TokenPairDTO struct {
	AccessToken string     `json:"accessToken"`
	TokenType   string     `json:"tokenType"`
	ExpiresIn   int64      `json:"expiresIn"`
	Usuario     UsuarioDTO `json:"usuario"`
}
