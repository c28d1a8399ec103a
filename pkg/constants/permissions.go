package constants

// Papéis padrão do sistema.
const (
	RoleAdmin   = "admin"
	RoleGestor  = "gestor"
	RoleUsuario = "usuario"
)

// Permissões no formato recurso:ação.
const (
	CadastrosVisualizar = "cadastros:visualizar"
	CadastrosGerenciar  = "cadastros:gerenciar"

	DocumentosVisualizar = "documentos:visualizar"
	DocumentosCriar      = "documentos:criar"
	DocumentosEditar     = "documentos:editar"
	DocumentosExcluir    = "documentos:excluir"

	RelatoriosExportar = "relatorios:exportar"

	UsuariosGerenciar = "usuarios:gerenciar"
)

// AllPermissions alimenta o seeder e a validação dos vínculos papel-permissão.
var AllPermissions = []string{
	CadastrosVisualizar,
	CadastrosGerenciar,
	DocumentosVisualizar,
	DocumentosCriar,
	DocumentosEditar,
	DocumentosExcluir,
	RelatoriosExportar,
	UsuariosGerenciar,
}
