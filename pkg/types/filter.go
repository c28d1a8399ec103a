package types

// Filter é o descritor normalizado de uma listagem: paginação, busca livre,
// ordenação e filtros de igualdade extraídos da query string.
type Filter struct {
	Search    string
	SortBy    string
	SortOrder string
	// Filters guarda filtros de igualdade por chave. O valor pode ser
	// string (igualdade simples), []string (conjunto, vindo de "a,b,c")
	// ou time.Time (chaves de data).
	Filters map[string]any
	Page    int
	Limit   int
}

func (f Filter) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// PageResult embala uma página de registros com o total antes da paginação.
type PageResult[T any] struct {
	Items []T
	Total uint64
}
