package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gedoc/pkg/types"
)

var specTeste = querySpec{
	filterable: map[string]string{
		"ativo":           "x.ativo",
		"status":          "x.status",
		"dataRecebimento": "x.data_recebimento",
	},
	sortable: map[string]string{
		"nome":      "x.nome",
		"createdAt": "x.created_at",
	},
	searchable:  []string{"x.nome", "x.codigo"},
	defaultSort: "x.created_at DESC",
}

func TestBuildWhere_SemFiltros(t *testing.T) {
	where, args := buildWhere(types.Filter{}, specTeste)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildWhere_Busca(t *testing.T) {
	where, args := buildWhere(types.Filter{Search: "rh"}, specTeste)
	assert.Equal(t, "WHERE (x.nome ILIKE $1 OR x.codigo ILIKE $1)", where)
	assert.Equal(t, []any{"%rh%"}, args)
}

func TestBuildWhere_Igualdade(t *testing.T) {
	where, args := buildWhere(types.Filter{Filters: map[string]any{"ativo": "true"}}, specTeste)
	assert.Equal(t, "WHERE x.ativo = $1", where)
	assert.Equal(t, []any{"true"}, args)
}

func TestBuildWhere_Conjunto(t *testing.T) {
	where, args := buildWhere(types.Filter{
		Filters: map[string]any{"status": []string{"draft", "pending"}},
	}, specTeste)
	assert.Equal(t, "WHERE x.status IN ($1,$2)", where)
	assert.Equal(t, []any{"draft", "pending"}, args)
}

func TestBuildWhere_Data(t *testing.T) {
	dia := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	where, args := buildWhere(types.Filter{
		Filters: map[string]any{"dataRecebimento": dia},
	}, specTeste)
	assert.Equal(t, "WHERE x.data_recebimento::date = $1::date", where)
	assert.Equal(t, []any{dia}, args)
}

func TestBuildWhere_ChaveDesconhecidaIgnorada(t *testing.T) {
	where, args := buildWhere(types.Filter{
		Filters: map[string]any{"senha": "x' OR 1=1 --"},
	}, specTeste)
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildOrderBy(t *testing.T) {
	assert.Equal(t, "ORDER BY x.created_at DESC",
		buildOrderBy(types.Filter{}, specTeste))

	assert.Equal(t, "ORDER BY x.nome ASC",
		buildOrderBy(types.Filter{SortBy: "nome", SortOrder: "asc"}, specTeste))

	assert.Equal(t, "ORDER BY x.nome DESC",
		buildOrderBy(types.Filter{SortBy: "nome", SortOrder: "desc"}, specTeste))

	// Coluna fora da lista não entra na query.
	assert.Equal(t, "ORDER BY x.created_at DESC",
		buildOrderBy(types.Filter{SortBy: "senha; DROP TABLE x", SortOrder: "asc"}, specTeste))
}
