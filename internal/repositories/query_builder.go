package repositories

import (
	"fmt"
	"strings"
	"time"

	"gedoc/pkg/types"
)

// querySpec declara, por recurso, o que pode ser filtrado, ordenado e buscado.
// Chaves fora das listas são ignoradas em silêncio; a ordenação desconhecida
// cai no padrão do recurso.
type querySpec struct {
	filterable  map[string]string
	sortable    map[string]string
	searchable  []string
	defaultSort string
}

// buildWhere monta a cláusula WHERE: filtros de igualdade/conjunto/data em AND
// e, quando há busca livre, um OR de ILIKE sobre as colunas de texto fixas.
func buildWhere(filter types.Filter, spec querySpec) (string, []any) {
	conditions := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" && len(spec.searchable) > 0 {
		placeholder := arg("%" + filter.Search + "%")
		ors := make([]string, 0, len(spec.searchable))
		for _, col := range spec.searchable {
			ors = append(ors, fmt.Sprintf("%s ILIKE %s", col, placeholder))
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
	}

	for key, value := range filter.Filters {
		column, ok := spec.filterable[key]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case []string:
			placeholders := make([]string, 0, len(v))
			for _, item := range v {
				placeholders = append(placeholders, arg(item))
			}
			conditions = append(conditions, fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ",")))
		case time.Time:
			conditions = append(conditions, fmt.Sprintf("%s::date = %s::date", column, arg(v)))
		default:
			conditions = append(conditions, fmt.Sprintf("%s = %s", column, arg(v)))
		}
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildOrderBy resolve a ordenação: uma única coluna asc/desc, com fallback
// para "mais recente primeiro" do recurso.
func buildOrderBy(filter types.Filter, spec querySpec) string {
	if filter.SortBy != "" {
		if column, ok := spec.sortable[filter.SortBy]; ok {
			direction := "DESC"
			if strings.EqualFold(filter.SortOrder, "asc") {
				direction = "ASC"
			}
			return fmt.Sprintf("ORDER BY %s %s", column, direction)
		}
	}
	return "ORDER BY " + spec.defaultSort
}
