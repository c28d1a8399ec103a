package utils

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "gedoc/pkg/errors"
	"gedoc/pkg/types"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Chaves reservadas da query string; todas as demais viram filtros de igualdade.
var reservedKeys = map[string]bool{
	"page":      true,
	"limit":     true,
	"search":    true,
	"sortBy":    true,
	"sortOrder": true,
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseFilterFromQuery normaliza os parâmetros de listagem.
// page e limit fora da faixa, ou sortOrder desconhecido, são erro de validação;
// o restante é tolerante: valores com vírgula viram conjuntos, chaves contendo
// "data"/"date" são interpretadas como data quando possível.
func ParseFilterFromQuery(values url.Values) (types.Filter, error) {
	filter := types.Filter{
		Filters:   make(map[string]any),
		Page:      1,
		Limit:     DefaultLimit,
		SortOrder: "desc",
	}

	if pageStr := values.Get("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return filter, apperrors.NewValidationError("parâmetro 'page' deve ser um inteiro maior ou igual a 1", nil)
		}
		filter.Page = p
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 || l > MaxLimit {
			return filter, apperrors.NewValidationError("parâmetro 'limit' deve estar entre 1 e 100", nil)
		}
		filter.Limit = l
	}

	if sortOrder := values.Get("sortOrder"); sortOrder != "" {
		so := strings.ToLower(sortOrder)
		if so != "asc" && so != "desc" {
			return filter, apperrors.NewValidationError("parâmetro 'sortOrder' deve ser 'asc' ou 'desc'", nil)
		}
		filter.SortOrder = so
	}

	filter.Search = values.Get("search")
	filter.SortBy = values.Get("sortBy")

	for key, vals := range values {
		if reservedKeys[key] || len(vals) == 0 || vals[0] == "" {
			continue
		}
		raw := vals[0]

		if isDateKey(key) {
			if t, ok := parseDate(raw); ok {
				filter.Filters[key] = t
				continue
			}
		}

		if strings.Contains(raw, ",") {
			parts := strings.Split(raw, ",")
			set := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					set = append(set, p)
				}
			}
			if len(set) > 0 {
				filter.Filters[key] = set
			}
			continue
		}

		filter.Filters[key] = raw
	}

	return filter, nil
}

func isDateKey(key string) bool {
	lower := strings.ToLower(key)
	return strings.Contains(lower, "data") || strings.Contains(lower, "date")
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
