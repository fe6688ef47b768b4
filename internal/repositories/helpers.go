package repositories

import (
	"fmt"
	"strings"
)

// buildOrderByClause traduit filter.Sort en clause ORDER BY, restreinte aux
// colonnes autorisées du dépôt appelant.
func buildOrderByClause(sort map[string]string, allowedSortFields map[string]string, fallback string) string {
	if len(sort) == 0 {
		return fallback
	}
	sorts := []string{}
	for field, direction := range sort {
		if dbField, ok := allowedSortFields[field]; ok {
			order := "ASC"
			if strings.ToLower(direction) == "desc" {
				order = "DESC"
			}
			sorts = append(sorts, fmt.Sprintf("%s %s", dbField, order))
		}
	}
	if len(sorts) == 0 {
		return fallback
	}
	return "ORDER BY " + strings.Join(sorts, ", ")
}

// buildInCondition génère `col = $n` ou `col IN (...)` pour une valeur de
// filtre éventuellement multiple ("1,2,3").
func buildInCondition(dbColumn string, value interface{}, argCounter *int, args *[]interface{}) string {
	items := strings.Split(fmt.Sprintf("%v", value), ",")
	if len(items) > 1 {
		placeholders := []string{}
		for _, item := range items {
			placeholders = append(placeholders, fmt.Sprintf("$%d", *argCounter))
			*args = append(*args, strings.TrimSpace(item))
			*argCounter++
		}
		return fmt.Sprintf("%s IN (%s)", dbColumn, strings.Join(placeholders, ","))
	}
	cond := fmt.Sprintf("%s = $%d", dbColumn, *argCounter)
	*args = append(*args, value)
	*argCounter++
	return cond
}
