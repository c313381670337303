package postgres

import (
	"fmt"
	"strings"
	"wareland-api/internal/core/domain"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddContainsAny matches a lower-cased substring in any of the fields with one shared argument.
func (qb *queryBuilder) AddContainsAny(needle string, fieldNames ...string) {
	parts := make([]string, 0, len(fieldNames))
	for _, field := range fieldNames {
		parts = append(parts, fmt.Sprintf(`LOWER(%s) LIKE $%d ESCAPE '\'`, field, qb.argId))
	}
	qb.conditions = append(qb.conditions, "("+strings.Join(parts, " OR ")+")")
	qb.args = append(qb.args, "%"+likeEscaper.Replace(needle)+"%")
	qb.argId++
}

func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// build returns "" when there is nothing to filter on.
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyCatalogFilter renders a CatalogFilter for the properties table aliased as p.
// The keyword is already trimmed and lower-cased by the domain layer.
func applyCatalogFilter(filter domain.CatalogFilter) (string, []interface{}) {
	qb := newQueryBuilder()

	if filter.Keyword != "" {
		qb.AddContainsAny(filter.Keyword, "p.address", "p.description")
	}
	qb.AddFloatFilter("p.price", filter.MinPrice, filter.MaxPrice)

	return qb.build()
}
