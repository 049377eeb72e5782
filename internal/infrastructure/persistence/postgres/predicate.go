package postgres

import (
	"fmt"
	"strings"

	"github.com/statusmarket/statusmarket-backend/internal/domain/predicate"
)

// listingColumns mapeia campos lógicos da AST de predicados para as
// colunas da tabela listings. Campos fora desta lista são rejeitados.
var listingColumns = map[string]string{
	predicate.FieldTitle:       "title",
	predicate.FieldDescription: "description",
	predicate.FieldCategory:    "category",
	predicate.FieldLocation:    "location",
	predicate.FieldPrice:       "price",
	predicate.FieldCurrency:    "currency",
	predicate.FieldOwnerID:     "owner_id",
	predicate.FieldIsActive:    "is_active",
}

// CompileListingPredicate compila a AST de predicados para uma cláusula
// SQL parametrizada. Os matches case-insensitive usam lower(col) LIKE,
// que funciona tanto no PostgreSQL quanto no SQLite usado nos testes.
func CompileListingPredicate(p predicate.Predicate) (string, []any, error) {
	switch node := p.(type) {
	case predicate.Equals:
		col, err := listingColumn(node.Field)
		if err != nil {
			return "", nil, err
		}
		return col + " = ?", []any{node.Value}, nil

	case predicate.EqualsFold:
		col, err := listingColumn(node.Field)
		if err != nil {
			return "", nil, err
		}
		return "lower(" + col + ") = ?", []any{strings.ToLower(node.Value)}, nil

	case predicate.ContainsFold:
		col, err := listingColumn(node.Field)
		if err != nil {
			return "", nil, err
		}
		pattern := "%" + strings.ToLower(escapeLike(node.Value)) + "%"
		return "lower(" + col + ") LIKE ? ESCAPE '\\'", []any{pattern}, nil

	case predicate.Range:
		col, err := listingColumn(node.Field)
		if err != nil {
			return "", nil, err
		}
		var clauses []string
		var args []any
		if node.Min != nil {
			clauses = append(clauses, col+" >= ?")
			args = append(args, *node.Min)
		}
		if node.Max != nil {
			clauses = append(clauses, col+" <= ?")
			args = append(args, *node.Max)
		}
		if len(clauses) == 0 {
			return "", nil, fmt.Errorf("range predicate on %s has no bounds", node.Field)
		}
		return "(" + strings.Join(clauses, " AND ") + ")", args, nil

	case predicate.And:
		return compileGroup(node.Preds, " AND ")

	case predicate.Or:
		return compileGroup(node.Preds, " OR ")

	default:
		return "", nil, fmt.Errorf("unsupported predicate node %T", p)
	}
}

func compileGroup(preds []predicate.Predicate, op string) (string, []any, error) {
	if len(preds) == 0 {
		return "", nil, fmt.Errorf("empty predicate group")
	}

	clauses := make([]string, 0, len(preds))
	var args []any
	for _, p := range preds {
		clause, clauseArgs, err := CompileListingPredicate(p)
		if err != nil {
			return "", nil, err
		}
		clauses = append(clauses, clause)
		args = append(args, clauseArgs...)
	}

	if len(clauses) == 1 {
		return clauses[0], args, nil
	}
	return "(" + strings.Join(clauses, op) + ")", args, nil
}

func listingColumn(field string) (string, error) {
	col, ok := listingColumns[field]
	if !ok {
		return "", fmt.Errorf("unknown listing field %q", field)
	}
	return col, nil
}

// escapeLike neutraliza curingas do LIKE vindos do usuário
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
