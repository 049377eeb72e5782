// Package predicate define uma pequena AST de filtros tipados.
// Os handlers montam predicados a partir dos parâmetros de busca e o
// adaptador de persistência os compila para SQL, evitando a montagem
// de cláusulas "stringly-typed" espalhada pelos repositórios.
package predicate

// Campos lógicos de um anúncio que podem aparecer em predicados.
// O adaptador de persistência é responsável por mapeá-los para colunas.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldLocation    = "location"
	FieldPrice       = "price"
	FieldCurrency    = "currency"
	FieldOwnerID     = "ownerId"
	FieldIsActive    = "isActive"
)

// Predicate é a união de todos os nós de filtro suportados
type Predicate interface {
	isPredicate()
}

// Equals compara um campo por igualdade exata
type Equals struct {
	Field string
	Value any
}

// EqualsFold compara um campo por igualdade case-insensitive
type EqualsFold struct {
	Field string
	Value string
}

// ContainsFold testa substring case-insensitive
type ContainsFold struct {
	Field string
	Value string
}

// Range limita um campo numérico a um intervalo inclusivo.
// Min e Max são independentes; nil significa sem limite daquele lado.
type Range struct {
	Field string
	Min   *float64
	Max   *float64
}

// And conjunção de predicados
type And struct {
	Preds []Predicate
}

// Or disjunção de predicados
type Or struct {
	Preds []Predicate
}

func (Equals) isPredicate()       {}
func (EqualsFold) isPredicate()   {}
func (ContainsFold) isPredicate() {}
func (Range) isPredicate()        {}
func (And) isPredicate()          {}
func (Or) isPredicate()           {}
