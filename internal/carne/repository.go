// internal/carne/repository.go
package carne

// Repository abstrai a persistência da coleção de carnês. O motor sempre
// lê a coleção inteira, altera um item e grava a coleção de volta — não
// há persistência incremental nem isolamento entre chamadas distintas.
type Repository interface {
	Carregar() ([]Carne, error)
	SalvarTodos([]Carne) error
}
