// internal/carne/query.go
package carne

import (
	"strings"
	"time"
)

// Filtro reúne os critérios de busca da listagem. Todos são opcionais e
// combinados por E lógico; zero values não filtram nada.
type Filtro struct {
	Status     string
	Loja       string
	Cliente    string
	EmissaoDe  *time.Time
	EmissaoAte *time.Time
}

// Filtrar devolve os carnês que atendem a todos os critérios, na ordem
// original. A coleção de entrada nunca é alterada.
func Filtrar(carnes []Carne, f Filtro) []Carne {
	resultado := make([]Carne, 0, len(carnes))
	for i := range carnes {
		if atende(&carnes[i], f) {
			resultado = append(resultado, carnes[i])
		}
	}
	return resultado
}

func atende(c *Carne, f Filtro) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Loja != "" && c.Loja != f.Loja {
		return false
	}
	if f.Cliente != "" && !strings.Contains(strings.ToLower(c.Cliente), strings.ToLower(f.Cliente)) {
		return false
	}
	// intervalo inclusivo, comparado por dia
	emissao := inicioDoDia(c.DataEmissao)
	if f.EmissaoDe != nil && emissao.Before(inicioDoDia(*f.EmissaoDe)) {
		return false
	}
	if f.EmissaoAte != nil && emissao.After(inicioDoDia(*f.EmissaoAte)) {
		return false
	}
	return true
}

func inicioDoDia(t time.Time) time.Time {
	ano, mes, dia := t.Date()
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}
