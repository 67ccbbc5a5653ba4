// internal/carne/totais.go
package carne

import (
	"time"

	"github.com/LojasRealce/api-carnes/internal/parcela"
)

// ValorTotal soma o valor de todas as parcelas do carnê.
func ValorTotal(c *Carne) float64 {
	var total float64
	for i := range c.Parcelas {
		total += c.Parcelas[i].Valor
	}
	return total
}

// ValorRestante soma o valor das parcelas ainda pendentes.
func ValorRestante(c *Carne) float64 {
	var total float64
	for i := range c.Parcelas {
		if c.Parcelas[i].Status != parcela.StatusPago {
			total += c.Parcelas[i].Valor
		}
	}
	return total
}

// ProximoVencimento retorna o menor vencimento entre as parcelas
// pendentes, ou nil quando não resta nenhuma.
func ProximoVencimento(c *Carne) *time.Time {
	var proximo *time.Time
	for i := range c.Parcelas {
		p := &c.Parcelas[i]
		if p.Status == parcela.StatusPago {
			continue
		}
		if proximo == nil || p.DataVencimento.Before(*proximo) {
			data := p.DataVencimento
			proximo = &data
		}
	}
	return proximo
}

// ParcelasPagas conta as parcelas já pagas.
func ParcelasPagas(c *Carne) int {
	pagas := 0
	for i := range c.Parcelas {
		if c.Parcelas[i].Status == parcela.StatusPago {
			pagas++
		}
	}
	return pagas
}
