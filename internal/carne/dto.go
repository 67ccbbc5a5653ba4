package carne

import "time"

// CriarCarneDTO é o payload de cadastro de um carnê novo.
type CriarCarneDTO struct {
	Numero        string    `json:"numero"`
	DataEmissao   time.Time `json:"dataEmissao"`
	Loja          string    `json:"loja"`
	Cliente       string    `json:"cliente"`
	QtdParcelas   int       `json:"qtdParcelas"`
	ValorParcela  float64   `json:"valorParcela"`
	DiaVencimento int       `json:"diaVencimento"`
	Observacao    string    `json:"observacao"`
}

// EdicaoCarne é o patch da edição completa. Campo nil significa "não
// informado"; assim dá para limpar a observação com string vazia sem
// confundir com ausência do campo.
type EdicaoCarne struct {
	Cliente      *string  `json:"cliente"`
	Observacao   *string  `json:"observacao"`
	ValorParcela *float64 `json:"valorParcela"`
}

// ResumoCarneDTO agrega os totais derivados usados pela listagem e pelos
// relatórios.
type ResumoCarneDTO struct {
	ID                string     `json:"id"`
	Numero            string     `json:"numero"`
	Cliente           string     `json:"cliente"`
	Loja              string     `json:"loja"`
	Status            string     `json:"status"`
	QtdParcelas       int        `json:"qtdParcelas"`
	ParcelasPagas     int        `json:"parcelasPagas"`
	ValorTotal        float64    `json:"valorTotal"`
	ValorRestante     float64    `json:"valorRestante"`
	ProximoVencimento *time.Time `json:"proximoVencimento,omitempty"`
}

// NovoResumo monta o resumo de um carnê.
func NovoResumo(c *Carne) ResumoCarneDTO {
	return ResumoCarneDTO{
		ID:                c.ID,
		Numero:            c.Numero,
		Cliente:           c.Cliente,
		Loja:              c.Loja,
		Status:            c.Status,
		QtdParcelas:       c.QtdParcelas,
		ParcelasPagas:     ParcelasPagas(c),
		ValorTotal:        ValorTotal(c),
		ValorRestante:     ValorRestante(c),
		ProximoVencimento: ProximoVencimento(c),
	}
}
