package impressao

import (
	"bytes"
	"testing"
	"time"

	"github.com/LojasRealce/api-carnes/internal/carne"
	"github.com/LojasRealce/api-carnes/internal/parcela"
	"github.com/stretchr/testify/require"
)

func carneDeTeste() carne.Carne {
	pago := time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)
	return carne.Carne{
		ID:            "c1",
		Numero:        "T-0001",
		DataEmissao:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		Loja:          carne.Loja2,
		Cliente:       "Maria da Silva",
		QtdParcelas:   2,
		ValorParcela:  100,
		DiaVencimento: 5,
		Status:        parcela.StatusPendente,
		Observacao:    "entrada paga no caixa",
		Parcelas: []parcela.Parcela{
			{Numero: 1, DataVencimento: time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC), Valor: 100, Status: parcela.StatusPago, DataPagamento: &pago},
			{Numero: 2, DataVencimento: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), Valor: 100, Status: parcela.StatusPendente},
		},
	}
}

func TestGerarPDFCarneCompleto(t *testing.T) {
	c := carneDeTeste()
	pdf, err := GerarPDF(&c, 0)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestGerarPDFParcelaUnica(t *testing.T) {
	c := carneDeTeste()
	pdf, err := GerarPDF(&c, 2)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
}

func TestGerarPDFParcelaInexistente(t *testing.T) {
	c := carneDeTeste()
	_, err := GerarPDF(&c, 5)
	require.ErrorIs(t, err, carne.ErrParcelaNaoEncontrada)
}

func TestGerarRelatorioXLSX(t *testing.T) {
	planilha, err := GerarRelatorioXLSX([]carne.Carne{carneDeTeste()})
	require.NoError(t, err)
	require.NotEmpty(t, planilha)
}
