package carne

import (
	"testing"
	"time"

	"github.com/LojasRealce/api-carnes/internal/parcela"
	"github.com/stretchr/testify/require"
)

func carneComParcelas() Carne {
	pago := dia(2024, time.February, 3)
	return Carne{
		ID:          "c1",
		QtdParcelas: 3,
		Parcelas: []parcela.Parcela{
			{Numero: 1, DataVencimento: dia(2024, time.February, 5), Valor: 100, Status: parcela.StatusPago, DataPagamento: &pago},
			{Numero: 2, DataVencimento: dia(2024, time.March, 5), Valor: 120, Status: parcela.StatusPendente},
			{Numero: 3, DataVencimento: dia(2024, time.April, 5), Valor: 100, Status: parcela.StatusPendente},
		},
	}
}

func TestValorTotalSomaTodasAsParcelas(t *testing.T) {
	c := carneComParcelas()
	require.Equal(t, 320.0, ValorTotal(&c))
}

func TestValorRestanteSomaSoAsPendentes(t *testing.T) {
	c := carneComParcelas()
	require.Equal(t, 220.0, ValorRestante(&c))
}

func TestProximoVencimentoMenorDataPendente(t *testing.T) {
	c := carneComParcelas()
	require.Equal(t, dia(2024, time.March, 5), *ProximoVencimento(&c))
}

func TestProximoVencimentoNilQuandoTudoPago(t *testing.T) {
	pago := dia(2024, time.May, 1)
	c := carneComParcelas()
	for i := range c.Parcelas {
		c.Parcelas[i].Status = parcela.StatusPago
		c.Parcelas[i].DataPagamento = &pago
	}
	require.Nil(t, ProximoVencimento(&c))
}

func TestParcelasPagas(t *testing.T) {
	c := carneComParcelas()
	require.Equal(t, 1, ParcelasPagas(&c))
}

func TestNovoResumo(t *testing.T) {
	c := carneComParcelas()
	c.Numero = "T-c1"
	c.Cliente = "Ana"
	c.Loja = Loja4
	c.Status = parcela.StatusPendente

	resumo := NovoResumo(&c)
	require.Equal(t, "c1", resumo.ID)
	require.Equal(t, 3, resumo.QtdParcelas)
	require.Equal(t, 1, resumo.ParcelasPagas)
	require.Equal(t, 320.0, resumo.ValorTotal)
	require.Equal(t, 220.0, resumo.ValorRestante)
	require.Equal(t, dia(2024, time.March, 5), *resumo.ProximoVencimento)
}
