package parcela

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGerarParcelasCronogramaCompleto(t *testing.T) {
	emissao := dia(2024, time.January, 10)

	parcelas, err := GerarParcelas(emissao, 3, 100.0, 5)
	require.NoError(t, err)
	require.Len(t, parcelas, 3)

	esperados := []time.Time{
		dia(2024, time.February, 5),
		dia(2024, time.March, 5),
		dia(2024, time.April, 5),
	}
	for i, p := range parcelas {
		require.Equal(t, i+1, p.Numero)
		require.Equal(t, esperados[i], p.DataVencimento)
		require.Equal(t, 100.0, p.Valor)
		require.Equal(t, StatusPendente, p.Status)
		require.Nil(t, p.DataPagamento)
	}
}

func TestGerarParcelasVencimentosCrescentes(t *testing.T) {
	parcelas, err := GerarParcelas(dia(2023, time.October, 31), 14, 59.9, 31)
	require.NoError(t, err)
	require.Len(t, parcelas, 14)

	for i := 1; i < len(parcelas); i++ {
		require.True(t, parcelas[i].DataVencimento.After(parcelas[i-1].DataVencimento),
			"parcela %d deveria vencer depois da %d", i+1, i)
	}
}

func TestGerarParcelasParametrosInvalidos(t *testing.T) {
	emissao := dia(2024, time.January, 10)

	casos := []struct {
		nome  string
		qtd   int
		valor float64
		dia   int
	}{
		{"quantidade zero", 0, 100, 5},
		{"quantidade negativa", -1, 100, 5},
		{"valor zero", 3, 0, 5},
		{"valor negativo", 3, -10, 5},
		{"dia zero", 3, 100, 0},
		{"dia 32", 3, 100, 32},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			_, err := GerarParcelas(emissao, c.qtd, c.valor, c.dia)
			require.ErrorIs(t, err, ErrCronogramaInvalido)
		})
	}
}
