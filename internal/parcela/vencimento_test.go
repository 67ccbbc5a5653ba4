package parcela

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestCalcularVencimentoMesSeguinte(t *testing.T) {
	// primeira parcela nunca vence no mês da emissão
	venc := CalcularVencimento(dia(2024, time.January, 10), 0, 5)
	require.Equal(t, dia(2024, time.February, 5), venc)
}

func TestCalcularVencimentoTruncaFevereiroBissexto(t *testing.T) {
	venc := CalcularVencimento(dia(2024, time.January, 15), 0, 31)
	require.Equal(t, dia(2024, time.February, 29), venc)
}

func TestCalcularVencimentoTruncaFevereiroComum(t *testing.T) {
	venc := CalcularVencimento(dia(2023, time.January, 15), 0, 31)
	require.Equal(t, dia(2023, time.February, 28), venc)
}

func TestCalcularVencimentoTruncaMesDe30Dias(t *testing.T) {
	// dia 31 em abril cai no dia 30
	venc := CalcularVencimento(dia(2024, time.March, 1), 0, 31)
	require.Equal(t, dia(2024, time.April, 30), venc)
}

func TestCalcularVencimentoViraOAno(t *testing.T) {
	venc := CalcularVencimento(dia(2024, time.November, 20), 1, 15)
	require.Equal(t, dia(2025, time.January, 15), venc)

	venc = CalcularVencimento(dia(2024, time.December, 2), 0, 10)
	require.Equal(t, dia(2025, time.January, 10), venc)
}

func TestCalcularVencimentoNaoNormalizaParaOMesSeguinte(t *testing.T) {
	// emissão no fim de janeiro não pode empurrar a parcela para março
	venc := CalcularVencimento(dia(2023, time.January, 31), 0, 30)
	require.Equal(t, dia(2023, time.February, 28), venc)
}
