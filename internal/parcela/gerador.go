// internal/parcela/gerador.go
package parcela

import (
	"errors"
	"fmt"
	"time"
)

// ErrCronogramaInvalido indica parâmetros de geração fora do permitido.
var ErrCronogramaInvalido = errors.New("cronograma inválido")

// GerarParcelas monta o cronograma completo de um carnê novo: exatamente
// qtdParcelas entradas, numeradas de 1 a N, todas Pendentes, com valor
// uniforme e vencimentos mensais a partir do mês seguinte à emissão.
func GerarParcelas(dataEmissao time.Time, qtdParcelas int, valorParcela float64, diaVencimento int) ([]Parcela, error) {
	if qtdParcelas < 1 {
		return nil, fmt.Errorf("%w: quantidade de parcelas deve ser ao menos 1", ErrCronogramaInvalido)
	}
	if valorParcela <= 0 {
		return nil, fmt.Errorf("%w: valor da parcela deve ser maior que zero", ErrCronogramaInvalido)
	}
	if diaVencimento < 1 || diaVencimento > 31 {
		return nil, fmt.Errorf("%w: dia de vencimento deve estar entre 1 e 31", ErrCronogramaInvalido)
	}

	parcelas := make([]Parcela, 0, qtdParcelas)
	for i := 0; i < qtdParcelas; i++ {
		parcelas = append(parcelas, Parcela{
			Numero:         i + 1,
			DataVencimento: CalcularVencimento(dataEmissao, i, diaVencimento),
			Valor:          valorParcela,
			Status:         StatusPendente,
		})
	}
	return parcelas, nil
}
