// internal/parcela/vencimento.go
package parcela

import "time"

// CalcularVencimento projeta a data de vencimento da parcela de índice
// `indice` (base 0). A primeira parcela nunca vence no mês da emissão:
// o vencimento cai em emissão + indice + 1 meses, no dia `diaVencimento`.
// Se o dia não existe no mês alvo (ex.: dia 31 em mês de 30), usa o
// último dia daquele mês. O chamador garante diaVencimento em [1,31].
func CalcularVencimento(dataEmissao time.Time, indice, diaVencimento int) time.Time {
	ano, mes, _ := dataEmissao.Date()

	// avança os meses manualmente: AddDate normalizaria dia 31 para o
	// mês seguinte em vez de truncar
	total := int(mes) + indice + 1
	ano += (total - 1) / 12
	mesAlvo := time.Month((total-1)%12 + 1)

	dia := diaVencimento
	if ultimo := ultimoDiaDoMes(ano, mesAlvo); dia > ultimo {
		dia = ultimo
	}
	return time.Date(ano, mesAlvo, dia, 0, 0, 0, 0, dataEmissao.Location())
}

// ultimoDiaDoMes retorna quantos dias tem o mês (fevereiro respeita ano bissexto).
func ultimoDiaDoMes(ano int, mes time.Month) int {
	return time.Date(ano, mes+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
