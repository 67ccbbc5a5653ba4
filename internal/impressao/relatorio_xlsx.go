// internal/impressao/relatorio_xlsx.go
package impressao

import (
	"bytes"
	"fmt"

	"github.com/LojasRealce/api-carnes/internal/carne"
	"github.com/xuri/excelize/v2"
)

// GerarRelatorioXLSX monta a planilha de listagem de carnês, uma linha
// por carnê, com as mesmas colunas da listagem em tela.
func GerarRelatorioXLSX(carnes []carne.Carne) ([]byte, error) {
	f := excelize.NewFile()
	aba := "carnes"
	f.SetSheetName("Sheet1", aba)

	cabecalho := []string{"Talão", "Emissão", "Cliente", "Loja", "Pagas", "Valor Parcela", "Status"}
	for i, titulo := range cabecalho {
		celula, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(aba, celula, titulo); err != nil {
			return nil, err
		}
	}

	for linha := range carnes {
		c := &carnes[linha]
		valores := []interface{}{
			c.Numero,
			c.DataEmissao.Format("02/01/2006"),
			c.Cliente,
			c.Loja,
			fmt.Sprintf("%d de %d", carne.ParcelasPagas(c), c.QtdParcelas),
			c.ValorParcela,
			c.Status,
		}
		for col, v := range valores {
			celula, err := excelize.CoordinatesToCellName(col+1, linha+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(aba, celula, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
