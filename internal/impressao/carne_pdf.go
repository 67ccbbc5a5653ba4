// internal/impressao/carne_pdf.go
package impressao

import (
	"bytes"
	"fmt"

	"github.com/LojasRealce/api-carnes/internal/carne"
	"github.com/LojasRealce/api-carnes/internal/parcela"
	"github.com/jung-kurt/gofpdf"
)

// GerarPDF monta o documento imprimível do carnê: um bloco por parcela,
// no layout do talão físico. numeroParcela 0 imprime o carnê inteiro;
// qualquer outro valor imprime só aquela parcela.
func GerarPDF(c *carne.Carne, numeroParcela int) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Carnê de Pagamento", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Talão: %s    Emissão: %s", c.Numero, c.DataEmissao.Format("02/01/2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	impressas := 0
	for i := range c.Parcelas {
		p := &c.Parcelas[i]
		if numeroParcela != 0 && p.Numero != numeroParcela {
			continue
		}
		blocoParcela(pdf, c, p)
		impressas++
	}
	if impressas == 0 {
		return nil, carne.ErrParcelaNaoEncontrada
	}

	if c.Observacao != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("Obs.: %s", c.Observacao), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blocoParcela(pdf *gofpdf.Fpdf, c *carne.Carne, p *parcela.Parcela) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Parcela %d de %d", p.Numero, c.QtdParcelas), "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Cliente: %s", c.Cliente), "LR", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Loja: %s", c.Loja), "R", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Valor: R$ %.2f", p.Valor), "LR", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Vencimento: %s", p.DataVencimento.Format("02/01/2006")), "R", 1, "L", false, 0, "")

	status := p.Status
	if p.DataPagamento != nil {
		status = fmt.Sprintf("%s (Pago em: %s)", p.Status, p.DataPagamento.Format("02/01/2006"))
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", status), "LRB", 1, "L", false, 0, "")
	pdf.Ln(4)
}
