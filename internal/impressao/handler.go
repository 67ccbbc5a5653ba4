// internal/impressao/handler.go
package impressao

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/LojasRealce/api-carnes/internal/carne"
	"github.com/gorilla/mux"
)

// Handler expõe a impressão de carnês e o relatório de listagem.
type Handler struct {
	Service *carne.Service
}

// NewHandler retorna um handler inicializado.
func NewHandler(service *carne.Service) *Handler {
	return &Handler{Service: service}
}

// GET /carnes/{id}/impressao?parcela=N
func (h *Handler) ImprimirCarne(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.BuscarPorID(mux.Vars(r)["id"])
	if err != nil {
		responderErro(w, err)
		return
	}

	numeroParcela := 0
	if v := r.URL.Query().Get("parcela"); v != "" {
		numeroParcela, err = strconv.Atoi(v)
		if err != nil {
			http.Error(w, "número de parcela inválido", http.StatusBadRequest)
			return
		}
	}

	pdf, err := GerarPDF(c, numeroParcela)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="carne.pdf"`)
	_, _ = w.Write(pdf)
}

// GET /carnes/relatorio — aceita os mesmos filtros da listagem
func (h *Handler) Relatorio(w http.ResponseWriter, r *http.Request) {
	filtro, err := carne.FiltroDaQuery(r.URL.Query())
	if err != nil {
		http.Error(w, "data inválida no filtro; use o formato 2006-01-02", http.StatusBadRequest)
		return
	}

	carnes, err := h.Service.Listar(filtro)
	if err != nil {
		responderErro(w, err)
		return
	}

	planilha, err := GerarRelatorioXLSX(carnes)
	if err != nil {
		http.Error(w, "erro ao gerar relatório", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="carnes.xlsx"`)
	_, _ = w.Write(planilha)
}

func responderErro(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, carne.ErrNaoEncontrado), errors.Is(err, carne.ErrParcelaNaoEncontrada):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "erro ao acessar o armazenamento", http.StatusInternalServerError)
	}
}
