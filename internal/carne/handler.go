// internal/carne/handler.go
package carne

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/LojasRealce/api-carnes/internal/parcela"
	"github.com/gorilla/mux"
)

// Handler expõe o ciclo de vida dos carnês por HTTP.
type Handler struct {
	Service *Service
}

// NewHandler retorna um handler inicializado.
func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// DTO usado nos endpoints de pagamento; o corpo é opcional.
type pagamentoRequest struct {
	DataPagamento *time.Time `json:"dataPagamento"`
}

// DTO usado no PUT /carnes/{id}/parcelas/{numero}
type parcelaUpdateRequest struct {
	Valor float64 `json:"valor"`
}

/* ============================== Endpoints ============================== */

// POST /carnes
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var dto CriarCarneDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c, err := h.Service.Criar(dto)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /carnes?status=&loja=&cliente=&de=&ate=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	filtro, err := FiltroDaQuery(r.URL.Query())
	if err != nil {
		http.Error(w, "data inválida no filtro; use o formato 2006-01-02", http.StatusBadRequest)
		return
	}

	carnes, err := h.Service.Listar(filtro)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(carnes)
}

// GET /carnes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.BuscarPorID(mux.Vars(r)["id"])
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// GET /carnes/{id}/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.BuscarPorID(mux.Vars(r)["id"])
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(NovoResumo(c))
}

// PUT /carnes/{id}
func (h *Handler) Editar(w http.ResponseWriter, r *http.Request) {
	var mudancas EdicaoCarne
	if err := json.NewDecoder(r.Body).Decode(&mudancas); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c, err := h.Service.EditarCarne(mux.Vars(r)["id"], mudancas)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// PUT /carnes/{id}/parcelas/{numero}
func (h *Handler) EditarParcela(w http.ResponseWriter, r *http.Request) {
	numero, err := strconv.Atoi(mux.Vars(r)["numero"])
	if err != nil {
		http.Error(w, "número de parcela inválido", http.StatusBadRequest)
		return
	}

	var payload parcelaUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c, err := h.Service.EditarParcela(mux.Vars(r)["id"], numero, payload.Valor)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// POST /carnes/{id}/parcelas/{numero}/pagamento
func (h *Handler) PagarParcela(w http.ResponseWriter, r *http.Request) {
	numero, err := strconv.Atoi(mux.Vars(r)["numero"])
	if err != nil {
		http.Error(w, "número de parcela inválido", http.StatusBadRequest)
		return
	}

	payload, err := decodificarPagamento(r)
	if err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c, err := h.Service.PagarParcela(mux.Vars(r)["id"], numero, payload.DataPagamento)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// POST /carnes/{id}/pagamento
func (h *Handler) QuitarCarne(w http.ResponseWriter, r *http.Request) {
	payload, err := decodificarPagamento(r)
	if err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	c, err := h.Service.QuitarCarne(mux.Vars(r)["id"], payload.DataPagamento)
	if err != nil {
		responderErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// DELETE /carnes/{id}
func (h *Handler) Excluir(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Excluir(mux.Vars(r)["id"]); err != nil {
		responderErro(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

/* ============================== Utilidades ============================== */

// FiltroDaQuery converte os parâmetros de busca da URL no Filtro do domínio.
func FiltroDaQuery(q map[string][]string) (Filtro, error) {
	primeiro := func(chave string) string {
		if vs := q[chave]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}

	f := Filtro{
		Status:  primeiro("status"),
		Loja:    primeiro("loja"),
		Cliente: primeiro("cliente"),
	}
	if v := primeiro("de"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return Filtro{}, err
		}
		f.EmissaoDe = &t
	}
	if v := primeiro("ate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return Filtro{}, err
		}
		f.EmissaoAte = &t
	}
	return f, nil
}

func decodificarPagamento(r *http.Request) (pagamentoRequest, error) {
	var payload pagamentoRequest
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil && !errors.Is(err, io.EOF) {
		return pagamentoRequest{}, err
	}
	return payload, nil
}

func responderErro(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNaoEncontrado), errors.Is(err, ErrParcelaNaoEncontrada):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrValidacao), errors.Is(err, parcela.ErrCronogramaInvalido):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "erro ao acessar o armazenamento", http.StatusInternalServerError)
	}
}
