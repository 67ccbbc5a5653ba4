// internal/carne/service.go
package carne

import (
	"fmt"
	"strings"
	"time"

	"github.com/LojasRealce/api-carnes/internal/parcela"
	"github.com/google/uuid"
)

// Service é a máquina de estados do ciclo de vida dos carnês. Toda
// operação valida antes de mudar qualquer coisa, recalcula o status
// derivado ao final e persiste a coleção inteira antes de retornar.
// Assume um único ator: nenhuma trava interna.
type Service struct {
	Repo Repository

	// Agora fornece a data corrente; injetável nos testes.
	Agora func() time.Time
}

// NewService retorna um serviço usando o relógio do sistema.
func NewService(repo Repository) *Service {
	return &Service{Repo: repo, Agora: time.Now}
}

// Criar valida os dados, gera o cronograma completo e persiste o carnê novo.
func (s *Service) Criar(dto CriarCarneDTO) (*Carne, error) {
	if strings.TrimSpace(dto.Numero) == "" {
		return nil, fmt.Errorf("%w: número do talão é obrigatório", ErrValidacao)
	}
	if strings.TrimSpace(dto.Cliente) == "" {
		return nil, fmt.Errorf("%w: cliente é obrigatório", ErrValidacao)
	}
	if dto.DataEmissao.IsZero() {
		return nil, fmt.Errorf("%w: data de emissão é obrigatória", ErrValidacao)
	}
	if !LojaValida(dto.Loja) {
		return nil, fmt.Errorf("%w: loja desconhecida %q", ErrValidacao, dto.Loja)
	}

	parcelas, err := parcela.GerarParcelas(dto.DataEmissao, dto.QtdParcelas, dto.ValorParcela, dto.DiaVencimento)
	if err != nil {
		return nil, err
	}

	c := Carne{
		ID:            uuid.NewString(),
		Numero:        dto.Numero,
		DataEmissao:   dto.DataEmissao,
		Loja:          dto.Loja,
		Cliente:       dto.Cliente,
		QtdParcelas:   dto.QtdParcelas,
		ValorParcela:  dto.ValorParcela,
		DiaVencimento: dto.DiaVencimento,
		Status:        parcela.StatusPendente,
		Observacao:    dto.Observacao,
		Parcelas:      parcelas,
	}

	carnes, err := s.Repo.Carregar()
	if err != nil {
		return nil, err
	}
	carnes = append(carnes, c)
	if err := s.Repo.SalvarTodos(carnes); err != nil {
		return nil, err
	}
	return &carnes[len(carnes)-1], nil
}

// EditarCarne aplica o patch ao carnê inteiro. Um valor de parcela novo
// sobrescreve o valor de TODAS as parcelas, inclusive as já pagas — é a
// regra do negócio para renegociação de carnê; vencimentos e status não
// mudam.
func (s *Service) EditarCarne(id string, mudancas EdicaoCarne) (*Carne, error) {
	if mudancas.Cliente != nil && strings.TrimSpace(*mudancas.Cliente) == "" {
		return nil, fmt.Errorf("%w: cliente não pode ficar vazio", ErrValidacao)
	}
	if mudancas.ValorParcela != nil && *mudancas.ValorParcela <= 0 {
		return nil, fmt.Errorf("%w: valor da parcela deve ser maior que zero", ErrValidacao)
	}

	carnes, i, err := s.carregarEncontrando(id)
	if err != nil {
		return nil, err
	}
	c := &carnes[i]

	if mudancas.Cliente != nil {
		c.Cliente = *mudancas.Cliente
	}
	if mudancas.Observacao != nil {
		c.Observacao = *mudancas.Observacao
	}
	if mudancas.ValorParcela != nil {
		c.ValorParcela = *mudancas.ValorParcela
		for j := range c.Parcelas {
			c.Parcelas[j].Valor = *mudancas.ValorParcela
		}
	}

	atualizarStatus(c)
	if err := s.Repo.SalvarTodos(carnes); err != nil {
		return nil, err
	}
	return c, nil
}

// EditarParcela altera o valor de uma única parcela. O ValorParcela
// nominal do carnê e as demais parcelas ficam intactos.
func (s *Service) EditarParcela(id string, numero int, novoValor float64) (*Carne, error) {
	if novoValor <= 0 {
		return nil, fmt.Errorf("%w: valor da parcela deve ser maior que zero", ErrValidacao)
	}

	carnes, i, err := s.carregarEncontrando(id)
	if err != nil {
		return nil, err
	}
	c := &carnes[i]

	p, err := buscarParcela(c, numero)
	if err != nil {
		return nil, err
	}
	p.Valor = novoValor

	atualizarStatus(c)
	if err := s.Repo.SalvarTodos(carnes); err != nil {
		return nil, err
	}
	return c, nil
}

// PagarParcela registra o pagamento de uma parcela. Sem data informada,
// usa a data corrente. Pagar uma parcela já paga é permitido e apenas
// sobrescreve a data de pagamento — mesma regra da baixa manual no caixa.
func (s *Service) PagarParcela(id string, numero int, dataPagamento *time.Time) (*Carne, error) {
	quando, err := s.dataDePagamento(dataPagamento)
	if err != nil {
		return nil, err
	}

	carnes, i, err := s.carregarEncontrando(id)
	if err != nil {
		return nil, err
	}
	c := &carnes[i]

	p, err := buscarParcela(c, numero)
	if err != nil {
		return nil, err
	}
	p.Status = parcela.StatusPago
	p.DataPagamento = &quando

	atualizarStatus(c)
	if err := s.Repo.SalvarTodos(carnes); err != nil {
		return nil, err
	}
	return c, nil
}

// QuitarCarne paga todas as parcelas ainda pendentes com a mesma data.
// Sem pendências a chamada não muda nada, mas continua bem-sucedida.
func (s *Service) QuitarCarne(id string, dataPagamento *time.Time) (*Carne, error) {
	quando, err := s.dataDePagamento(dataPagamento)
	if err != nil {
		return nil, err
	}

	carnes, i, err := s.carregarEncontrando(id)
	if err != nil {
		return nil, err
	}
	c := &carnes[i]

	for j := range c.Parcelas {
		if c.Parcelas[j].Status != parcela.StatusPago {
			data := quando
			c.Parcelas[j].Status = parcela.StatusPago
			c.Parcelas[j].DataPagamento = &data
		}
	}

	atualizarStatus(c)
	if err := s.Repo.SalvarTodos(carnes); err != nil {
		return nil, err
	}
	return c, nil
}

// Excluir remove o carnê da coleção. ID desconhecido é erro, não no-op.
func (s *Service) Excluir(id string) error {
	carnes, i, err := s.carregarEncontrando(id)
	if err != nil {
		return err
	}
	carnes = append(carnes[:i], carnes[i+1:]...)
	return s.Repo.SalvarTodos(carnes)
}

// BuscarPorID retorna um carnê pelo identificador.
func (s *Service) BuscarPorID(id string) (*Carne, error) {
	carnes, i, err := s.carregarEncontrando(id)
	if err != nil {
		return nil, err
	}
	return &carnes[i], nil
}

// Listar carrega a coleção e aplica o filtro.
func (s *Service) Listar(f Filtro) ([]Carne, error) {
	carnes, err := s.Repo.Carregar()
	if err != nil {
		return nil, err
	}
	return Filtrar(carnes, f), nil
}

/* ============================== Internos ============================== */

func (s *Service) carregarEncontrando(id string) ([]Carne, int, error) {
	carnes, err := s.Repo.Carregar()
	if err != nil {
		return nil, 0, err
	}
	for i := range carnes {
		if carnes[i].ID == id {
			return carnes, i, nil
		}
	}
	return nil, 0, ErrNaoEncontrado
}

// dataDePagamento resolve a data efetiva e rejeita datas futuras
// (granularidade de dia): a data de pagamento nunca fica à frente do
// relógio no momento da baixa.
func (s *Service) dataDePagamento(informada *time.Time) (time.Time, error) {
	if informada == nil {
		return s.Agora(), nil
	}
	if inicioDoDia(*informada).After(inicioDoDia(s.Agora())) {
		return time.Time{}, fmt.Errorf("%w: data de pagamento não pode ser futura", ErrValidacao)
	}
	return *informada, nil
}

func buscarParcela(c *Carne, numero int) (*parcela.Parcela, error) {
	for i := range c.Parcelas {
		if c.Parcelas[i].Numero == numero {
			return &c.Parcelas[i], nil
		}
	}
	return nil, ErrParcelaNaoEncontrada
}

// atualizarStatus é o único ponto que grava o status derivado do carnê:
// Pago somente quando todas as parcelas estão pagas.
func atualizarStatus(c *Carne) {
	for i := range c.Parcelas {
		if c.Parcelas[i].Status != parcela.StatusPago {
			c.Status = parcela.StatusPendente
			return
		}
	}
	c.Status = parcela.StatusPago
}
