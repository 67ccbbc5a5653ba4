package carne

import "errors"

// Erros de domínio. Falhas de armazenamento não têm sentinela própria:
// o erro do repositório sobe inalterado até o chamador.
var (
	ErrValidacao            = errors.New("dados inválidos")
	ErrNaoEncontrado        = errors.New("carnê não encontrado")
	ErrParcelaNaoEncontrada = errors.New("parcela não encontrada")
)
