// internal/carne/model.go
package carne

import (
	"time"

	"github.com/LojasRealce/api-carnes/internal/parcela"
	"gorm.io/gorm"
)

// Lojas emissoras de carnê. Conjunto fechado.
const (
	Loja2 = "Loja 2"
	Loja3 = "Loja 3"
	Loja4 = "Loja 4"
)

// LojaValida informa se o identificador pertence ao conjunto de lojas.
func LojaValida(loja string) bool {
	switch loja {
	case Loja2, Loja3, Loja4:
		return true
	}
	return false
}

// Carne representa um carnê de pagamento: uma emissão, N parcelas mensais.
// Status é sempre derivado das parcelas (Pago somente quando todas estão
// pagas); nenhuma operação o grava de forma independente.
type Carne struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Numero        string    `gorm:"size:50;not null" json:"numero"`
	DataEmissao   time.Time `gorm:"not null" json:"dataEmissao"`
	Loja          string    `gorm:"size:50;not null;index" json:"loja"`
	Cliente       string    `gorm:"size:255;not null" json:"cliente"`
	QtdParcelas   int       `gorm:"not null" json:"qtdParcelas"`
	ValorParcela  float64   `gorm:"not null" json:"valorParcela"`
	DiaVencimento int       `gorm:"not null" json:"diaVencimento"`
	Status        string    `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	Observacao    string    `json:"observacao,omitempty"`

	// Parcelas geradas na criação, ordenadas por Numero; o tamanho nunca
	// muda durante a vida do carnê.
	Parcelas []parcela.Parcela `gorm:"foreignKey:CarneID;constraint:OnDelete:CASCADE" json:"parcelas"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados e aplica relacionamentos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Carne{})
}
