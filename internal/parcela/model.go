// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de uma parcela (e, por derivação, de um carnê).
const (
	StatusPendente = "Pendente"
	StatusPago     = "Pago"
)

// Parcela representa uma única parcela de um carnê. Parcelas não têm
// identidade fora do carnê que as possui; são acessadas sempre pelo Numero.
type Parcela struct {
	ID             uint       `gorm:"primaryKey" json:"-"`
	CarneID        string     `gorm:"size:36;not null;index" json:"-"`
	Numero         int        `gorm:"not null" json:"numero"`
	DataVencimento time.Time  `gorm:"not null" json:"dataVencimento"`
	Valor          float64    `gorm:"not null" json:"valor"`
	Status         string     `gorm:"size:50;not null;default:'Pendente'" json:"status"`
	DataPagamento  *time.Time `json:"dataPagamento,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
