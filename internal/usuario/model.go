// internal/usuario/model.go
package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é um operador do sistema de carnês (caixa ou gerente de loja).
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:255;not null" json:"nome"`
	Login     string    `gorm:"size:100;not null;uniqueIndex" json:"login"`
	Senha     string    `gorm:"size:255;not null" json:"-"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
