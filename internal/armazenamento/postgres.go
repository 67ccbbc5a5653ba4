// internal/armazenamento/postgres.go
package armazenamento

import (
	"github.com/LojasRealce/api-carnes/internal/carne"
	"github.com/LojasRealce/api-carnes/internal/parcela"
	"gorm.io/gorm"
)

// Postgres implementa carne.Repository sobre o banco relacional. O
// contrato é o de um blob de coleção: Carregar lê tudo, SalvarTodos
// grava a coleção inteira de volta numa única transação.
type Postgres struct {
	DB *gorm.DB
}

// NewPostgres instancia o repositório.
func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{DB: db}
}

// Carregar lê todos os carnês com suas parcelas ordenadas por número.
func (r *Postgres) Carregar() ([]carne.Carne, error) {
	var carnes []carne.Carne
	err := r.DB.
		Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
			return db.Order("numero ASC")
		}).
		Order("created_at ASC").
		Find(&carnes).Error
	if err != nil {
		return nil, err
	}
	return carnes, nil
}

// SalvarTodos substitui o estado persistido pelo estado em memória:
// remove carnês ausentes da coleção e regrava os demais com suas
// parcelas. Não há persistência incremental.
func (r *Postgres) SalvarTodos(carnes []carne.Carne) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if len(carnes) == 0 {
			return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
				Delete(&carne.Carne{}).Error
		}

		ids := make([]string, 0, len(carnes))
		for i := range carnes {
			ids = append(ids, carnes[i].ID)
		}
		if err := tx.Where("id NOT IN ?", ids).Delete(&carne.Carne{}).Error; err != nil {
			return err
		}

		for i := range carnes {
			c := carnes[i]
			// regrava as parcelas para refletir exatamente o estado em memória
			if err := tx.Where("carne_id = ?", c.ID).Delete(&parcela.Parcela{}).Error; err != nil {
				return err
			}
			for j := range c.Parcelas {
				c.Parcelas[j].ID = 0
				c.Parcelas[j].CarneID = c.ID
			}
			if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&c).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
