// internal/usuario/repository.go
package usuario

import "gorm.io/gorm"

// Repository encapsula o acesso a dados de usuários.
type Repository struct{}

// NewRepository instancia um novo repositório.
func NewRepository() Repository {
	return Repository{}
}

// BuscarPorLogin busca um usuário pelo login.
func (Repository) BuscarPorLogin(db *gorm.DB, login string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Salvar persiste um usuário novo ou existente.
func (Repository) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}
