package entity

// Contato is a named person inside an establishment (vet, receptionist, owner).
type Contato struct {
	ID                int64 `gorm:"primaryKey"`
	EstabelecimentoID int64 `gorm:"not null;index"`
	UnidadeID         int64 `gorm:"not null;index"`

	Nome        string `gorm:"not null"`
	Cargo       string
	Telefone    string
	Email       string
	Observacoes string

	CreatedAt int64 `gorm:"not null"`
}
