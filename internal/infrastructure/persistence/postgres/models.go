package postgres

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string     `gorm:"type:varchar(500);not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(50);not null;index"`
	Status       string     `gorm:"type:varchar(50);not null;default:ACTIVE"`
	IsFrozen     bool       `gorm:"not null;default:false"`
	FrozenReason *string    `gorm:"type:varchar(500)"`
	AgencyID     *int64     `gorm:"index"`
	CompanyID    *int64     `gorm:"index"`
	OwnerID      *int64     `gorm:"index"`
	CreatedBy    *int64     `gorm:"index"`
	Phone        *string    `gorm:"type:varchar(30)"`
	Document     *string    `gorm:"type:varchar(20)"`
	BirthDate    *time.Time `gorm:"type:date"`
	Address      *string    `gorm:"type:varchar(500)"`
	CEP          *string    `gorm:"column:cep;type:varchar(10)"`
	Neighborhood *string    `gorm:"type:varchar(200)"`
	City         *string    `gorm:"type:varchar(200)"`
	State        *string    `gorm:"type:varchar(2)"`
	CreatedAt    int64      `gorm:"autoCreateTime;index"`
	UpdatedAt    int64      `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// AgencyModel é o model GORM para imobiliárias
type AgencyModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(500);not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (AgencyModel) TableName() string {
	return "agencies"
}

// CompanyModel é o model GORM para grupos empresariais
type CompanyModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(500);not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

// SettingModel é o model GORM para configurações chave/valor.
// A tabela é criada por migração própria e pode não existir ainda;
// o repositório trata essa ausência como condição recuperável.
type SettingModel struct {
	Key         string  `gorm:"primaryKey;type:varchar(255)"`
	Value       string  `gorm:"type:text;not null"`
	Description *string `gorm:"type:varchar(500)"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
}

func (SettingModel) TableName() string {
	return "settings"
}
