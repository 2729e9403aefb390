package model

// Usuario stores system users.
// Rol: "manager" (default) | "administrator"
//
// Password is stored in plaintext. This mirrors the legacy desktop store and is
// a documented weakness; hashing would break verification against existing
// database files.
type Usuario struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Rol      string `gorm:"type:varchar(20);not null;default:'manager';column:role"`
}

func (Usuario) TableName() string { return "users" }
