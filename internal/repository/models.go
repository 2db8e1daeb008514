package repository

// User is a registered account. Email is the identity and is compared
// byte for byte.
type User struct {
	Name         string `json:"name" gorm:"type:varchar(255);not null"`
	Email        string `json:"email" gorm:"type:varchar(320);primaryKey"`
	PasswordHash string `json:"password" gorm:"not null"`
}
