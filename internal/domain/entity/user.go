package entity

// User is a sales rep (or admin) account. Authentication itself lives on the
// identity provider; this row carries the app-side state, most importantly the
// UnidadeID that scopes every query the user can run.
type User struct {
	ID            int64      `gorm:"primaryKey"`
	SubUUID       string     `gorm:"not null;index"`
	UnidadeID     int64      `gorm:"not null;index"`
	Username      string     `gorm:"not null"`
	Email         string     `gorm:"not null"`
	EmailVerified bool       `gorm:"not null"`
	Permissions   Permission `gorm:"not null;type:bigint;default:0"`
	Active        bool       `gorm:"not null;default:true"`
	Suspended     bool       `gorm:"not null;default:false"`
	CreatedAt     int64      `gorm:"not null"`
	UpdatedAt     int64      `gorm:"not null;autoUpdateTime:false"`
}
