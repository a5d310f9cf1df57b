package models

type Profile struct {
	UserID   uint   `gorm:"primaryKey" json:"user_id"`
	Bio      string `gorm:"type:text" json:"bio"`
	Phone    string `gorm:"size:50" json:"phone"`
	Location string `gorm:"size:255" json:"location"`
	Website  string `gorm:"size:255" json:"website"`
}

func (Profile) TableName() string { return "profiles" }
