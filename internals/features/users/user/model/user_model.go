package model

type UserModel struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Username string `gorm:"column:username;type:varchar(100);uniqueIndex;not null" json:"username"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Email    string `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	FullName string `gorm:"column:full_name;type:varchar(255)" json:"fullName"`
	Role     string `gorm:"column:role;type:varchar(50);not null" json:"role"`
}

func (UserModel) TableName() string {
	return "users"
}
