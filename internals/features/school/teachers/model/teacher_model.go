package model

type TeacherModel struct {
	ID            uint   `gorm:"column:id;primaryKey" json:"id"`
	Name          string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Designation   string `gorm:"column:designation;type:varchar(100)" json:"designation"`
	Subject       string `gorm:"column:subject;type:varchar(100)" json:"subject"`
	Qualification string `gorm:"column:qualification;type:varchar(255)" json:"qualification"`
	Phone         string `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Email         string `gorm:"column:email;type:varchar(255)" json:"email"`
	PhotoURL      string `gorm:"column:photo_url;type:text" json:"photoUrl"`
	// one of "pre-primary", "primary", "upper-primary"
	Section     string `gorm:"column:section;type:varchar(50)" json:"section"`
	JoiningYear int    `gorm:"column:joining_year" json:"joiningYear"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
