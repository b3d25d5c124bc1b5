package model

import "time"

type StudentModel struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	RollNumber    string    `gorm:"column:roll_number;type:varchar(50);uniqueIndex;not null" json:"rollNumber"`
	FirstName     string    `gorm:"column:first_name;type:varchar(100);not null" json:"firstName"`
	LastName      string    `gorm:"column:last_name;type:varchar(100);not null" json:"lastName"`
	DateOfBirth   time.Time `gorm:"column:date_of_birth;type:date;not null" json:"dateOfBirth"`
	Gender        string    `gorm:"column:gender;type:varchar(20)" json:"gender"`
	Email         string    `gorm:"column:email;type:varchar(255)" json:"email"`
	Phone         string    `gorm:"column:phone;type:varchar(50)" json:"phone"`
	Address       string    `gorm:"column:address;type:text" json:"address"`
	ClassName     string    `gorm:"column:class_name;type:varchar(50)" json:"className"`
	Section       string    `gorm:"column:section;type:varchar(50)" json:"section"`
	GuardianName  string    `gorm:"column:guardian_name;type:varchar(255)" json:"guardianName"`
	GuardianPhone string    `gorm:"column:guardian_phone;type:varchar(50)" json:"guardianPhone"`
	AdmissionYear int       `gorm:"column:admission_year" json:"admissionYear"`
}

func (StudentModel) TableName() string {
	return "students"
}
