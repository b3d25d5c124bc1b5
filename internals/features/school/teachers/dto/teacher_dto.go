package dto

import "school_backend/internals/features/school/teachers/model"

type TeacherDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Designation   string `json:"designation"`
	Subject       string `json:"subject"`
	Qualification string `json:"qualification"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photoUrl"`
	Section       string `json:"section"`
	JoiningYear   int    `json:"joiningYear"`
}

type SaveTeacherRequest struct {
	Name          string `json:"name" validate:"required"`
	Designation   string `json:"designation"`
	Subject       string `json:"subject"`
	Qualification string `json:"qualification"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	PhotoURL      string `json:"photoUrl"`
	Section       string `json:"section" validate:"omitempty,oneof=pre-primary primary upper-primary"`
	JoiningYear   int    `json:"joiningYear"`
}

func ToTeacherDTO(m model.TeacherModel) TeacherDTO {
	return TeacherDTO{
		ID:            m.ID,
		Name:          m.Name,
		Designation:   m.Designation,
		Subject:       m.Subject,
		Qualification: m.Qualification,
		Phone:         m.Phone,
		Email:         m.Email,
		PhotoURL:      m.PhotoURL,
		Section:       m.Section,
		JoiningYear:   m.JoiningYear,
	}
}

func ToTeacherDTOs(ms []model.TeacherModel) []TeacherDTO {
	out := make([]TeacherDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToTeacherDTO(m))
	}
	return out
}
