package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

type ClientInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
	Notes    string `json:"notes"`
}

type ClientListDTO struct {
	models.Client

	PhoneFormatted    string `json:"phoneFormatted"`
	BirthdayFormatted string `json:"birthdayFormatted"`

	BirthdayKnown    bool `json:"birthdayKnown"`
	BirthdayToday    bool `json:"birthdayToday"`
	BirthdayPassed   bool `json:"birthdayPassed"`
	BirthdaySoon     bool `json:"birthdaySoon"`
	BirthdayDaysLeft int  `json:"birthdayDaysLeft,omitempty"`
}

type NoteInput struct {
	Text string `json:"text"`
}
