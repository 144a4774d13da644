package catalog

import "classroombooking/internal/domain"

type Timeslot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type ClassroomDetail struct {
	Classroom domain.Classroom `json:"classroom"`
	Date      string           `json:"date"`
	Timeslots []Timeslot       `json:"timeslots"`
}
