package domain

type MeetingStatus string

const (
	MeetingPlanned   MeetingStatus = "Planlaşdırılıb"
	MeetingOngoing   MeetingStatus = "Davam edir"
	MeetingCompleted MeetingStatus = "Tamamlandı"
)

var MeetingStatuses = []MeetingStatus{MeetingPlanned, MeetingOngoing, MeetingCompleted}

func (s MeetingStatus) Valid() bool {
	for _, known := range MeetingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Meeting is a P&L review meeting with its decisions.
type Meeting struct {
	Record
	Topic        string        `json:"topic"`
	Date         string        `json:"date"`
	Status       MeetingStatus `json:"status"`
	Participants string        `json:"participants"`
	Decisions    string        `json:"decisions"`
	Notes        string        `json:"notes"`
}
