package client

type Status string

const (
	StatusNew         Status = "new"
	StatusNegotiating Status = "negotiating"
	StatusBooked      Status = "booked"
	StatusLost        Status = "lost"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusNegotiating, StatusBooked, StatusLost:
		return true
	}
	return false
}
