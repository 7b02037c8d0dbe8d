package get_seat_statuses

import "time"

// Request модель запроса статусов мест.
// At — момент, на который считаются статусы; nil = текущее время.
type Request struct {
	At *time.Time
}

// SeatStatus статус одного места на карте
type SeatStatus struct {
	SeatID string `json:"seat_id"`
	Label  string `json:"label"`
	Zone   string `json:"zone"`
	Status string `json:"status"`
}

// Response модель ответа со статусами всех мест.
// Места идут в порядке карты мест, AsOf — момент, от которого считались статусы.
type Response struct {
	LoungeName string       `json:"lounge_name"`
	AsOf       time.Time    `json:"as_of"`
	Seats      []SeatStatus `json:"seats"`
}
