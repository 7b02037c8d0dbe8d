package seatmap

import "github.com/JamesSerenio/metyme-booking-service/internal/domain"

// Seat одно бронируемое место из внешней карты мест
type Seat struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Zone  string `json:"zone"` // "common" | "room"
}

// SeatMap карта мест лаунжа
type SeatMap struct {
	LoungeName string `json:"lounge_name"`
	Seats      []Seat `json:"seats"`
}

// SeatIDs возвращает идентификаторы всех мест в порядке карты
func (m *SeatMap) SeatIDs() []domain.SeatID {
	ids := make([]domain.SeatID, len(m.Seats))
	for i, s := range m.Seats {
		ids[i] = domain.SeatID(s.ID)
	}
	return ids
}

// Contains проверяет, что место есть на карте
func (m *SeatMap) Contains(id domain.SeatID) bool {
	for _, s := range m.Seats {
		if domain.SeatID(s.ID) == id {
			return true
		}
	}
	return false
}
