package domain

// Default billing values used when no rate config row exists yet.
const (
	DefaultHourlyRate       = 20.0
	DefaultFreeGraceMinutes = 0
	DefaultCurrency         = "PHP"
)

// Business validation constants
const (
	MinHourlyRate               = 0.0
	MaxHourlyRate               = 10000.0
	MinFreeGraceMinutes         = 0
	MaxFreeGraceMinutes         = 120
	MaxCustomerNameLength       = 120
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	TimestampFormat = "2006-01-02 15:04"
)

// InactiveStatuses список статусов, не участвующих в проверке конфликтов
var InactiveStatuses = []BookingStatus{
	StatusClosed,
	StatusCancelled,
}
