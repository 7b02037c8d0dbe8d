// Package middleware содержит HTTP middleware: авторизация персонала и метрики
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/JamesSerenio/metyme-booking-service/internal/api/handlers"
)

const msgMissingStaffID = "требуется заголовок X-Staff-ID"

type contextKey string

const staffIDKey contextKey = "staffID"

// Auth проверяет заголовок X-Staff-ID и кладёт ID сотрудника в контекст.
// Аутентификацию выполняет шлюз выше по цепочке, здесь только идентификация.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-Staff-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || staffID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffIDFromContext извлекает ID сотрудника, положенный Auth middleware
func StaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey).(int64)
	return id, ok
}
