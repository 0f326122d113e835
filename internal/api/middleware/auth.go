package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/easerve/Grooming-BookingService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет токен персонала в заголовке X-Admin-Token
// Используется для админских операций: управление статусами бронирований,
// дополнительными слотами и выгрузкой
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "требуется токен персонала")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
