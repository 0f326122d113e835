package create_reservation

import (
	"time"

	"github.com/easerve/Grooming-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	PetID                string           // uuid питомца
	Date                 string           // YYYY-MM-DD
	Time                 types.TimeString // Время слота, например "10:00"
	ServiceID            int64            // ID основной услуги
	OptionIDs            []int64          // Выбранные опции услуги
	AdditionalServiceIDs []int64          // Дополнительные услуги
	Memo                 *string          // Обращение клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID     int64
	PetID  string
	Date   string
	Time   types.TimeString
	Status string

	// Денормализованные данные
	ServiceName        string
	AdditionalServices *string
	TotalPrice         int
	AdditionalPrice    int

	CreatedAt time.Time
}
