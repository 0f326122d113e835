package get_day_slots

// Request модель запроса свободных слотов на дату
type Request struct {
	Date      string   // YYYY-MM-DD
	PetWeight *float64 // Вес питомца (опционально, для правила выходных)
	BreedType *int     // Категория породы (опционально, для правила выходных)
}

// Response модель ответа со свободными слотами
type Response struct {
	Date        string
	FreeSlots   []string // Свободные времена "HH:MM", отсортированы
	FullyBooked bool     // true, когда свободных слотов не осталось
}
