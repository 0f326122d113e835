package get_booked_dates

// Request модель запроса занятых дат
type Request struct {
	ScopeMonths int      // Горизонт в месяцах от текущей даты
	PetWeight   *float64 // Вес питомца (опционально, для правила выходных)
	BreedType   *int     // Категория породы (опционально, для правила выходных)
}

// BookedDate занятые времена одной даты
type BookedDate struct {
	Date        string   // YYYY-MM-DD
	Times       []string // Занятые времена "HH:MM", отсортированы
	FullyBooked bool     // Достигнут ли порог полной загрузки дня
}

// Response модель ответа с расписанием занятости
type Response struct {
	ScopeMonths int
	Dates       []BookedDate // Даты с хотя бы одним занятым слотом
	FullyBooked []string     // Полностью занятые даты

	// WeekendOnly true, когда питомец записывается только на выходные
	WeekendOnly bool
}
