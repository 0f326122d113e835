package quote_price

// Request модель запроса расчета цены
type Request struct {
	ServiceID            int64
	OptionIDs            []int64
	AdditionalServiceIDs []int64
	PetWeight            float64
}

// Response модель ответа с расчетом цены
type Response struct {
	ServiceID   int64
	ServiceName string

	// Диапазон цены основной услуги с опциями
	// Min равен Max, когда не выбрано опций с рыночной ценой
	PriceMin int
	PriceMax int

	// Display диапазон в виде строки: "55000" или "55000~65000"
	Display string

	// AdditionalTotal суммарная цена дополнительных услуг
	AdditionalTotal int
}
