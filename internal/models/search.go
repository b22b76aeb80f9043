package models

// Параметры поиска по витрине фотографов. Все фильтры опциональны
// и комбинируются через AND.
type SearchPhotographersCriteria struct {
	Niche     string // подстрока имени ниши, без учета регистра
	MaxPrice  *int   // включительная верхняя граница price_per_hour
	Languages string // подстрока имени любого из языков, без учета регистра
}

// Ключи сортировки витрины. Неизвестное значение молча дает порядок
// вставки - это намеренно мягкая политика, не ошибка.
const (
	SortPriceAsc  = "ph-asc"
	SortPriceDesc = "ph-desc"
	SortNameAsc   = "first_name-asc"
	SortNameDesc  = "first_name-desc"
)
