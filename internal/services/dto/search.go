package dto

// Поисковые параметры приходят query-строкой; max_price валидируется
// на уровне хендлера (нечисловое значение - это 400, а не пустая выдача).
type SearchPhotographersQuery struct {
	Niche     string `form:"niche"`
	MaxPrice  string `form:"max_price"`
	Languages string `form:"languages"`
}

type ListPhotographersQuery struct {
	Sorting string `form:"sorting"`
}
