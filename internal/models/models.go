package models

// GcdRequest представляет два числа из формы, для которых вычисляется НОД.
// Тег required для беззнаковых чисел означает «не ноль».
type GcdRequest struct {
	N uint64 `validate:"required"`
	M uint64 `validate:"required"`
}

// GcdResult содержит исходные числа и их наибольший общий делитель
type GcdResult struct {
	N      uint64
	M      uint64
	Result uint64
}
