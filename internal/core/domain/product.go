package domain

type Product struct {
	ID          uint64
	Name        string
	Price       int64 // minor units
	Stock       int64
	WeightGrams int64
}
