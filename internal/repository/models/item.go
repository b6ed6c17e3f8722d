package models

type Item struct {
	ID          int64
	Name        string
	Price       float64
	Description *string
}
