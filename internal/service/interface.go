package service

import (
	"context"

	"github.com/godilite/grade-calculator/internal/grading"
	"github.com/godilite/grade-calculator/internal/repository/models"
)

// GradeCalculator is satisfied by *grading.Calculator.
type GradeCalculator interface {
	Calculate(studentID string, evaluations []grading.Evaluation, attendance grading.AttendancePolicy, extraPoints grading.ExtraPointsPolicy) (grading.Result, error)
}

// ItemRepository defines the storage operations of the item catalogue.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (int64, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
}
