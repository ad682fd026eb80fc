package in

import (
	"context"

	"trak/internal/modules/courses/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.CourseOutput, error)
	Add(ctx context.Context, input dto.AddInput) (dto.AddOutput, error)
}
