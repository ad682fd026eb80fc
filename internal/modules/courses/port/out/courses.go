package out

import (
	"context"

	"trak/internal/modules/courses/domain"
)

type CourseAPI interface {
	List(ctx context.Context) ([]domain.Course, error)
	Create(ctx context.Context, names []string) ([]domain.Course, error)
}
