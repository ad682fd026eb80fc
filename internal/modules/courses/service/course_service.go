package service

import (
	"context"
	"fmt"

	"trak/internal/modules/courses/domain"
	coursesout "trak/internal/modules/courses/port/out"
	apperrors "trak/internal/platform/errors"
)

type CourseService struct {
	api coursesout.CourseAPI
}

func NewCourseService(api coursesout.CourseAPI) *CourseService {
	return &CourseService{api: api}
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.api.List(ctx)
}

// Create parses the raw entry and submits the whole batch in one write.
// Input that yields no names is rejected before any network call.
func (s *CourseService) Create(ctx context.Context, raw string) ([]domain.Course, error) {
	names := domain.ParseNames(raw)
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: at least one course name is required", apperrors.ErrInvalidInput)
	}
	return s.api.Create(ctx, names)
}
