package service

import (
	"context"
	"fmt"

	studylogout "trak/internal/modules/studylog/port/out"
	apperrors "trak/internal/platform/errors"
)

type StudyLogService struct {
	api studylogout.LogAPI
}

func NewStudyLogService(api studylogout.LogAPI) *StudyLogService {
	return &StudyLogService{api: api}
}

// Save rejects an empty course list locally; the API is never called with
// nothing to log.
func (s *StudyLogService) Save(ctx context.Context, courseNames []string) error {
	if len(courseNames) == 0 {
		return fmt.Errorf("%w: select at least one course to log", apperrors.ErrInvalidInput)
	}
	return s.api.Save(ctx, courseNames)
}
