package in

import (
	"context"

	coursesdto "trak/internal/modules/courses/dto"
	coursesin "trak/internal/modules/courses/port/in"
)

type CLIHandler struct {
	usecase coursesin.Usecase
}

func NewCLIHandler(usecase coursesin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]coursesdto.CourseOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Add(ctx context.Context, raw string) (coursesdto.AddOutput, error) {
	return h.usecase.Add(ctx, coursesdto.AddInput{Raw: raw})
}
