package usecase

import (
	"context"

	coursesdto "trak/internal/modules/courses/dto"
	coursesin "trak/internal/modules/courses/port/in"
	"trak/internal/modules/courses/service"
)

type Interactor struct {
	svc *service.CourseService
}

func NewInteractor(svc *service.CourseService) coursesin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]coursesdto.CourseOutput, error) {
	courses, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]coursesdto.CourseOutput, len(courses))
	for idx, c := range courses {
		out[idx] = coursesdto.CourseOutput{Name: c.Name}
	}
	return out, nil
}

func (i *Interactor) Add(ctx context.Context, input coursesdto.AddInput) (coursesdto.AddOutput, error) {
	created, err := i.svc.Create(ctx, input.Raw)
	if err != nil {
		return coursesdto.AddOutput{}, err
	}
	out := coursesdto.AddOutput{Created: make([]string, len(created))}
	for idx, c := range created {
		out.Created[idx] = c.Name
	}
	return out, nil
}
