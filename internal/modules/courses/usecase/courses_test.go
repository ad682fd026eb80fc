package usecase_test

import (
	"context"
	"errors"
	"testing"

	"trak/internal/modules/courses/domain"
	coursesdto "trak/internal/modules/courses/dto"
	"trak/internal/modules/courses/service"
	"trak/internal/modules/courses/usecase"
	apperrors "trak/internal/platform/errors"
)

type fakeCourseAPI struct {
	listed      []domain.Course
	listErr     error
	created     []string
	createErr   error
	createCalls int
}

func (f *fakeCourseAPI) List(context.Context) ([]domain.Course, error) {
	return f.listed, f.listErr
}

func (f *fakeCourseAPI) Create(_ context.Context, names []string) ([]domain.Course, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = names
	courses := make([]domain.Course, len(names))
	for i, n := range names {
		courses[i] = domain.Course{Name: n}
	}
	return courses, nil
}

func TestAddParsesBatchAndSubmitsOnce(t *testing.T) {
	t.Parallel()
	api := &fakeCourseAPI{}
	uc := usecase.NewInteractor(service.NewCourseService(api))

	out, err := uc.Add(context.Background(), coursesdto.AddInput{Raw: "Math, Physics\nHistory"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(out.Created) != 3 || out.Created[0] != "Math" || out.Created[2] != "History" {
		t.Fatalf("unexpected created set: %v", out.Created)
	}
	if api.createCalls != 1 {
		t.Fatalf("batch must be one write, got %d", api.createCalls)
	}
}

func TestAddRejectsBlankEntryWithoutNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeCourseAPI{}
	uc := usecase.NewInteractor(service.NewCourseService(api))

	if _, err := uc.Add(context.Background(), coursesdto.AddInput{Raw: " , ,\n "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if api.createCalls != 0 {
		t.Fatalf("blank input must not reach the API")
	}
}

func TestListMapsCourses(t *testing.T) {
	t.Parallel()
	api := &fakeCourseAPI{listed: []domain.Course{{Name: "Math"}, {Name: "Physics"}}}
	uc := usecase.NewInteractor(service.NewCourseService(api))

	out, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].Name != "Math" || out[1].Name != "Physics" {
		t.Fatalf("unexpected list: %+v", out)
	}
}
