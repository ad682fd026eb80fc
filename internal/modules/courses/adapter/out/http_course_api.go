package out

import (
	"context"

	"trak/internal/modules/courses/domain"
	coursesout "trak/internal/modules/courses/port/out"
	"trak/internal/platform/httpapi"
)

type HTTPCourseAPI struct {
	api *httpapi.Client
}

func NewHTTPCourseAPI(api *httpapi.Client) coursesout.CourseAPI {
	return &HTTPCourseAPI{api: api}
}

type courseBody struct {
	Name string `json:"name"`
}

func (a *HTTPCourseAPI) List(ctx context.Context) ([]domain.Course, error) {
	var out []courseBody
	if err := a.api.Get(ctx, "/courses", &out); err != nil {
		return nil, err
	}
	courses := make([]domain.Course, len(out))
	for i, c := range out {
		courses[i] = domain.Course{Name: c.Name}
	}
	return courses, nil
}

func (a *HTTPCourseAPI) Create(ctx context.Context, names []string) ([]domain.Course, error) {
	body := make([]courseBody, len(names))
	for i, n := range names {
		body[i] = courseBody{Name: n}
	}
	var out []courseBody
	if err := a.api.Post(ctx, "/courses", body, &out); err != nil {
		return nil, err
	}
	created := make([]domain.Course, len(out))
	for i, c := range out {
		created[i] = domain.Course{Name: c.Name}
	}
	return created, nil
}
