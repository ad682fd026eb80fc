package out

import (
	"context"

	studylogout "trak/internal/modules/studylog/port/out"
	"trak/internal/platform/httpapi"
)

type HTTPLogAPI struct {
	api *httpapi.Client
}

func NewHTTPLogAPI(api *httpapi.Client) studylogout.LogAPI {
	return &HTTPLogAPI{api: api}
}

type logBody struct {
	CourseNames []string `json:"course_names"`
}

func (a *HTTPLogAPI) Save(ctx context.Context, courseNames []string) error {
	return a.api.Post(ctx, "/logs", logBody{CourseNames: courseNames}, nil)
}
