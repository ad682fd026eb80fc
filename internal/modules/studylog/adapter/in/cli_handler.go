package in

import (
	"context"

	logdto "trak/internal/modules/studylog/dto"
	login "trak/internal/modules/studylog/port/in"
)

type CLIHandler struct {
	usecase login.Usecase
}

func NewCLIHandler(usecase login.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Log(ctx context.Context, courseNames []string) (logdto.CommitOutput, error) {
	return h.usecase.LogCourses(ctx, logdto.LogInput{CourseNames: courseNames})
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]logdto.JournalEntryOutput, error) {
	return h.usecase.History(ctx, limit)
}
