package usecase

import (
	"context"
	"sync"

	"trak/internal/modules/studylog/domain"
	logdto "trak/internal/modules/studylog/dto"
	login "trak/internal/modules/studylog/port/in"
	logout "trak/internal/modules/studylog/port/out"
	"trak/internal/modules/studylog/service"
	"trak/internal/platform/clock"

	"go.uber.org/zap"
)

// Interactor owns the pending selection and the commit epoch. Both are
// mutated from TUI command goroutines, so all access goes through the mutex.
type Interactor struct {
	mu        sync.Mutex
	selection *domain.Selection
	epoch     int

	svc     *service.StudyLogService
	journal logout.Journal
	clock   clock.Clock
	log     *zap.Logger
}

func NewInteractor(svc *service.StudyLogService, journal logout.Journal, clk clock.Clock, log *zap.Logger) login.Usecase {
	return &Interactor{
		selection: domain.NewSelection(),
		svc:       svc,
		journal:   journal,
		clock:     clk,
		log:       log,
	}
}

func (i *Interactor) Toggle(name string) logdto.ToggleOutput {
	i.mu.Lock()
	defer i.mu.Unlock()
	selected := i.selection.Toggle(name)
	return logdto.ToggleOutput{Selected: selected, Count: i.selection.Len()}
}

func (i *Interactor) Selected() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.selection.Names()
}

func (i *Interactor) IsSelected(name string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.selection.Has(name)
}

func (i *Interactor) ClearSelection() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.selection.Clear()
}

func (i *Interactor) Epoch() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.epoch
}

// Commit snapshots the selection, sends it, and only then clears the
// selection and advances the epoch. A failed send leaves both untouched.
func (i *Interactor) Commit(ctx context.Context) (logdto.CommitOutput, error) {
	i.mu.Lock()
	names := i.selection.Names()
	i.mu.Unlock()

	if err := i.svc.Save(ctx, names); err != nil {
		return logdto.CommitOutput{}, err
	}

	i.mu.Lock()
	i.selection.Clear()
	i.epoch++
	epoch := i.epoch
	i.mu.Unlock()

	i.record(ctx, names)
	return logdto.CommitOutput{CourseNames: names, Epoch: epoch}, nil
}

func (i *Interactor) LogCourses(ctx context.Context, input logdto.LogInput) (logdto.CommitOutput, error) {
	if err := i.svc.Save(ctx, input.CourseNames); err != nil {
		return logdto.CommitOutput{}, err
	}

	i.mu.Lock()
	i.epoch++
	epoch := i.epoch
	i.mu.Unlock()

	i.record(ctx, input.CourseNames)
	return logdto.CommitOutput{CourseNames: input.CourseNames, Epoch: epoch}, nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]logdto.JournalEntryOutput, error) {
	entries, err := i.journal.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]logdto.JournalEntryOutput, len(entries))
	for idx, e := range entries {
		out[idx] = logdto.JournalEntryOutput{
			CourseNames: e.CourseNames,
			CommittedAt: e.CommittedAt,
		}
	}
	return out, nil
}

// record appends to the local journal after the API accepted the commit.
// The commit already succeeded, so a journal failure is only logged.
func (i *Interactor) record(ctx context.Context, names []string) {
	if err := i.journal.Append(ctx, names, i.clock.Now()); err != nil {
		i.log.Warn("journal append failed", zap.Error(err))
	}
}
