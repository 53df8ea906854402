package schedule

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/dayplan/internal/model"
)

type countingObserver struct {
	calls int64
}

func (c *countingObserver) OnConflict(string, model.Task) error {
	atomic.AddInt64(&c.calls, 1)
	return nil
}

func stressTask(w, i int) model.Task {
	start := (w*37 + i*11) % 1320
	end := start + 30 + (i%4)*15
	return model.Task{
		Description: fmt.Sprintf("w%d-%d", w, i),
		Start:       model.FromMinutes(start),
		End:         model.FromMinutes(end),
		Priority:    model.PriorityMedium,
	}
}

func TestStoreStressConcurrentInsertEdit(t *testing.T) {
	logger := log.New(io.Discard)
	store := NewStore(logger)
	store.AddObserver(&LogNotifier{Logger: logger})
	counter := &countingObserver{}
	store.AddObserver(counter)

	const workers = 8
	const perWorker = 200

	var conflicts int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				task := stressTask(w, i)
				err := store.Insert(task)
				switch {
				case err == nil:
				case errors.Is(err, ErrConflict):
					atomic.AddInt64(&conflicts, 1)
				default:
					t.Errorf("insert %s: %v", task.Description, err)
					return
				}

				moved := stressTask(w+1, i+3)
				err = store.Edit(task.Description, moved.Start, moved.End, "High")
				switch {
				case err == nil, errors.Is(err, ErrNotFound):
				case errors.Is(err, ErrConflict):
					atomic.AddInt64(&conflicts, 1)
				default:
					t.Errorf("edit %s: %v", task.Description, err)
					return
				}

				if err := store.MarkCompleted(task.Description); err != nil && !errors.Is(err, ErrNotFound) {
					t.Errorf("mark completed %s: %v", task.Description, err)
					return
				}
				_ = store.ListSortedByStart()
			}
		}()
	}
	wg.Wait()

	tasks := store.All()
	for i := range tasks {
		for j := i + 1; j < len(tasks); j++ {
			if tasks[i].Overlaps(&tasks[j]) {
				t.Fatalf("overlapping tasks in store: %s and %s", tasks[i], tasks[j])
			}
		}
	}
	if got := atomic.LoadInt64(&counter.calls); got != conflicts {
		t.Fatalf("unexpected notification count: got=%d want=%d", got, conflicts)
	}
	if len(tasks) == 0 {
		t.Fatal("expected some tasks to be admitted")
	}
}
