package update

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/dayplan/internal/commands"
	"github.com/sandeepkv93/dayplan/internal/logging"
	"github.com/sandeepkv93/dayplan/internal/model"
	"github.com/sandeepkv93/dayplan/internal/schedule"
	"github.com/sandeepkv93/dayplan/internal/views"
)

// Listing is what a list or priority command selected for display. An
// empty Priority means every task.
type Listing struct {
	Title    string
	Priority model.Priority
	Tasks    []model.Task
}

func allTasks(store *schedule.Store) Listing {
	return Listing{Title: "All scheduled tasks", Tasks: store.ListSortedByStart()}
}

// Refresh re-runs the listing's query against store.
func (l Listing) Refresh(store *schedule.Store) Listing {
	if l.Priority == "" {
		l.Tasks = store.ListSortedByStart()
	} else {
		l.Tasks = store.ListByPriority(string(l.Priority))
	}
	return l
}

func (l Listing) Render() string {
	rows := make([]views.TaskRow, 0, len(l.Tasks))
	for _, t := range l.Tasks {
		rows = append(rows, views.TaskRow{Text: t.String(), Completed: t.Completed})
	}
	return views.RenderSchedule(l.Title, rows)
}

// Actions binds parsed commands to a schedule store. Shown receives every
// listing produced by list and priority commands.
type Actions struct {
	Store           *schedule.Store
	DefaultPriority model.Priority
	Logger          *log.Logger
	Shown           func(Listing)
}

// Run parses and executes one command line.
func (a Actions) Run(line string) (commands.Result, error) {
	cmd, err := commands.Parse(line)
	if err != nil {
		return commands.Result{}, err
	}
	return commands.Execute(cmd, a.Handlers())
}

func (a Actions) Handlers() commands.Handlers {
	return commands.Handlers{
		Add:      a.add,
		Remove:   a.remove,
		List:     a.list,
		Priority: a.byPriority,
		Edit:     a.edit,
		Done:     a.done,
		Clear:    a.clear,
	}
}

func (a Actions) add(args commands.AddArgs) (commands.Result, error) {
	priority := args.Priority
	if priority == "" {
		priority = string(a.defaultPriority())
	}
	task, err := model.NewTask(args.Description, args.Start, args.End, priority)
	if err != nil {
		a.logger().Warn("invalid task input", "task", args.Description, "err", err)
		return commands.Result{}, err
	}
	if err := a.Store.Insert(task); err != nil {
		return commands.Result{}, describe(err)
	}
	return commands.Result{Message: "Task added successfully. No conflicts. " + task.String()}, nil
}

func (a Actions) remove(args commands.TargetArgs) (commands.Result, error) {
	if err := a.Store.Remove(args.Description); err != nil {
		return commands.Result{}, describe(err)
	}
	return commands.Result{Message: fmt.Sprintf("Task removed successfully: %s", args.Description)}, nil
}

func (a Actions) list() (commands.Result, error) {
	l := allTasks(a.Store)
	a.show(l)
	return commands.Result{Message: fmt.Sprintf("%d task(s) scheduled", len(l.Tasks))}, nil
}

func (a Actions) byPriority(args commands.PriorityArgs) (commands.Result, error) {
	p, err := model.ParsePriority(args.Level)
	if err != nil {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "invalid priority level, use High, Medium, or Low"}
	}
	tasks := a.Store.ListByPriority(args.Level)
	a.show(Listing{Title: "Tasks with priority: " + strings.ToUpper(string(p)), Priority: p, Tasks: tasks})
	if len(tasks) == 0 {
		return commands.Result{Message: fmt.Sprintf("No tasks found with priority: %s", p)}, nil
	}
	return commands.Result{Message: fmt.Sprintf("%d task(s) with priority %s", len(tasks), p)}, nil
}

func (a Actions) edit(args commands.EditArgs) (commands.Result, error) {
	if err := a.Store.Edit(args.Description, args.Start, args.End, args.Priority); err != nil {
		return commands.Result{}, describe(err)
	}
	return commands.Result{Message: fmt.Sprintf("Task edited successfully: %s", args.Description)}, nil
}

func (a Actions) done(args commands.TargetArgs) (commands.Result, error) {
	if err := a.Store.MarkCompleted(args.Description); err != nil {
		return commands.Result{}, describe(err)
	}
	return commands.Result{Message: fmt.Sprintf("Task marked as completed: %s", args.Description)}, nil
}

func (a Actions) clear() (commands.Result, error) {
	n := a.Store.Count()
	a.Store.Clear()
	return commands.Result{Message: fmt.Sprintf("Cleared %d task(s)", n)}, nil
}

func (a Actions) show(l Listing) {
	if a.Shown != nil {
		a.Shown(l)
	}
}

func (a Actions) defaultPriority() model.Priority {
	if a.DefaultPriority.IsValid() {
		return a.DefaultPriority
	}
	return model.PriorityMedium
}

func (a Actions) logger() *log.Logger {
	if a.Logger == nil {
		return logging.Discard()
	}
	return a.Logger
}

// describe turns store errors into the messages shown to the user.
func describe(err error) error {
	var conflict *schedule.ConflictError
	switch {
	case errors.As(err, &conflict) && conflict.Duplicate():
		return fmt.Errorf("task is already scheduled: %w", err)
	case errors.As(err, &conflict):
		return fmt.Errorf("task could not be saved due to conflicts: %w", err)
	case errors.Is(err, schedule.ErrNotFound):
		return fmt.Errorf("task not found: %w", err)
	default:
		return err
	}
}
