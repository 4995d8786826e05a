package async

import (
	"context"
	"errors"
	"fmt"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// Run executes tasks concurrently and waits for all of them. Every failure is
// returned, wrapped with its task name and joined in task order.
//
// Example:
//
//	err := async.Run(ctx, []async.Task{
//	    {Name: "archive report", Func: archive},
//	    {Name: "push metrics", Func: push},
//	})
func Run(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	type result struct {
		index int
		err   error
	}

	results := make(chan result, len(tasks))
	for i, task := range tasks {
		go func() {
			results <- result{index: i, err: task.Func(ctx)}
		}()
	}

	errs := make([]error, len(tasks))
	for range len(tasks) {
		res := <-results
		if res.err != nil {
			errs[res.index] = fmt.Errorf("%s: %w", tasks[res.index].Name, res.err)
		}
	}

	return errors.Join(errs...)
}
