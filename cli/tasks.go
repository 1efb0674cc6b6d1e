// ABOUTME: Task and activity CLI commands
// ABOUTME: Listing and creation for tasks and the activity log
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/pipelinepro/forms"
	"github.com/harperreed/pipelinepro/models"
	"github.com/harperreed/pipelinepro/services"
)

// AddTaskCommand adds a new task.
func AddTaskCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("add-task", flag.ExitOnError)
	title := fs.String("title", "", "Task title (required)")
	description := fs.String("description", "", "Task description")
	dueDate := fs.String("due", "", "Due date (YYYY-MM-DD, required)")
	priority := fs.String("priority", "", "Priority low/medium/high (default: medium)")
	contactID := fs.String("contact", "", "Related contact ID")
	dealID := fs.String("deal", "", "Related deal ID")
	_ = fs.Parse(args)

	vals := forms.Values{
		"title":       *title,
		"description": *description,
		"dueDate":     *dueDate,
		"priority":    *priority,
		"contactId":   *contactID,
		"dealId":      *dealID,
	}

	if errs := forms.Validate(forms.KindTask, vals); len(errs) > 0 {
		for field, msg := range errs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
		return fmt.Errorf("invalid task")
	}

	task, err := svc.Tasks.Create(context.Background(), forms.BuildTask(vals))
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	fmt.Printf("✓ Task created: %s (ID: %d)\n", task.Title, task.ID)
	return nil
}

// ListTasksCommand lists all tasks.
func ListTasksCommand(svc *services.Registry, _ []string) error {
	tasks, err := svc.Tasks.GetAll(context.Background())
	if err != nil {
		return fmt.Errorf("failed to find tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tDUE\tPRIORITY")
	_, _ = fmt.Fprintln(w, "--\t-----\t---\t--------")

	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Title, due, t.Priority)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d task(s)\n", len(tasks))
	return nil
}

// LogActivityCommand records an activity.
func LogActivityCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("log-activity", flag.ExitOnError)
	typ := fs.String("type", "", "Activity type email/call/meeting/note (required)")
	subject := fs.String("subject", "", "Subject (required)")
	content := fs.String("content", "", "Content (required)")
	contactID := fs.String("contact", "", "Related contact ID")
	dealID := fs.String("deal", "", "Related deal ID")
	_ = fs.Parse(args)

	vals := forms.Values{
		"type":      *typ,
		"subject":   *subject,
		"content":   *content,
		"contactId": *contactID,
		"dealId":    *dealID,
	}

	if errs := forms.Validate(forms.KindActivity, vals); len(errs) > 0 {
		for field, msg := range errs {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
		}
		return fmt.Errorf("invalid activity")
	}

	activity, err := svc.Activities.Create(context.Background(), forms.BuildActivity(vals))
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	fmt.Printf("✓ Activity logged: %s (ID: %d)\n", activity.Subject, activity.ID)
	return nil
}

// ListActivitiesCommand lists activities, optionally for one contact.
func ListActivitiesCommand(svc *services.Registry, args []string) error {
	fs := flag.NewFlagSet("list-activities", flag.ExitOnError)
	contact := fs.Int("contact", 0, "Filter by contact ID")
	_ = fs.Parse(args)

	ctx := context.Background()
	var activities []models.Activity
	var err error
	if *contact != 0 {
		activities, err = svc.Activities.GetByContactID(ctx, *contact)
	} else {
		activities, err = svc.Activities.GetAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to find activities: %w", err)
	}

	if len(activities) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTYPE\tSUBJECT\tCONTENT")
	_, _ = fmt.Fprintln(w, "--\t----\t-------\t-------")

	for _, a := range activities {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.ID, a.Type, a.Subject, a.Content)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d activit(ies)\n", len(activities))
	return nil
}
