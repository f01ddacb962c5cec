package cli

import (
	"context"
	"fmt"
)

func (a *App) Tasks(ctx context.Context) error {
	tasks, err := a.tasks.List(ctx, nil)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to list tasks: %s\n", err)
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks")
		return nil
	}
	for _, t := range tasks {
		fmt.Fprintf(a.out, "[%d] %-12s %s\n", t.ID, t.Status, t.Title)
	}
	return nil
}

func (a *App) Sprints(ctx context.Context) error {
	sprints, err := a.sprints.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to list sprints: %s\n", err)
		return err
	}
	if len(sprints) == 0 {
		fmt.Fprintln(a.out, "No sprints")
		return nil
	}
	for _, s := range sprints {
		active := " "
		if s.IsActive {
			active = "*"
		}
		fmt.Fprintf(a.out, "[%d]%s %s (%s — %s)\n", s.ID, active, s.Name, s.StartDate, s.EndDate)
	}
	return nil
}

func (a *App) Groups(ctx context.Context) error {
	groups, err := a.groups.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to list groups: %s\n", err)
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintln(a.out, "No groups")
		return nil
	}
	for _, g := range groups {
		fmt.Fprintf(a.out, "[%d] %s (%d members, code %s)\n", g.ID, g.Name, g.MemberCount, g.JoinCode)
	}
	return nil
}

func (a *App) Join(ctx context.Context) error {
	code, err := GetSimpleText(a.reader, "Enter join code", a.out)
	if err != nil {
		return err
	}

	group, err := a.groups.Join(ctx, code)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to join group: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Joined group %q\n", group.Name)
	return nil
}

func (a *App) Audit(ctx context.Context) error {
	events, err := a.audit.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to read audit trail: %s\n", err)
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No audit events")
		return nil
	}
	for _, e := range events {
		fmt.Fprintf(a.out, "%s  %s\n", e.At.Local().Format("2006-01-02 15:04:05"), e.Message)
	}
	return nil
}
