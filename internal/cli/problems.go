package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/civicwatch/civicwatch/internal/models"
)

func (a *App) List(ctx context.Context) error {
	filter, err := GetSimpleText(a.reader, "Filter by status (new/in_progress/resolved, empty for all)", a.out)
	if err != nil {
		return err
	}

	var items []models.Problem
	if filter == "" {
		items = a.problems.All()
	} else {
		status := models.Status(filter)
		if !models.ValidStatus(status) {
			fmt.Fprintf(a.out, "Unknown status %q\n", filter)
			return nil
		}
		items = a.problems.ByStatus(status)
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No problems found")
		return nil
	}
	for _, p := range items {
		marker := models.StatusColor[p.Status]
		fmt.Fprintf(a.out, "%s  [%s/%s]  %s\n", p.ID, p.Status, marker, p.Title)
	}
	return nil
}

func (a *App) Report(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to report a problem")
		return nil
	}

	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Describe the problem", a.out)
	if err != nil {
		return err
	}
	lat, err := a.readCoordinate("Enter latitude")
	if err != nil {
		return err
	}
	lng, err := a.readCoordinate("Enter longitude")
	if err != nil {
		return err
	}

	id, res := a.problems.Add(ctx, models.Problem{
		Title:       title,
		Description: description,
		Coordinates: models.Coordinates{Lat: lat, Lng: lng},
	})
	if !res.Success {
		fmt.Fprintf(a.out, "Report failed: %s\n", res.Message)
		return nil
	}

	fmt.Fprintf(a.out, "Reported problem %s\n", id)
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter problem id", a.out)
	if err != nil {
		return err
	}

	p, ok := a.problems.ByID(id)
	if !ok {
		fmt.Fprintln(a.out, "Problem not found")
		return nil
	}

	fmt.Fprintf(a.out, "%s: %s\n", p.ID, p.Title)
	fmt.Fprintf(a.out, "Status:    %s\n", p.Status)
	fmt.Fprintf(a.out, "Location:  %.4f, %.4f\n", p.Coordinates.Lat, p.Coordinates.Lng)
	fmt.Fprintf(a.out, "Created:   %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(a.out, "Updated:   %s\n", p.UpdatedAt.Format("2006-01-02 15:04"))
	if p.Description != "" {
		fmt.Fprintln(a.out, p.Description)
	}
	if p.ImageID != "" {
		fmt.Fprintf(a.out, "Image:     %s\n", p.ImageID)
	}
	return nil
}

func (a *App) Status(ctx context.Context) error {
	if !a.auth.IsAdmin() {
		fmt.Fprintln(a.out, "Only administrators can change problem status")
		return nil
	}

	id, err := GetSimpleText(a.reader, "Enter problem id", a.out)
	if err != nil {
		return err
	}
	statusText, err := GetSimpleText(a.reader, "Enter new status (new/in_progress/resolved)", a.out)
	if err != nil {
		return err
	}

	status := models.Status(statusText)
	if !models.ValidStatus(status) {
		fmt.Fprintf(a.out, "Unknown status %q\n", statusText)
		return nil
	}

	res := a.problems.UpdateStatus(ctx, id, status)
	if !res.Success {
		fmt.Fprintf(a.out, "Status change failed: %s\n", res.Message)
		return nil
	}
	fmt.Fprintln(a.out, "Status updated")
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to edit a problem")
		return nil
	}

	id, err := GetSimpleText(a.reader, "Enter problem id", a.out)
	if err != nil {
		return err
	}

	p, ok := a.problems.ByID(id)
	if !ok {
		fmt.Fprintln(a.out, "Problem not found")
		return nil
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Enter title (empty to keep %q)", p.Title), a.out)
	if err != nil {
		return err
	}
	if title != "" {
		p.Title = title
	}
	description, err := GetMultiline(a.reader, "Describe the problem (empty to keep current)", a.out)
	if err != nil {
		return err
	}
	if description != "" {
		p.Description = description
	}

	res := a.problems.Update(ctx, p)
	if !res.Success {
		fmt.Fprintf(a.out, "Edit failed: %s\n", res.Message)
		return nil
	}
	fmt.Fprintln(a.out, "Problem updated")
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	if !a.auth.IsAdmin() {
		fmt.Fprintln(a.out, "Only administrators can delete problems")
		return nil
	}

	id, err := GetSimpleText(a.reader, "Enter problem id", a.out)
	if err != nil {
		return err
	}

	res := a.problems.Delete(ctx, id)
	if !res.Success {
		fmt.Fprintf(a.out, "Delete failed: %s\n", res.Message)
		return nil
	}

	a.images.Delete(ctx, id)
	fmt.Fprintln(a.out, "Problem deleted")
	return nil
}

func (a *App) readCoordinate(prompt string) (float64, error) {
	text, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Not a number, using 0: %q\n", text)
		return 0, nil
	}
	return v, nil
}
