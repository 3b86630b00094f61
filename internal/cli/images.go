package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/civicwatch/civicwatch/internal/imagex"
)

func (a *App) Attach(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to attach an image")
		return nil
	}

	problemID, err := GetSimpleText(a.reader, "Enter problem id", a.out)
	if err != nil {
		return err
	}
	problem, ok := a.problems.ByID(problemID)
	if !ok {
		fmt.Fprintln(a.out, "Problem not found")
		return nil
	}

	path, err := GetSimpleText(a.reader, "Enter image file path", a.out)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(a.out, "Cannot read %s: %v\n", path, err)
		return nil
	}

	res := <-imagex.CompressAsync(ctx, data, a.imgOpts)
	if res.Err != nil {
		fmt.Fprintf(a.out, "Image conversion failed: %v\n", res.Err)
		return nil
	}

	if !a.images.Save(ctx, problemID, res.Payload) {
		fmt.Fprintln(a.out, "Image stored in memory only (persistence failed)")
	}

	problem.ImageID = problemID
	if r := a.problems.Update(ctx, problem); !r.Success {
		fmt.Fprintf(a.out, "Could not link image to problem: %s\n", r.Message)
		return nil
	}

	fmt.Fprintf(a.out, "Image attached to %s (%d bytes encoded)\n", problemID, len(res.Payload))
	return nil
}

func (a *App) Image(ctx context.Context) error {
	problemID, err := GetSimpleText(a.reader, "Enter problem id", a.out)
	if err != nil {
		return err
	}

	payload := a.images.Get(problemID)
	if payload == "" {
		fmt.Fprintln(a.out, "No image stored for this problem")
		return nil
	}

	preview := payload
	if len(preview) > 64 {
		preview = preview[:64] + "..."
	}
	fmt.Fprintf(a.out, "%s (%d bytes)\n", preview, len(payload))
	return nil
}
