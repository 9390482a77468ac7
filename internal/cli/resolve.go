package cli

import (
	"context"
	"fmt"
	"strings"
)

// named is the minimal shape resolvers work over.
type named struct {
	ID   string
	Name string
}

// resolveRef matches user input against a list of entities: exact ID, then
// ID prefix, then case-insensitive name, then name prefix. Ambiguity is an
// error rather than a guess.
func resolveRef(kind, input string, items []named) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%s ID or name is required", kind)
	}

	for _, it := range items {
		if it.ID == input {
			return it.ID, nil
		}
	}

	var matches []string
	for _, it := range items {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}
	if len(matches) == 0 {
		for _, it := range items {
			if strings.EqualFold(it.Name, input) {
				matches = append(matches, it.ID)
			}
		}
	}
	if len(matches) == 0 {
		lower := strings.ToLower(input)
		for _, it := range items {
			if strings.HasPrefix(strings.ToLower(it.Name), lower) {
				matches = append(matches, it.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s reference %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolvePillarID(ctx context.Context, app *App, input string) (string, error) {
	pillars, err := app.Pillars.List(ctx, true)
	if err != nil {
		return "", err
	}
	items := make([]named, len(pillars))
	for i, p := range pillars {
		items[i] = named{ID: p.ID, Name: p.Name}
	}
	return resolveRef("pillar", input, items)
}

func resolveAreaID(ctx context.Context, app *App, input string) (string, error) {
	areas, err := app.Areas.List(ctx, true)
	if err != nil {
		return "", err
	}
	items := make([]named, len(areas))
	for i, a := range areas {
		items[i] = named{ID: a.ID, Name: a.Name}
	}
	return resolveRef("area", input, items)
}

func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}
	items := make([]named, len(projects))
	for i, p := range projects {
		items[i] = named{ID: p.ID, Name: p.Name}
	}
	return resolveRef("project", input, items)
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}
	var items []named
	for _, p := range projects {
		tasks, err := app.Tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return "", err
		}
		for _, t := range tasks {
			items = append(items, named{ID: t.ID, Name: t.Name})
		}
	}
	return resolveRef("task", input, items)
}

func resolveEntryID(ctx context.Context, app *App, input string) (string, error) {
	entries, err := app.Journal.List(ctx, 0, false)
	if err != nil {
		return "", err
	}
	items := make([]named, len(entries))
	for i, e := range entries {
		items[i] = named{ID: e.ID, Name: e.Title}
	}
	return resolveRef("entry", input, items)
}
