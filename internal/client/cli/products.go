package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/gophproducts/internal/client/client"
)

var errInvalidID = errors.New("invalid product id")

// clearMarker entered as a description removes the stored one.
const clearMarker = "-"

func formatProduct(p client.Product) string {
	s := fmt.Sprintf("#%d %s", p.ID, p.Name)
	if p.Description != nil {
		s += " - " + *p.Description
	}
	return s
}

// readID takes the id from the command arguments or prompts for it.
func (a *App) readID(args []string, prompt string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		var err error
		if raw, err = getSimpleText(a.reader, prompt, a.out); err != nil {
			return 0, err
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter product name", a.out)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, "Enter description (empty for none)", a.out)
	if err != nil {
		return err
	}

	var description *string
	if desc != "" {
		description = &desc
	}

	p, err := a.api.CreateProduct(ctx, name, description)
	if err != nil {
		return a.checkSession(err)
	}

	fmt.Fprintln(a.out, "Created", formatProduct(*p))
	return nil
}

func (a *App) List(ctx context.Context) error {
	ps, err := a.api.ListProducts(ctx)
	if err != nil {
		return a.checkSession(err)
	}

	if len(ps) == 0 {
		fmt.Fprintln(a.out, "No products")
		return nil
	}
	for _, p := range ps {
		fmt.Fprintln(a.out, formatProduct(p))
	}
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.readID(args, "Enter product id to show")
	if err != nil {
		return err
	}

	p, err := a.api.GetProduct(ctx, id)
	if err != nil {
		return a.checkSession(err)
	}

	fmt.Fprintln(a.out, formatProduct(*p))
	return nil
}

// Update leaves a field unchanged when its prompt is answered with an empty line.
func (a *App) Update(ctx context.Context, args []string) error {
	id, err := a.readID(args, "Enter product id to update")
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	desc, err := getSimpleText(a.reader, fmt.Sprintf("New description (empty to keep, %q to clear)", clearMarker), a.out)
	if err != nil {
		return err
	}

	var patch client.ProductPatch
	if name != "" {
		patch.Name = &name
	}
	switch desc {
	case "":
	case clearMarker:
		patch.ClearDescription = true
	default:
		patch.Description = &desc
	}

	p, err := a.api.UpdateProduct(ctx, id, patch)
	if err != nil {
		return a.checkSession(err)
	}

	fmt.Fprintln(a.out, "Updated", formatProduct(*p))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.readID(args, "Enter product id to delete")
	if err != nil {
		return err
	}

	if err := a.api.DeleteProduct(ctx, id); err != nil {
		return a.checkSession(err)
	}

	fmt.Fprintf(a.out, "Deleted #%d\n", id)
	return nil
}
