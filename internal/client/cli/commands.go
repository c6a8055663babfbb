package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/dmitrijs2005/userdirectory/internal/client/models"
	"github.com/dmitrijs2005/userdirectory/internal/client/view"
)

// formFields lists the add-user form fields in prompt order.
var formFields = []struct {
	name   string
	prompt string
}{
	{"firstName", "First name"},
	{"lastName", "Last name"},
	{"companyName", "Company (optional)"},
	{"role", "Role (optional)"},
	{"country", "Country (optional)"},
}

func (a *App) List(ctx context.Context) error {
	a.render()
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	err := a.directory.Refresh(ctx)
	if err != nil {
		log.Printf("refresh: %v", err)
	}
	a.render()
	return err
}

func (a *App) Search(ctx context.Context, term string) error {
	a.directory.SetSearch(term)
	a.render()
	return nil
}

func (a *App) Import(ctx context.Context) error {
	err := a.directory.Import(ctx)
	if err != nil {
		log.Printf("import: %v", err)
	}
	a.render()
	return err
}

// Add walks the user through the form, then saves to the server, keeps the
// record locally, or discards it.
func (a *App) Add(ctx context.Context) error {
	a.directory.OpenForm()

	for _, f := range formFields {
		v, err := GetSimpleText(a.scanner, a.promptText(f.prompt), a.out)
		if err != nil {
			a.directory.CancelForm()
			return err
		}
		if err := a.directory.SetField(f.name, v); err != nil {
			a.directory.CancelForm()
			return err
		}
	}

	for {
		choice, err := GetSimpleText(a.scanner, a.promptText("save | local | cancel"), a.out)
		if err != nil {
			a.directory.CancelForm()
			return err
		}

		switch choice {
		case "save", "s":
			err := a.directory.Submit(ctx)
			if err != nil {
				log.Printf("add: %v", err)
			}
			a.printNotices()
			if err == nil {
				a.render()
			}
			return err

		case "local", "l":
			a.directory.AddLocal(a.directory.State().Form)
			a.directory.CancelForm()
			a.printNotices()
			a.render()
			return nil

		case "cancel", "c":
			a.directory.CancelForm()
			fmt.Fprintln(a.out, "Cancelled")
			return nil

		default:
			fmt.Fprintln(a.out, "Please type save, local or cancel")
		}
	}
}

func (a *App) Delete(ctx context.Context, arg string) error {
	return a.deleteRow(ctx, models.OriginServer, arg)
}

func (a *App) DeleteLocal(ctx context.Context, arg string) error {
	return a.deleteRow(ctx, models.OriginLocal, arg)
}

func (a *App) deleteRow(ctx context.Context, origin models.Origin, arg string) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid id: %s\n", arg)
		return err
	}

	err = a.directory.Delete(ctx, origin, id)
	if err != nil {
		log.Printf("delete: %v", err)
	}
	a.printNotices()
	a.render()
	return err
}

func (a *App) Promote(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid number: %s\n", arg)
		return err
	}

	err = a.directory.Promote(ctx, n-1)
	if errors.Is(err, view.ErrNoCandidate) {
		fmt.Fprintf(a.out, "No imported user #%d\n", n)
		return err
	}
	if err != nil {
		log.Printf("promote: %v", err)
	}
	a.printNotices()
	a.render()
	return err
}

// promptText hides prompts when input is not a terminal.
func (a *App) promptText(p string) string {
	if !a.interactive {
		return ""
	}
	return p
}
