// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-help-campaigns/internal/adapter"
	"github.com/MKhiriev/go-help-campaigns/internal/logger"
	"github.com/MKhiriev/go-help-campaigns/models"
)

var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArg     = errors.New("missing argument")
)

const usage = `usage: campaign-client [-a address] [-t timeout] [-token token] <command> [args]

commands:
  version                               server version
  health                                server health
  signup -email E -password P -name N -last-name L -birth YYYY-MM-DD -city C -state S [-zip Z]
  signin -email E -password P           prints the bearer token
  password -current P -new P            change password
  delete-account
  campaigns [-q text] [-filter id]...   search campaigns
  campaign <id>
  user-campaigns <userID>
  create-campaign -title T -description D -contact C -methods 1,2
  update-campaign <id> -title T -description D -contact C -methods 1,2
  delete-campaign <id>
  methods                               list help methods
  add-method -description D
  delete-method <id>
  help <campaignID>                     list registered help
  donate <campaignID> -method id -log text
`

type command func(ctx context.Context, args []string) error

type App struct {
	adapter  adapter.ServerAdapter
	out      io.Writer
	commands map[string]command
	logger   *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{adapter: serverAdapter, out: out, logger: logger}
	a.commands = map[string]command{
		"version":         a.version,
		"health":          a.health,
		"signup":          a.signUp,
		"signin":          a.signIn,
		"password":        a.changePassword,
		"delete-account":  a.deleteAccount,
		"campaigns":       a.listCampaigns,
		"campaign":        a.getCampaign,
		"user-campaigns":  a.listUserCampaigns,
		"create-campaign": a.createCampaign,
		"update-campaign": a.updateCampaign,
		"delete-campaign": a.deleteCampaign,
		"methods":         a.listHelpMethods,
		"add-method":      a.addHelpMethod,
		"delete-method":   a.deleteHelpMethod,
		"help":            a.listHelpDone,
		"donate":          a.donate,
	}
	return a
}

// Run dispatches args[0] to its command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd(ctx, args[1:])
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) health(ctx context.Context, _ []string) error {
	if err := a.adapter.Health(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "ok")
	return err
}

func (a *App) signUp(ctx context.Context, args []string) error {
	var u models.User
	fs := newFlagSet("signup")
	fs.StringVar(&u.Email, "email", "", "")
	fs.StringVar(&u.Password, "password", "", "")
	fs.StringVar(&u.Name, "name", "", "")
	fs.StringVar(&u.LastName, "last-name", "", "")
	fs.StringVar(&u.DateOfBirth, "birth", "", "")
	fs.StringVar(&u.ZipCode, "zip", "", "")
	fs.StringVar(&u.City, "city", "", "")
	fs.StringVar(&u.State, "state", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.adapter.SignUp(ctx, u); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "account created")
	return err
}

func (a *App) signIn(ctx context.Context, args []string) error {
	var email, password string
	fs := newFlagSet("signin")
	fs.StringVar(&email, "email", "", "")
	fs.StringVar(&password, "password", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	auth, err := a.adapter.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	return a.print(auth)
}

func (a *App) changePassword(ctx context.Context, args []string) error {
	var change models.PasswordChange
	fs := newFlagSet("password")
	fs.StringVar(&change.CurrentPassword, "current", "", "")
	fs.StringVar(&change.NewPassword, "new", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.adapter.ChangePassword(ctx, change); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "password changed")
	return err
}

func (a *App) deleteAccount(ctx context.Context, _ []string) error {
	if err := a.adapter.DeleteAccount(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "account deleted")
	return err
}

func (a *App) listCampaigns(ctx context.Context, args []string) error {
	var filter models.CampaignFilter
	fs := newFlagSet("campaigns")
	fs.StringVar(&filter.SearchText, "q", "", "")
	fs.Func("filter", "help method id, repeatable", func(s string) error {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		filter.HelpMethodIDs = append(filter.HelpMethodIDs, id)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return err
	}

	campaigns, err := a.adapter.ListCampaigns(ctx, filter)
	if err != nil {
		return err
	}
	return a.print(campaigns)
}

func (a *App) getCampaign(ctx context.Context, args []string) error {
	id, err := idArg(args, "campaign id")
	if err != nil {
		return err
	}

	campaign, err := a.adapter.GetCampaign(ctx, id)
	if err != nil {
		return err
	}
	return a.print(campaign)
}

func (a *App) listUserCampaigns(ctx context.Context, args []string) error {
	id, err := idArg(args, "user id")
	if err != nil {
		return err
	}

	campaigns, err := a.adapter.ListUserCampaigns(ctx, id)
	if err != nil {
		return err
	}
	return a.print(campaigns)
}

func (a *App) createCampaign(ctx context.Context, args []string) error {
	campaign, err := parseCampaign("create-campaign", args)
	if err != nil {
		return err
	}

	resp, err := a.adapter.CreateCampaign(ctx, campaign)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) updateCampaign(ctx context.Context, args []string) error {
	id, err := idArg(args, "campaign id")
	if err != nil {
		return err
	}

	campaign, err := parseCampaign("update-campaign", args[1:])
	if err != nil {
		return err
	}

	if err = a.adapter.UpdateCampaign(ctx, id, campaign); err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, "campaign updated")
	return err
}

func (a *App) deleteCampaign(ctx context.Context, args []string) error {
	id, err := idArg(args, "campaign id")
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteCampaign(ctx, id); err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, "campaign deleted")
	return err
}

func (a *App) listHelpMethods(ctx context.Context, _ []string) error {
	methods, err := a.adapter.ListHelpMethods(ctx)
	if err != nil {
		return err
	}
	return a.print(methods)
}

func (a *App) addHelpMethod(ctx context.Context, args []string) error {
	var method models.HelpMethod
	fs := newFlagSet("add-method")
	fs.StringVar(&method.Description, "description", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := a.adapter.CreateHelpMethod(ctx, method)
	if err != nil {
		return err
	}
	return a.print(models.IDResponse{ID: id})
}

func (a *App) deleteHelpMethod(ctx context.Context, args []string) error {
	id, err := idArg(args, "help method id")
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteHelpMethod(ctx, id); err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, "help method deleted")
	return err
}

func (a *App) listHelpDone(ctx context.Context, args []string) error {
	id, err := idArg(args, "campaign id")
	if err != nil {
		return err
	}

	records, err := a.adapter.ListHelpDone(ctx, id)
	if err != nil {
		return err
	}
	return a.print(records)
}

func (a *App) donate(ctx context.Context, args []string) error {
	campaignID, err := idArg(args, "campaign id")
	if err != nil {
		return err
	}

	var help models.HelpDone
	fs := newFlagSet("donate")
	fs.Int64Var(&help.MethodID, "method", 0, "")
	fs.StringVar(&help.LogDonation, "log", "", "")
	if err = fs.Parse(args[1:]); err != nil {
		return err
	}

	resp, err := a.adapter.RegisterHelp(ctx, campaignID, help)
	if err != nil {
		return err
	}
	return a.print(resp)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func idArg(args []string, what string) (int64, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return 0, fmt.Errorf("%w: %s", ErrMissingArg, what)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, args[0], err)
	}
	return id, nil
}

func parseCampaign(name string, args []string) (models.Campaign, error) {
	var c models.Campaign
	var methods string
	fs := newFlagSet(name)
	fs.StringVar(&c.Title, "title", "", "")
	fs.StringVar(&c.Description, "description", "", "")
	fs.StringVar(&c.Contact, "contact", "", "")
	fs.StringVar(&methods, "methods", "", "")
	if err := fs.Parse(args); err != nil {
		return models.Campaign{}, err
	}

	c.HelpMethods = []models.HelpMethod{}
	for _, raw := range strings.Split(methods, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.Campaign{}, fmt.Errorf("invalid help method id %q: %w", raw, err)
		}
		c.HelpMethods = append(c.HelpMethods, models.HelpMethod{ID: id})
	}
	return c, nil
}
