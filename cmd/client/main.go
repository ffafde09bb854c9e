// Command client is a small CLI for poking a running route-tracker
// server: register or log in, create a route, list routes, update a
// status, and print driver statistics.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/routeops/route-tracker/internal/client"
	"github.com/routeops/route-tracker/internal/logger"
	"github.com/routeops/route-tracker/models"
)

func main() {
	var (
		baseURL  = flag.String("server", "http://localhost:3000", "Server base URL")
		action   = flag.String("action", "health", "One of: health, register, login, me, create-route, list-routes, update-status, stats")
		email    = flag.String("email", "", "Account email (register, login)")
		password = flag.String("password", "", "Account password (register, login)")
		name     = flag.String("name", "", "Driver name (register) or route name (create-route)")
		company  = flag.String("company", "", "Company (register)")
		token    = flag.String("token", "", "Bearer token (authenticated actions)")
		routeID  = flag.String("route", "", "Route ID (update-status)")
		status   = flag.String("status", "", "New route status (update-status)")
	)
	flag.Parse()

	log := logger.NewLogger("route-tracker-client")

	api := client.New(client.Config{BaseURL: *baseURL, Timeout: 15 * time.Second})
	api.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := runAction(ctx, api, *action, actionArgs{
		email:    *email,
		password: *password,
		name:     *name,
		company:  *company,
		routeID:  *routeID,
		status:   *status,
	})
	if err != nil {
		log.Fatal().Err(err).Str("action", *action).Msg("action failed")
	}

	printJSON(result)

	if t := api.Token(); t != "" && *token == "" {
		fmt.Fprintf(os.Stderr, "token: %s\n", t)
	}
}

type actionArgs struct {
	email    string
	password string
	name     string
	company  string
	routeID  string
	status   string
}

func runAction(ctx context.Context, api *client.Client, action string, args actionArgs) (any, error) {
	switch action {
	case "health":
		return api.Health(ctx)
	case "register":
		return api.Register(ctx, models.RegisterRequest{
			Email:    args.email,
			Password: args.password,
			Name:     args.name,
			Company:  args.company,
		})
	case "login":
		return api.Login(ctx, models.LoginRequest{
			Email:    args.email,
			Password: args.password,
		})
	case "me":
		return api.CurrentUser(ctx)
	case "create-route":
		return api.CreateRoute(ctx, models.CreateRouteRequest{Name: args.name})
	case "list-routes":
		return api.ListRoutes(ctx)
	case "update-status":
		return api.UpdateRouteStatus(ctx, args.routeID, args.status)
	case "stats":
		return api.Stats(ctx)
	default:
		return nil, fmt.Errorf("unknown action %q", action)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error encoding result: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
