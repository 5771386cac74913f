package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/indigo-web/facets/config"
	"github.com/indigo-web/facets/facets/previous"
	"github.com/indigo-web/facets/http/status"
	"github.com/indigo-web/facets/rq"
	"github.com/indigo-web/facets/rs"
	"github.com/indigo-web/facets/serve"
	"github.com/indigo-web/facets/tk"
)

func main() {
	cfg := config.Default()
	flag.StringVar(&cfg.NET.Addr, "addr", cfg.NET.Addr, "address to listen on")
	flag.StringVar(&cfg.Previous.CookieName, "cookie", cfg.Previous.CookieName, "previous location cookie name")
	flag.DurationVar(&cfg.NET.ReadTimeout, "read-timeout", cfg.NET.ReadTimeout, "idle connection timeout")
	jsonLogs := flag.Bool("json", false, "log in JSON")
	flag.Parse()

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if *jsonLogs {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}

	logger := slog.New(handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	take := previous.New(tk.Fallback(app(cfg)), previous.WithConfig(cfg.Previous))
	err := serve.New(cfg, logger, take).ListenAndServe(ctx)
	if err != nil && !errors.Is(err, serve.ErrShutdown) {
		logger.Error("server stopped", slog.Group("error", slog.String("message", err.Error())))
		os.Exit(1)
	}
}

// app greets on /, by the name cookie if there's one, and on /remember?to=/somewhere
// makes the very next request bounce to /somewhere.
func app(cfg *config.Config) tk.Take {
	return tk.Func(func(request rq.Request) (rs.Response, error) {
		_, target, _ := strings.Cut(rq.Line(request), " ")
		target, _, _ = strings.Cut(target, " ")

		uri, err := url.ParseRequestURI(target)
		if err != nil {
			return nil, status.ErrBadRequest
		}

		switch uri.Path {
		case "/":
			name, found := rq.Cookies(request).Get("name")
			if !found || len(name) == 0 {
				name = "stranger"
			}

			return rs.Text(rs.WithBody(rs.Empty(), "hello, "+name+"\n"))
		case "/remember":
			location := uri.Query().Get("to")
			if len(location) == 0 || !strings.HasPrefix(location, "/") {
				return nil, status.ErrBadRequest
			}

			resp, err := rs.Text(rs.WithBody(rs.Empty(), "remembered "+location+"\n"))
			if err != nil {
				return nil, err
			}

			return previous.Remember(resp, location, previous.WithConfig(cfg.Previous))
		default:
			return nil, status.ErrNotFound
		}
	})
}
