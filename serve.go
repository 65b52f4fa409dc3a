package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/forgoes/gilbert/api"
	"github.com/forgoes/gilbert/api/admin"
	"github.com/forgoes/gilbert/api/slack"
	"github.com/forgoes/gilbert/runtime"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(flags *runtime.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Slack bot and its HTTP endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), flags)
		},
	}
}

func newRouter(rt *runtime.Runtime) *gin.Engine {
	if rt.Config.Mode.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	router.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "OK")
	})
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, nil)
	})
	if rt.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(rt.Registry, promhttp.HandlerOpts{})))
	}

	r := router.Group("/api")
	{
		r.POST("/slack/events", api.Wrap(slack.Events, rt, false, api.WithDataType(api.DataTypeJson)))

		// the admin API only exists with a signing key
		if rt.Config.Jwt.Key != "" {
			r.GET("/memory", api.Wrap(admin.Memory, rt, true))
			r.GET("/clients", api.Wrap(admin.Clients, rt, true))
			r.GET("/clients/:name/onboarding", api.Wrap(admin.Onboarding, rt, true))
		}
	}

	return router
}

func httpServer(rt *runtime.Runtime) *http.Server {
	addr := fmt.Sprintf("%s:%d", rt.Config.HTTP.Host, rt.Config.HTTP.Port)
	return &http.Server{
		Addr:              addr,
		Handler:           newRouter(rt),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func listen(rt *runtime.Runtime, hs *http.Server) error {
	var err error
	if rt.Config.HTTP.TLS {
		rt.Logger.Info("https server listening", "addr", hs.Addr)
		err = hs.ListenAndServeTLS(rt.Config.HTTP.Crt, rt.Config.HTTP.Key)
	} else {
		rt.Logger.Info("http server listening", "addr", hs.Addr)
		err = hs.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func shutdown(rt *runtime.Runtime, hs *http.Server) error {
	rt.Logger.Info("[exit] shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(ctx); err != nil {
		return fmt.Errorf("close http server: %w", err)
	}

	ctx, cancel = context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := rt.Wait(ctx); err != nil {
		rt.Logger.Warn("[exit] handlers still running", "error", err)
	}
	if err := rt.Close(ctx); err != nil {
		return fmt.Errorf("close runtime: %w", err)
	}

	rt.Logger.Info("[exit] shutdown successfully")
	return nil
}

func serve(parent context.Context, flags *runtime.Flags) error {
	if parent == nil {
		parent = context.Background()
	}
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := runtime.New(ctx, flags)
	if err != nil {
		return err
	}

	if rt.Config.Jwt.Key == "" {
		rt.Logger.Warn("JWT_KEY is not set, admin API disabled")
	}

	hs := httpServer(rt)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return listen(rt, hs)
	})
	if rt.Config.Slack.SocketMode {
		g.Go(func() error {
			err := slack.RunSocketMode(gctx, rt)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(rt, hs)
	})

	return g.Wait()
}
