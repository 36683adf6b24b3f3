package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/projstat/internal/projstat"
	"github.com/idelchi/projstat/internal/report"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func newServeCmd(v *viper.Viper, f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [path]",
		Short: "Serve project statistics over HTTP",
		Long: heredoc.Doc(`
			Serve the statistics of a project directory over HTTP. Every request scans
			the directory again, so the report always reflects the current state.

			Endpoints:
			  GET /           HTML report
			  GET /api/stat   JSON document with options and statistics
			  GET /healthz    liveness probe
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := buildOptions(v, f, args)
			if err != nil {
				return err
			}

			// Fail before listening when the profile or types are invalid.
			if _, err := options.Configuration(); err != nil {
				return err
			}

			if !options.Debug {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, v.GetString(serveAddrKey), newRouter(options))
		},
	}

	cmd.Flags().String("addr", defaultServeAddr, "Listen address")
	bindFlagToConfig(v, cmd.Flags().Lookup("addr"), serveAddrKey)

	return cmd
}

// serve runs the HTTP server until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		slog.Info("serving project statistics", "addr", addr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		slog.Info("shutting down", "addr", addr)

		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// statHandler scans the project on every request.
type statHandler struct {
	options projstat.Options
}

func newRouter(options projstat.Options) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(), gin.Recovery())

	h := statHandler{options: options}

	router.GET("/", h.html)
	router.GET("/api/stat", h.json)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// document builds a fresh configuration and scans the project. On failure it
// answers 500 and returns false.
func (h statHandler) document(c *gin.Context) (report.Document, bool) {
	cfg, err := h.options.Configuration()
	if err == nil {
		var stat *projstat.ProjectStat

		stat, err = projstat.Scan(c.Request.Context(), h.options.Path, cfg)
		if err == nil {
			return report.Document{Options: cfg, Stat: projstat.Finalize(stat)}, true
		}
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

	return report.Document{}, false
}

func (h statHandler) html(c *gin.Context) {
	doc, ok := h.document(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.PrintHTML(doc, &buf); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h statHandler) json(c *gin.Context) {
	doc, ok := h.document(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, doc)
}

// requestLogger logs one record per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"size", c.Writer.Size(),
		}

		if len(c.Errors) > 0 {
			slog.Warn("request failed", append(attrs, "error", c.Errors.String())...)

			return
		}

		slog.Info("request", attrs...)
	}
}
