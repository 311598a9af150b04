package iserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/cute-angelia/go-xrand/components/iregistry"
	"github.com/cute-angelia/go-xrand/syntax/irandom"
	"github.com/cute-angelia/go-xrand/syntax/isource"
	"github.com/cute-angelia/go-xrand/utils/http/apiV3"
	"github.com/cute-angelia/go-xrand/utils/ilog"
)

const name = "server"

// Server 随机数 REST 服务
type Server struct {
	opts      options
	reg       *iregistry.Registry
	newSource func() isource.Source
	limiter   *rate.Limiter
	router    chi.Router
	log       zerolog.Logger
	apiOpts   []apiV3.Option
}

// New newSource 每个请求调用一次，返回的源只在该请求内使用
func New(reg *iregistry.Registry, newSource func() isource.Source, opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Server{
		opts:      o,
		reg:       reg,
		newSource: newSource,
		log:       ilog.Component(name),
	}
	if o.log != nil {
		s.log = *o.log
	}
	if o.rate > 0 {
		burst := o.burst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(o.rate), burst)
	}
	s.apiOpts = []apiV3.Option{apiV3.WithLog(o.logOn), apiV3.WithLogger(s.log)}
	s.router = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.recoverer)
	if s.opts.timeout > 0 {
		r.Use(middleware.Timeout(s.opts.timeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apiV3.NewApi(w, r, s.apiOpts...).Error(apiV3.NewApiErrorf(apiV3.CodeNotFound, "%s %s: not found", r.Method, r.URL.Path))
	})
	r.Get("/healthz", s.healthz)

	r.Route("/v1", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.rateLimit)
		}
		r.Get("/int", s.intHandler)
		r.Post("/pattern", s.patternHandler)
		r.Post("/unique", s.uniqueHandler)
		r.Post("/registry/{ns}/mint", s.mintHandler)

		r.Group(func(r chi.Router) {
			if s.opts.cacheTTL > 0 {
				r.Use(apiV3.CachedGet(512, s.opts.cacheTTL))
			}
			r.Get("/letters", s.lettersHandler)
			r.Get("/registry/{ns}", s.countHandler)
		})
	})

	return r
}

func (s *Server) rand() *irandom.Rand {
	return irandom.New(s.newSource())
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			apiV3.NewApi(w, r, s.apiOpts...).Error(apiV3.NewApiError(apiV3.CodeTooMany, "rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverer 与 middleware.Recoverer 相同，但输出统一的 JSON 格式
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				s.log.Error().
					Str("request_id", middleware.GetReqID(r.Context())).
					Interface("panic", rvr).
					Msg("recovered")
				apiV3.NewApi(w, r, s.apiOpts...).Error(errors.Errorf("internal error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe 阻塞直到 ctx 结束或监听失败，ctx 结束后优雅关闭
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "iserver: listen %s", addr)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "iserver: serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "iserver: shutdown")
	}
	return nil
}
