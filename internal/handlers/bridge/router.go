package bridge

import (
	"net/http"
	"time"

	"github.com/gabapcia/walletdesk/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// requestTimeout bounds a single bridge request, including backend calls and route waits.
const requestTimeout = 60 * time.Second

func (s *server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/state", s.getState)

	r.Route("/wallets", func(r chi.Router) {
		r.Get("/", s.listWallets)
		r.Post("/", s.createWallet)
		r.Post("/load", s.loadWallets)
		r.Get("/active", s.getActiveWallet)
		r.Post("/{address}/select", s.selectWallet)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/reload", s.reloadTransactions)
		r.Post("/search", s.searchTransactions)
		r.Post("/more", s.loadMoreTransactions)
	})

	r.Post("/payments", s.sendMoney)

	r.Route("/route", func(r chi.Router) {
		r.Get("/", s.getRoute)
		r.Post("/", s.navigate)
		r.Post("/wait", s.waitForRoute)
	})

	return r
}

// requestLogger logs every request once it has been served.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx := logger.Derive(r.Context(), "http.request_id", middleware.GetReqID(r.Context()))
		r = r.WithContext(ctx)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		logger.Info(ctx, "http request",
			"http.method", r.Method,
			"http.path", r.URL.Path,
			"http.status", ww.Status(),
			"http.duration", time.Since(start),
		)
	})
}
