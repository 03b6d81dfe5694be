package bridge

import (
	"net/http"

	"github.com/gabapcia/walletdesk/internal/activewallet"
	"github.com/gabapcia/walletdesk/internal/navigation"

	"github.com/go-chi/chi/v5"
)

type (
	createWalletRequest struct {
		Name     string `json:"name"`
		Currency string `json:"currency"`
	}

	reloadRequest struct {
		Initial bool `json:"initial"`
	}

	searchRequest struct {
		Term string `json:"term"`
	}

	paymentRequest struct {
		Receiver    string `json:"receiver"`
		Amount      string `json:"amount"`
		Description string `json:"description"`
	}

	routeRequest struct {
		Route string `json:"route"`
		URL   string `json:"url"`
	}
)

// route returns the requested route, extracting it from URL when Route is empty.
func (req routeRequest) route() string {
	if req.Route == "" && req.URL != "" {
		return navigation.RouteFromURL(req.URL)
	}
	return req.Route
}

// respondState writes the session state, or err when it is not nil.
func (s *server) respondState(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, s.session.State())
}

func (s *server) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, s.session.State())
}

func (s *server) listWallets(w http.ResponseWriter, r *http.Request) {
	wallets := s.session.Wallets()

	resp := make([]walletResponse, len(wallets))
	for i, wallet := range wallets {
		resp[i] = newWalletResponse(wallet)
	}

	writeJSON(w, r, http.StatusOK, resp)
}

func (s *server) loadWallets(w http.ResponseWriter, r *http.Request) {
	s.respondState(w, r, s.session.LoadWallets(r.Context()))
}

func (s *server) createWallet(w http.ResponseWriter, r *http.Request) {
	var req createWalletRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	err := s.session.CreateWallet(r.Context(), activewallet.NewWallet{
		Name:     req.Name,
		Currency: req.Currency,
	})
	s.respondState(w, r, err)
}

func (s *server) getActiveWallet(w http.ResponseWriter, r *http.Request) {
	wallet, ok := s.session.ActiveWallet()
	if !ok {
		writeError(w, r, activewallet.ErrNoActiveWallet)
		return
	}

	writeJSON(w, r, http.StatusOK, newWalletResponse(wallet))
}

func (s *server) selectWallet(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	s.respondState(w, r, s.session.SelectWallet(r.Context(), address))
}

func (s *server) reloadTransactions(w http.ResponseWriter, r *http.Request) {
	var req reloadRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	s.respondState(w, r, s.session.LoadActiveWalletTransactions(r.Context(), req.Initial))
}

func (s *server) searchTransactions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	s.respondState(w, r, s.session.SetSearchTerm(r.Context(), req.Term))
}

func (s *server) loadMoreTransactions(w http.ResponseWriter, r *http.Request) {
	s.respondState(w, r, s.session.LoadMoreTransactions(r.Context()))
}

func (s *server) sendMoney(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	err := s.session.SendMoney(r.Context(), activewallet.PaymentDetails{
		Receiver:    req.Receiver,
		Amount:      req.Amount,
		Description: req.Description,
	})
	s.respondState(w, r, err)
}

func (s *server) getRoute(w http.ResponseWriter, r *http.Request) {
	route, err := s.navigation.CurrentRoute(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse{Route: route})
}

func (s *server) navigate(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	route := req.route()
	if err := s.navigation.NavigateTo(r.Context(), route); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse{Route: route})
}

func (s *server) waitForRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	route := req.route()
	if err := s.navigation.WaitUntilRouteEquals(r.Context(), route); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse{Route: route})
}
