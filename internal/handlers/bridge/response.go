package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gabapcia/walletdesk/internal/activewallet"
	"github.com/gabapcia/walletdesk/internal/navigation"
	"github.com/gabapcia/walletdesk/internal/pkg/logger"
	"github.com/gabapcia/walletdesk/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

// ErrMalformedBody is returned when a request body is not valid JSON.
var ErrMalformedBody = errors.New("malformed request body")

type (
	transactionResponse struct {
		ID          string          `json:"id"`
		Sender      string          `json:"sender"`
		Receiver    string          `json:"receiver"`
		Amount      decimal.Decimal `json:"amount"`
		Currency    string          `json:"currency"`
		Description string          `json:"description"`
		Date        time.Time       `json:"date"`
	}

	walletResponse struct {
		Address      string                `json:"address"`
		Name         string                `json:"name"`
		Currency     string                `json:"currency"`
		Amount       decimal.Decimal       `json:"amount"`
		LastUsed     bool                  `json:"lastUsed"`
		Transactions []transactionResponse `json:"transactions"`
	}

	routeResponse struct {
		Route string `json:"route"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

func newWalletResponse(w activewallet.Wallet) walletResponse {
	transactions := make([]transactionResponse, len(w.Transactions))
	for i, t := range w.Transactions {
		transactions[i] = transactionResponse{
			ID:          t.ID,
			Sender:      t.Sender,
			Receiver:    t.Receiver,
			Amount:      t.Amount,
			Currency:    t.Currency,
			Description: t.Description,
			Date:        t.Date,
		}
	}

	return walletResponse{
		Address:      w.Address,
		Name:         w.Name,
		Currency:     w.Currency,
		Amount:       w.Amount,
		LastUsed:     w.LastUsed,
		Transactions: transactions,
	}
}

// statusFromError maps session and navigation errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, activewallet.ErrWalletNotFound),
		errors.Is(err, navigation.ErrNoRouteFound):
		return http.StatusNotFound
	case errors.Is(err, activewallet.ErrNoActiveWallet):
		return http.StatusConflict
	case errors.Is(err, validator.ErrValidationFailed),
		errors.Is(err, navigation.ErrInvalidRoute),
		errors.Is(err, ErrMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, navigation.ErrRouteMismatch):
		return http.StatusRequestTimeout
	case errors.Is(err, activewallet.ErrRemoteFetch),
		errors.Is(err, activewallet.ErrPaymentSubmission),
		errors.Is(err, activewallet.ErrWalletCreation):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(r.Context(), "failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "bridge request failed", "error", err)
	}

	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

// decodeBody reads a JSON body into v. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	return nil
}
