package middleware

import (
	"context"
	"net/http"

	"github.com/asistenciapp/attendance-backend-go/internal/config"
	"github.com/asistenciapp/attendance-backend-go/internal/domain/auth"
	"github.com/asistenciapp/attendance-backend-go/internal/handler/http/response"
)

type terminalBranchKey struct{}

// TerminalRequired authenticates check-in terminals via the X-Terminal-Token
// header. A token from the branch-scoped map puts its branch id in the
// request context; the legacy branchless token passes with no branch, and the
// employee's own affiliation decides the branch downstream.
func TerminalRequired(cfg config.TerminalConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Terminal-Token")
			if token == "" {
				response.HandleError(w, auth.ErrTerminalToken)
				return
			}

			if branchID, ok := cfg.Tokens[token]; ok {
				ctx := context.WithValue(r.Context(), terminalBranchKey{}, branchID)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			if cfg.Token != "" && token == cfg.Token {
				next.ServeHTTP(w, r)
				return
			}

			response.HandleError(w, auth.ErrTerminalToken)
		})
	}
}

// TerminalBranchID returns the branch the authenticated terminal is bound
// to, or "" for a legacy branchless terminal.
func TerminalBranchID(ctx context.Context) string {
	branchID, _ := ctx.Value(terminalBranchKey{}).(string)
	return branchID
}
