// Package identity issues and verifies anonymous user tokens.
package identity

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/bool64/ctxd"
	"github.com/go-chi/jwtauth/v5"
	"github.com/todo-task-journal/tasks-api/internal/domain/user"
)

// Verification errors, messages are exposed to clients as is.
var (
	ErrAccessDenied = errors.New("Access denied.") //nolint:stylecheck // Public message.
	ErrInvalidToken = errors.New("Invalid token")  //nolint:stylecheck // Public message.
)

// DefaultTTL is a default token lifetime.
const DefaultTTL = time.Hour

const userIDClaim = "userId"

var _ user.TokenIssuer = &Provider{}

// Provider issues HS256 tokens carrying random user id.
//
// Provider is stateless, tokens are not stored and the secret is never rotated.
type Provider struct {
	auth   *jwtauth.JWTAuth
	ttl    time.Duration
	now    func() time.Time
	logger ctxd.Logger
}

// NewProvider creates token provider with signing secret.
func NewProvider(secret []byte, ttl time.Duration, logger ctxd.Logger) *Provider {
	if ttl == 0 {
		ttl = DefaultTTL
	}

	if logger == nil {
		logger = ctxd.NoOpLogger{}
	}

	return &Provider{
		auth:   jwtauth.New("HS256", secret, nil),
		ttl:    ttl,
		now:    time.Now,
		logger: logger,
	}
}

// TokenIssuer is a service provider.
func (p *Provider) TokenIssuer() user.TokenIssuer {
	return p
}

// IssueToken creates token for a new anonymous user.
func (p *Provider) IssueToken(ctx context.Context) (string, error) {
	userID := newUserID()

	claims := map[string]interface{}{userIDClaim: userID}
	jwtauth.SetExpiry(claims, p.now().Add(p.ttl))

	_, token, err := p.auth.Encode(claims)
	if err != nil {
		return "", ctxd.WrapError(ctx, err, "failed to sign token")
	}

	p.logger.Debug(ctx, "token issued", "userId", userID)

	return token, nil
}

// Verify returns user id from a valid token.
func (p *Provider) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrAccessDenied
	}

	t, err := jwtauth.VerifyToken(p.auth, token)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	userID, ok := t.PrivateClaims()[userIDClaim].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}

// Middleware rejects requests without valid bearer token with 403 and plain text message.
//
// Verified user id is available downstream with user.IDFromContext.
func (p *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := p.Verify(jwtauth.TokenFromHeader(r))
		if err != nil {
			p.logger.Debug(r.Context(), "token rejected", "error", err.Error())

			msg := ErrInvalidToken.Error()
			if errors.Is(err, ErrAccessDenied) {
				msg = ErrAccessDenied.Error()
			}

			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(msg))

			return
		}

		ctx := ctxd.AddFields(user.WithID(r.Context(), userID), "userId", userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newUserID() string {
	return "user_" + strconv.FormatUint(rand.Uint64()>>1, 36)
}
