package service

import (
	"context"
	"errors"

	"github.com/fnlab/domainfn"
	"github.com/fnlab/domainfn/pkg/log"
	"github.com/fnlab/domainfn/schema"
)

// SignupInput is the untrusted payload of an account signup.
type SignupInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RequestEnv is the ambient context every request carries: the
// caller's locale and role, derived from headers rather than the body.
type RequestEnv struct {
	Locale string `json:"locale" validate:"required,min=2"`
	Role   string `json:"role" validate:"omitempty,oneof=member admin"`
}

// Service exposes the account operations as domain functions. Each
// method builds a stateless function; the service itself only carries
// the store and logger they close over.
type Service struct {
	store  *Store
	logger log.Logger
}

// NewService creates a Service. A nil logger disables observation.
func NewService(store *Store, logger log.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateAccount validates a signup and inserts the account. A
// duplicate email surfaces as a field error on the email path, the
// same channel static validation uses.
func (s *Service) CreateAccount() domainfn.DomainFunction[Account] {
	df := domainfn.MakeDomainFunction(schema.Struct[SignupInput](), schema.Struct[RequestEnv](),
		func(ctx context.Context, in SignupInput, env RequestEnv) (Account, error) {
			account, err := s.store.CreateAccount(ctx, in.Name, in.Email, in.Password, env.Locale)
			if errors.Is(err, ErrEmailTaken) {
				return Account{}, domainfn.NewInputError("is already registered", "email")
			}
			if err != nil {
				return Account{}, err
			}
			return account, nil
		})
	return domainfn.Observe(df, s.logger, "create_account")
}

// ListAccounts returns every account. Only admins may list; a
// non-admin caller gets an environment-scoped field error.
func (s *Service) ListAccounts() domainfn.DomainFunction[[]Account] {
	df := domainfn.MakeDomainFunction(schema.Any(), schema.Struct[RequestEnv](),
		func(ctx context.Context, _ any, env RequestEnv) ([]Account, error) {
			if env.Role != "admin" {
				return nil, domainfn.NewEnvironmentError("requires the admin role", "role")
			}
			return s.store.ListAccounts(ctx)
		})
	return domainfn.Observe(df, s.logger, "list_accounts")
}

// Overview aggregates independent admin queries concurrently with
// Collect: the account list and the total count run as siblings
// against the same request environment.
func (s *Service) Overview() domainfn.DomainFunction[map[string]any] {
	total := domainfn.MakeDomainFunction(schema.Any(), schema.Struct[RequestEnv](),
		func(ctx context.Context, _ any, env RequestEnv) (any, error) {
			if env.Role != "admin" {
				return nil, domainfn.NewEnvironmentError("requires the admin role", "role")
			}
			n, err := s.store.CountAccounts(ctx)
			if err != nil {
				return nil, err
			}
			return n, nil
		})
	df := domainfn.Collect(map[string]domainfn.UntypedDomainFunction{
		"accounts": s.ListAccounts().Untyped(),
		"total":    total,
	})
	return domainfn.Observe(df, s.logger, "overview")
}
