package ports

import (
	"context"

	"github.com/globalcargo/cargo-console/internal/core/domain"
)

// Lister fetches the full collection of a resource.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// ResourceGateway is the list/create/update binding of one REST resource.
// Update is a full-record overwrite (PUT), never a partial patch.
type ResourceGateway[T any] interface {
	Lister[T]
	Create(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, id domain.ID, full T) (T, error)
}

// Deleter is implemented only by resources that support hard deletion.
type Deleter interface {
	Delete(ctx context.Context, id domain.ID) error
}

// DeletableGateway is a ResourceGateway that also deletes.
type DeletableGateway[T any] interface {
	ResourceGateway[T]
	Deleter
}

// Credentials supplies the bearer token of one session and the hook used
// to obtain a new one after a 401.
type Credentials interface {
	Token(ctx context.Context) string
	Refresh(ctx context.Context) (string, error)
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    *domain.User `json:"user"`
}

// RegisterInput mirrors the registration form.
type RegisterInput struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required"`
	LastName  string `json:"lastName"  form:"lastName"  validate:"required"`
	Email     string `json:"email"     form:"email"     validate:"required,email"`
	Password  string `json:"password"  form:"password"  validate:"required"`
}

// RegisterResult is returned by the registration endpoint. The account
// always starts with the normal role.
type RegisterResult struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Message string `json:"message"`
	Role    string `json:"role"`
}

// AuthGateway covers the unauthenticated account endpoints.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	RefreshToken(ctx context.Context, refresh string) (string, error)
}
