package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"webcarros/internal/domain/entity"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken resolves a bearer token into the caller's Identity. The display
// name rides along in the token claims; it is stamped onto listings as the
// seller-facing owner field.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (entity.Identity, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return entity.Identity{}, err
	}

	ident := entity.Identity{
		UID:           result.UID,
		Authenticated: true,
	}
	if name, ok := result.Claims["name"].(string); ok {
		ident.DisplayName = name
	}

	return ident, nil
}
