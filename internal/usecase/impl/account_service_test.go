package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "bookmark/internal/domain/errors"
	"bookmark/internal/usecase"
)

func registerTestUser(t *testing.T, fx accountServiceFixtures, email string) *usecase.RegisterInput {
	t.Helper()

	input := &usecase.RegisterInput{
		FirstName: "Test",
		LastName:  "Reader",
		Email:     email,
		Password:  "Password123!",
	}
	_, err := fx.service.Register(context.Background(), input)
	require.NoError(t, err)

	return input
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FirstName: "Test",
		LastName:  "Reader",
		Email:     "reader@example.com",
		Password:  "Password123!",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "reader@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "Password123!", "plaintext must never be persisted")
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	registerTestUser(t, fx, "reader@example.com")

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "reader@example.com",
		Password: "AnotherPassword!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	input := registerTestUser(t, fx, "reader@example.com")

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, input.Email, output.User.Email)

	identity, err := fx.tokenService.Verify(output.Token)
	require.NoError(t, err)
	assert.Equal(t, output.User.ID, identity.UserID)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	registerTestUser(t, fx, "reader@example.com")

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "reader@example.com",
		Password: "wrong password",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Same error as a wrong password, so the endpoint cannot be used to
	// probe which emails are registered.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_GetProfile(t *testing.T) {
	fx := createTestAccountService(t)
	input := registerTestUser(t, fx, "reader@example.com")
	ctx := context.Background()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: input.Email, Password: input.Password})
	require.NoError(t, err)

	user, err := fx.service.GetProfile(ctx, output.User.ID)
	require.NoError(t, err)
	assert.Equal(t, input.Email, user.Email)

	_, err = fx.service.GetProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_DeleteAccount(t *testing.T) {
	fx := createTestAccountService(t)
	input := registerTestUser(t, fx, "reader@example.com")
	ctx := context.Background()

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: input.Email, Password: input.Password})
	require.NoError(t, err)

	err = fx.service.DeleteAccount(ctx, output.User.ID, "wrong password")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	require.NoError(t, fx.service.DeleteAccount(ctx, output.User.ID, input.Password))

	_, err = fx.service.GetProfile(ctx, output.User.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
