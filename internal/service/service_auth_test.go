package service

import (
	"context"
	"testing"
	"time"

	"github.com/ncastillo/eserbisyo/internal/config"
	"github.com/ncastillo/eserbisyo/internal/crypto"
	"github.com/ncastillo/eserbisyo/internal/logger"
	"github.com/ncastillo/eserbisyo/internal/mock"
	"github.com/ncastillo/eserbisyo/internal/store"
	"github.com/ncastillo/eserbisyo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockOfficialRepository, crypto.Service, *capturingAudit) {
	t.Helper()

	officials := mock.NewMockOfficialRepository(ctrl)
	cryptoSvc := crypto.NewService("vault-master", "field-key", "verify-key")
	audit := &capturingAudit{}

	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "eserbisyo-test",
		TokenDuration: time.Hour,
	}

	svc := NewAuthService(officials, cryptoSvc, audit, cfg, logger.NewLogger("test")).(*authService)

	return svc, officials, cryptoSvc, audit
}

func TestAuthService_LoginOfficial_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, officials, cryptoSvc, audit := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := cryptoSvc.HashPassword("s3cret")
	require.NoError(t, err)

	officials.EXPECT().FindOfficialByUsername(ctx, "treasurer1").Return(models.Official{
		OfficialID:   4,
		Username:     "treasurer1",
		PasswordHash: hash,
		Role:         models.RoleTreasurer,
	}, nil)

	official, token, err := svc.LoginOfficial(ctx, "treasurer1", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(4), official.OfficialID)
	assert.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(4), parsed.Actor.ID)
	assert.Equal(t, models.ActorOfficial, parsed.Actor.Type)
	assert.Equal(t, models.RoleTreasurer, parsed.Actor.Role)

	entries := audit.recorded()
	require.Len(t, entries, 1)
	assert.Equal(t, models.AuditActionLogin, entries[0].Action)
}

func TestAuthService_LoginOfficial_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, officials, cryptoSvc, audit := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := cryptoSvc.HashPassword("s3cret")
	require.NoError(t, err)

	officials.EXPECT().FindOfficialByUsername(ctx, "treasurer1").Return(models.Official{
		OfficialID:   4,
		PasswordHash: hash,
	}, nil)

	_, _, err = svc.LoginOfficial(ctx, "treasurer1", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Empty(t, audit.recorded())
}

func TestAuthService_LoginOfficial_UnknownUserIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, officials, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	officials.EXPECT().FindOfficialByUsername(ctx, "ghost").Return(models.Official{}, store.ErrOfficialNotFound)

	_, _, err := svc.LoginOfficial(ctx, "ghost", "whatever")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_LoginOfficial_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, _, err := svc.LoginOfficial(ctx, "", "pass")
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = svc.LoginOfficial(ctx, "user", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	other := &authService{
		tokenSignKey:  svc.tokenSignKey,
		tokenIssuer:   "someone-else",
		tokenDuration: time.Hour,
		logger:        logger.NewLogger("test"),
	}

	token, err := other.CreateToken(ctx, models.Actor{ID: 1, Type: models.ActorOfficial, Role: models.RoleCaptain})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
