// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"skillroots/internal/feature/auth/domain/entity"
)

const (
	// DefaultSessionTTL はセッションの既定の有効期間です。
	DefaultSessionTTL = 7 * 24 * time.Hour
	// sessionIDBytes はセッションIDのバイト長です（16進数で64文字）。
	sessionIDBytes = 32
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Register はメールアドレスを正規化してユーザーを登録します。
	// 既に登録済みの場合、ErrUserExistsを返します。
	Register(ctx context.Context, name, email string) (*entity.User, error)

	// FindByEmail は正規化したメールアドレスでユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// TokenGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type TokenGenerator interface {
	// GenerateToken は指定されたセッションの署名済みJWTトークンを生成します。
	GenerateToken(sessionID, email string) (string, error)
}

// LoginResult はログイン成功時の結果です。
type LoginResult struct {
	Token     string
	User      entity.User
	SessionID string
	ExpiresAt time.Time
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     TokenGenerator
	sessionTTL time.Duration
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// sessionTTLが0以下の場合はDefaultSessionTTLを使用します。
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenGenerator, sessionTTL time.Duration) *authUsecase {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// validateRegistration は登録入力を検証します。
func validateRegistration(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	trimmed := strings.TrimSpace(email)
	addr, err := mail.ParseAddress(trimmed)
	// 表示名やコメント付きの形式はユーザーキーにしない
	if err != nil || addr.Address != trimmed {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
	}
	return nil
}

// Register は新規ユーザーを登録します。
// メールアドレスは大文字小文字を区別せず、既存ユーザーと重複する場合はErrUserExistsを返します。
func (u *authUsecase) Register(ctx context.Context, name, email string) (*entity.User, error) {
	if err := validateRegistration(name, email); err != nil {
		return nil, err
	}
	return u.users.Register(ctx, strings.TrimSpace(name), email)
}

// Login はメールアドレスでユーザーを検索し、セッションとJWTトークンを発行します。
// ユーザーが存在しない場合、ErrUserNotFoundを返します。
func (u *authUsecase) Login(ctx context.Context, email string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	id, err := newSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}
	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserEmail: user.Email,
		UserName:  user.Name,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := u.tokens.GenerateToken(session.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		User:      *user,
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout はセッションを削除します。存在しないセッションは成功として扱います。
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}
	return nil
}

// CurrentUser はセッションに紐づくユーザーを返します。
func (u *authUsecase) CurrentUser(ctx context.Context, sessionID string) (*entity.User, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}
	user := session.User()
	return &user, nil
}

// newSessionID はランダムな64文字の16進数文字列を生成します。
func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
