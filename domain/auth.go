package domain

import (
	"context"

	"halaqat/utils"
)

type AuthUseCase interface {
	GetAccessTokenManager() *utils.JWTManager

	// Teacher and parent logins compare the stored password verbatim and
	// return nil on any mismatch, so the HTTP layer cannot leak whether the
	// username or the password was wrong. The string result is the issued
	// access token.
	LoginTeacher(ctx context.Context, username, password string) (*Teacher, string)
	LoginParent(ctx context.Context, username, password string) (*Parent, string)

	// CurrentAccount resolves a verified token subject back to its teacher
	// or parent. Returns nil when the account no longer exists.
	CurrentAccount(ctx context.Context, subject, role string) any
}
