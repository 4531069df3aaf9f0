package usecase

import (
	"context"
	"testing"
	"time"

	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/infrastructure/security"
	"vip_mudancas/internal/usecase/interfaces"
	mock_interfaces "vip_mudancas/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

type stubTokens struct {
	issued []string
	err    error
}

func (s *stubTokens) Issue(userID string) (string, error) {
	s.issued = append(s.issued, userID)
	return "token-" + userID, s.err
}

func newAuthFixture(t *testing.T) (*AuthUseCase, *mock_interfaces.MockIUserRepository, *mock_interfaces.MockIUserActivityRepository, *stubTokens, *fakeMetrics) {
	ctrl := gomock.NewController(t)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	activities := mock_interfaces.NewMockIUserActivityRepository(ctrl)
	tokens := &stubTokens{}
	metrics := &fakeMetrics{}
	uc := NewAuthUseCase(users, activities, tokens, metrics)
	uc.now = func() time.Time { return fixedNow }
	return uc, users, activities, tokens, metrics
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return hash
}

func TestAuthUseCase_Login(t *testing.T) {
	client := Actor{IPAddress: "10.0.0.9", UserAgent: "curl/8"}
	hash := mustHash(t, "s3nha")

	t.Run("missing fields", func(t *testing.T) {
		uc, _, _, _, _ := newAuthFixture(t)
		_, err := uc.Login(context.Background(), client, "", "x")
		if !errors.Is(err, ErrCampoObrigatorio) {
			t.Fatalf("expected ErrCampoObrigatorio, got %v", err)
		}
	})

	t.Run("invalid cpf shape", func(t *testing.T) {
		uc, _, _, _, _ := newAuthFixture(t)
		_, err := uc.Login(context.Background(), client, "111.111.111-11", "x")
		if !errors.Is(err, ErrCPFInvalido) {
			t.Fatalf("expected ErrCPFInvalido, got %v", err)
		}
	})

	t.Run("unknown cpf", func(t *testing.T) {
		uc, users, _, _, metrics := newAuthFixture(t)
		users.EXPECT().GetByCPF(gomock.Any(), "12345678901").Return(entities.User{}, nil)
		_, err := uc.Login(context.Background(), client, "123.456.789-01", "s3nha")
		if !errors.Is(err, ErrCredenciaisInvalidas) {
			t.Fatalf("expected ErrCredenciaisInvalidas, got %v", err)
		}
		if len(metrics.logins) != 1 || metrics.logins[0] {
			t.Fatalf("expected failed login metric, got %v", metrics.logins)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, users, _, _, _ := newAuthFixture(t)
		users.EXPECT().GetByCPF(gomock.Any(), "12345678901").Return(entities.User{ID: "u1", PasswordHash: hash, Active: true}, nil)
		_, err := uc.Login(context.Background(), client, "12345678901", "errada")
		if !errors.Is(err, ErrCredenciaisInvalidas) {
			t.Fatalf("expected ErrCredenciaisInvalidas, got %v", err)
		}
	})

	t.Run("inactive user", func(t *testing.T) {
		uc, users, _, _, _ := newAuthFixture(t)
		users.EXPECT().GetByCPF(gomock.Any(), "12345678901").Return(entities.User{ID: "u1", PasswordHash: hash}, nil)
		_, err := uc.Login(context.Background(), client, "12345678901", "s3nha")
		if !errors.Is(err, ErrUsuarioInativo) {
			t.Fatalf("expected ErrUsuarioInativo, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, users, activities, tokens, metrics := newAuthFixture(t)
		user := entities.User{ID: "u1", CPF: "12345678901", PasswordHash: hash, Active: true, Name: "Ana"}
		users.EXPECT().GetByCPF(gomock.Any(), "12345678901").Return(user, nil)
		users.EXPECT().UpdateLastLogin(gomock.Any(), "u1", fixedNow).DoAndReturn(
			func(_ context.Context, _ string, at time.Time) (entities.User, error) {
				out := user
				out.LastLogin = &at
				return out, nil
			},
		)
		activities.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.UserActivity) (entities.UserActivity, error) {
				if a.Action != entities.ActionLogin || a.UserID != "u1" || a.IPAddress != "10.0.0.9" || a.UserAgent != "curl/8" {
					t.Fatalf("unexpected activity: %+v", a)
				}
				return a, nil
			},
		)

		res, err := uc.Login(context.Background(), client, "123.456.789-01", "s3nha")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AccessToken != "token-u1" || res.User.LastLogin == nil {
			t.Fatalf("unexpected result %+v", res)
		}
		if len(tokens.issued) != 1 || len(metrics.logins) != 1 || !metrics.logins[0] {
			t.Fatalf("unexpected side effects tokens=%v logins=%v", tokens.issued, metrics.logins)
		}
	})
}

func TestAuthUseCase_Register(t *testing.T) {
	client := Actor{IPAddress: "10.0.0.9"}
	in := RegisterInput{CPF: "123.456.789-01", Password: "s3nha", Name: "Bia", Email: "bia@example.com"}

	t.Run("invalid role", func(t *testing.T) {
		uc, _, _, _, _ := newAuthFixture(t)
		bad := in
		bad.Role = "root"
		_, err := uc.Register(context.Background(), client, bad)
		if !errors.Is(err, ErrRoleInvalida) {
			t.Fatalf("expected ErrRoleInvalida, got %v", err)
		}
	})

	t.Run("cpf taken", func(t *testing.T) {
		uc, users, _, _, _ := newAuthFixture(t)
		users.EXPECT().GetByCPF(gomock.Any(), "12345678901").Return(entities.User{ID: "u1"}, nil)
		_, err := uc.Register(context.Background(), client, in)
		if !errors.Is(err, ErrCPFJaCadastrado) {
			t.Fatalf("expected ErrCPFJaCadastrado, got %v", err)
		}
	})

	t.Run("cpf taken concurrently", func(t *testing.T) {
		uc, users, _, _, _ := newAuthFixture(t)
		users.EXPECT().GetByCPF(gomock.Any(), "12345678901").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.User{}, errors.Mark(errors.New("tx cancelled"), interfaces.ErrDuplicateKey))
		_, err := uc.Register(context.Background(), client, in)
		if !errors.Is(err, ErrCPFJaCadastrado) {
			t.Fatalf("expected ErrCPFJaCadastrado, got %v", err)
		}
	})

	t.Run("success defaults role", func(t *testing.T) {
		uc, users, activities, _, _ := newAuthFixture(t)
		users.EXPECT().GetByCPF(gomock.Any(), "12345678901").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.CPF != "12345678901" || u.Role != entities.UserRoleUser || !u.Active {
					t.Fatalf("unexpected user: %+v", u)
				}
				if !security.CheckPassword(u.PasswordHash, "s3nha") {
					t.Fatalf("password not hashed with bcrypt")
				}
				return u, nil
			},
		)
		activities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.UserActivity{}, nil)

		created, err := uc.Register(context.Background(), client, in)
		if err != nil || created.Name != "Bia" {
			t.Fatalf("unexpected result %+v err=%v", created, err)
		}
	})
}

func TestAuthUseCase_ChangePassword(t *testing.T) {
	actor := Actor{UserID: "u1"}
	hash := mustHash(t, "antiga")

	t.Run("wrong current password", func(t *testing.T) {
		uc, users, _, _, _ := newAuthFixture(t)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", PasswordHash: hash}, nil)
		err := uc.ChangePassword(context.Background(), actor, "outra", "nova")
		if !errors.Is(err, ErrSenhaAtualIncorreta) {
			t.Fatalf("expected ErrSenhaAtualIncorreta, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, users, activities, _, _ := newAuthFixture(t)
		users.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", PasswordHash: hash}, nil)
		users.EXPECT().UpdatePassword(gomock.Any(), "u1", gomock.Any(), fixedNow).DoAndReturn(
			func(_ context.Context, id, newHash string, _ time.Time) (entities.User, error) {
				if !security.CheckPassword(newHash, "nova") {
					t.Fatalf("new hash does not match")
				}
				return entities.User{ID: id}, nil
			},
		)
		activities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.UserActivity{}, nil)

		if err := uc.ChangePassword(context.Background(), actor, "antiga", "nova"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_MeLogout(t *testing.T) {
	uc, users, activities, _, _ := newAuthFixture(t)
	users.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.User{}, nil)
	if _, err := uc.Me(context.Background(), "ghost"); !errors.Is(err, ErrUsuarioNotFound) {
		t.Fatalf("expected ErrUsuarioNotFound, got %v", err)
	}

	activities.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a entities.UserActivity) (entities.UserActivity, error) {
			if a.Action != entities.ActionLogout || a.UserID != "u1" {
				t.Fatalf("unexpected activity: %+v", a)
			}
			return a, nil
		},
	)
	if err := uc.Logout(context.Background(), Actor{UserID: "u1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuthUseCase_EnsureAdmin(t *testing.T) {
	seed := AdminSeed{CPF: "00000000191", Password: "admin123", Name: "Administrador", Email: "admin@example.com"}

	t.Run("already present", func(t *testing.T) {
		uc, users, _, _, _ := newAuthFixture(t)
		users.EXPECT().GetByCPF(gomock.Any(), "00000000191").Return(entities.User{ID: "adm"}, nil)
		created, err := uc.EnsureAdmin(context.Background(), seed)
		if err != nil || created {
			t.Fatalf("expected no-op, got created=%v err=%v", created, err)
		}
	})

	t.Run("creates admin", func(t *testing.T) {
		uc, users, _, _, _ := newAuthFixture(t)
		users.EXPECT().GetByCPF(gomock.Any(), "00000000191").Return(entities.User{}, nil)
		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.UserRoleAdmin {
					t.Fatalf("expected admin role, got %q", u.Role)
				}
				return u, nil
			},
		)
		created, err := uc.EnsureAdmin(context.Background(), seed)
		if err != nil || !created {
			t.Fatalf("expected creation, got created=%v err=%v", created, err)
		}
	})

	t.Run("invalid seed cpf", func(t *testing.T) {
		uc, _, _, _, _ := newAuthFixture(t)
		bad := seed
		bad.CPF = "123"
		if _, err := uc.EnsureAdmin(context.Background(), bad); !errors.Is(err, ErrCPFInvalido) {
			t.Fatalf("expected ErrCPFInvalido, got %v", err)
		}
	})
}
