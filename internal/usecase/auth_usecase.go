package usecase

import (
	"context"
	"strings"
	"time"

	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/infrastructure/logger"
	"vip_mudancas/internal/infrastructure/security"
	"vip_mudancas/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

var (
	ErrUsuarioNotFound      = errors.New("user not found")
	ErrCPFInvalido          = errors.New("invalid cpf")
	ErrCredenciaisInvalidas = errors.New("invalid credentials")
	ErrUsuarioInativo       = errors.New("inactive user")
	ErrCPFJaCadastrado      = errors.New("cpf already registered")
	ErrSenhaAtualIncorreta  = errors.New("current password does not match")
	ErrRoleInvalida         = errors.New("invalid role")
)

// TokenIssuer signs access tokens for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type LoginResult struct {
	AccessToken string
	User        entities.User
}

type RegisterInput struct {
	CPF      string
	Password string
	Name     string
	Email    string
	Role     string
}

// AdminSeed describes the default administrator created at startup.
type AdminSeed struct {
	CPF      string
	Password string
	Name     string
	Email    string
}

type IAuthUseCase interface {
	Login(ctx context.Context, client Actor, cpf, password string) (LoginResult, error)
	Register(ctx context.Context, client Actor, in RegisterInput) (entities.User, error)
	Me(ctx context.Context, userID string) (entities.User, error)
	Logout(ctx context.Context, actor Actor) error
	ChangePassword(ctx context.Context, actor Actor, currentPassword, newPassword string) error
	EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error)
}

type AuthUseCase struct {
	users      interfaces.IUserRepository
	tokens     TokenIssuer
	activities activityRecorder
	metrics    MetricsRecorder
	now        func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	activities interfaces.IUserActivityRepository,
	tokens TokenIssuer,
	metrics MetricsRecorder,
) *AuthUseCase {
	u := &AuthUseCase{
		users:   users,
		tokens:  tokens,
		metrics: metricsOrNoop(metrics),
		now:     time.Now,
	}
	u.activities = activityRecorder{repo: activities, now: func() time.Time { return u.now() }}
	return u
}

func (u *AuthUseCase) Login(ctx context.Context, client Actor, cpf, password string) (LoginResult, error) {
	if strings.TrimSpace(cpf) == "" || password == "" {
		return LoginResult{}, errors.Mark(errors.New("CPF e senha são obrigatórios"), ErrCampoObrigatorio)
	}
	if !entities.ValidCPF(cpf) {
		return LoginResult{}, ErrCPFInvalido
	}
	cpf = entities.NormalizeCPF(cpf)

	user, err := u.users.GetByCPF(ctx, cpf)
	if err != nil {
		return LoginResult{}, err
	}
	if user.ID == "" || !security.CheckPassword(user.PasswordHash, password) {
		u.metrics.Login(false)
		logger.L.Infof("[auth][usecase] login rejected cpf_suffix=%s", cpf[len(cpf)-2:])
		return LoginResult{}, ErrCredenciaisInvalidas
	}
	if !user.Active {
		u.metrics.Login(false)
		return LoginResult{}, ErrUsuarioInativo
	}

	updated, err := u.users.UpdateLastLogin(ctx, user.ID, u.now().UTC())
	if err != nil {
		return LoginResult{}, err
	}
	if updated.ID != "" {
		user = updated
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return LoginResult{}, err
	}

	client.UserID = user.ID
	u.activities.record(ctx, client, entities.ActionLogin, "Login realizado com sucesso", nil)
	u.metrics.Login(true)
	return LoginResult{AccessToken: token, User: user}, nil
}

func (u *AuthUseCase) Register(ctx context.Context, client Actor, in RegisterInput) (entities.User, error) {
	if strings.TrimSpace(in.CPF) == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return entities.User{}, errors.Mark(errors.New("CPF, senha e nome são obrigatórios"), ErrCampoObrigatorio)
	}
	if !entities.ValidCPF(in.CPF) {
		return entities.User{}, ErrCPFInvalido
	}
	role := entities.UserRole(strings.TrimSpace(in.Role))
	if role == "" {
		role = entities.UserRoleUser
	}
	if role != entities.UserRoleUser && role != entities.UserRoleAdmin {
		return entities.User{}, errors.Wrapf(ErrRoleInvalida, "%q", in.Role)
	}
	cpf := entities.NormalizeCPF(in.CPF)

	existing, err := u.users.GetByCPF(ctx, cpf)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrCPFJaCadastrado
	}

	created, err := u.create(ctx, cpf, in.Password, in.Name, in.Email, role)
	if err != nil {
		return entities.User{}, err
	}
	client.UserID = created.ID
	u.activities.record(ctx, client, entities.ActionRegister, "Usuário cadastrado no sistema", nil)
	logger.L.Infof("[auth][usecase] registered user_id=%s role=%s", created.ID, created.Role)
	return created, nil
}

func (u *AuthUseCase) create(ctx context.Context, cpf, password, name, email string, role entities.UserRole) (entities.User, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return entities.User{}, err
	}
	now := u.now().UTC()
	created, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		CPF:          cpf,
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return entities.User{}, ErrCPFJaCadastrado
	}
	return created, err
}

func (u *AuthUseCase) Me(ctx context.Context, userID string) (entities.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUsuarioNotFound
	}
	return user, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, actor Actor) error {
	u.activities.record(ctx, actor, entities.ActionLogout, "Logout realizado", nil)
	return nil
}

func (u *AuthUseCase) ChangePassword(ctx context.Context, actor Actor, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return errors.Mark(errors.New("Senha atual e nova senha são obrigatórias"), ErrCampoObrigatorio)
	}
	user, err := u.Me(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if !security.CheckPassword(user.PasswordHash, currentPassword) {
		return ErrSenhaAtualIncorreta
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	updated, err := u.users.UpdatePassword(ctx, user.ID, hash, u.now().UTC())
	if err != nil {
		return err
	}
	if updated.ID == "" {
		return ErrUsuarioNotFound
	}
	u.activities.record(ctx, actor, entities.ActionChangePassword, "Senha alterada", nil)
	return nil
}

// EnsureAdmin creates the seed administrator when its CPF is not registered.
// It reports whether a user was created.
func (u *AuthUseCase) EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	if !entities.ValidCPF(seed.CPF) {
		return false, ErrCPFInvalido
	}
	cpf := entities.NormalizeCPF(seed.CPF)
	existing, err := u.users.GetByCPF(ctx, cpf)
	if err != nil {
		return false, err
	}
	if existing.ID != "" {
		return false, nil
	}
	_, err = u.create(ctx, cpf, seed.Password, seed.Name, seed.Email, entities.UserRoleAdmin)
	if errors.Is(err, ErrCPFJaCadastrado) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	logger.L.Infof("[auth][usecase] admin user seeded cpf_suffix=%s", cpf[len(cpf)-2:])
	return true, nil
}
