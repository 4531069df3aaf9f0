package usecase

import (
	"context"
	"testing"
	"time"

	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/usecase/interfaces"
	mock_interfaces "vip_mudancas/internal/usecase/interfaces/mocks"

	"github.com/cockroachdb/errors"
	"go.uber.org/mock/gomock"
)

func newClienteFixture(t *testing.T) (*ClienteUseCase, *mock_interfaces.MockIClienteRepository, *mock_interfaces.MockIUserActivityRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIClienteRepository(ctrl)
	activities := mock_interfaces.NewMockIUserActivityRepository(ctrl)
	uc := NewClienteUseCase(repo, activities)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, activities
}

func TestClienteUseCase_Create(t *testing.T) {
	actor := Actor{UserID: "u1"}

	t.Run("nome required", func(t *testing.T) {
		uc, _, _ := newClienteFixture(t)
		_, err := uc.Create(context.Background(), actor, ClienteInput{Nome: "  "})
		if !errors.Is(err, ErrCampoObrigatorio) {
			t.Fatalf("expected ErrCampoObrigatorio, got %v", err)
		}
	})

	t.Run("invalid perfil", func(t *testing.T) {
		uc, _, _ := newClienteFixture(t)
		_, err := uc.Create(context.Background(), actor, ClienteInput{Nome: "Carla", Perfil: "Z"})
		if !errors.Is(err, ErrPerfilInvalido) {
			t.Fatalf("expected ErrPerfilInvalido, got %v", err)
		}
	})

	t.Run("duplicate document", func(t *testing.T) {
		uc, repo, _ := newClienteFixture(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Cliente{}, interfaces.ErrDuplicateKey)
		_, err := uc.Create(context.Background(), actor, ClienteInput{Nome: "Carla", CPFCNPJ: "123"})
		if !errors.Is(err, ErrCPFCNPJJaCadastrado) {
			t.Fatalf("expected ErrCPFCNPJJaCadastrado, got %v", err)
		}
	})

	t.Run("success defaults", func(t *testing.T) {
		uc, repo, activities := newClienteFixture(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
				if c.ID == "" || c.Status != entities.ClienteStatusNovo || !c.Ativo || c.Endereco == nil {
					t.Fatalf("unexpected cliente: %+v", c)
				}
				if !c.DataCriacao.Equal(fixedNow) {
					t.Fatalf("unexpected data_criacao %v", c.DataCriacao)
				}
				return c, nil
			},
		)
		activities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.UserActivity{}, nil)

		c, err := uc.Create(context.Background(), actor, ClienteInput{Nome: " Carla ", Perfil: "AA"})
		if err != nil || c.Nome != "Carla" {
			t.Fatalf("unexpected result %+v err=%v", c, err)
		}
	})
}

func TestClienteUseCase_UpdateStatusDelete(t *testing.T) {
	actor := Actor{UserID: "u1"}

	t.Run("empty status", func(t *testing.T) {
		uc, _, _ := newClienteFixture(t)
		_, err := uc.UpdateStatus(context.Background(), actor, "c1", " ", "")
		if !errors.Is(err, ErrStatusClienteVazio) {
			t.Fatalf("expected ErrStatusClienteVazio, got %v", err)
		}
	})

	t.Run("status with justificativa", func(t *testing.T) {
		uc, repo, activities := newClienteFixture(t)
		repo.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, ch entities.ClienteChanges) (entities.Cliente, error) {
				if *ch.Status != "negociacao" || *ch.Justificativa != "pediu desconto" {
					t.Fatalf("unexpected changes: %+v", ch)
				}
				return entities.Cliente{ID: id, Status: *ch.Status}, nil
			},
		)
		activities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.UserActivity{}, nil)

		c, err := uc.UpdateStatus(context.Background(), actor, "c1", "negociacao", "pediu desconto")
		if err != nil || c.Status != "negociacao" {
			t.Fatalf("unexpected result %+v err=%v", c, err)
		}
	})

	t.Run("soft delete", func(t *testing.T) {
		uc, repo, activities := newClienteFixture(t)
		repo.EXPECT().Update(gomock.Any(), "c1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, ch entities.ClienteChanges) (entities.Cliente, error) {
				if ch.Ativo == nil || *ch.Ativo {
					t.Fatalf("expected ativo=false, got %+v", ch.Ativo)
				}
				return entities.Cliente{ID: id}, nil
			},
		)
		activities.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.UserActivity{}, nil)

		if err := uc.Delete(context.Background(), actor, "c1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		uc, repo, _ := newClienteFixture(t)
		repo.EXPECT().Update(gomock.Any(), "c9", gomock.Any()).Return(entities.Cliente{}, nil)
		if err := uc.Delete(context.Background(), actor, "c9"); !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})
}

func TestClienteUseCase_List(t *testing.T) {
	uc, repo, _ := newClienteFixture(t)
	repo.EXPECT().List(gomock.Any(), interfaces.ClienteFilter{
		Status: "novo",
		Query:  "silva",
		Limit:  20,
		Offset: 20,
	}).Return([]entities.Cliente{{ID: "c1"}}, nil)

	res, err := uc.List(context.Background(), ListClientesQuery{Page: 2, Status: " novo ", Query: "silva"})
	if err != nil || len(res) != 1 {
		t.Fatalf("unexpected result %v err=%v", res, err)
	}
}
