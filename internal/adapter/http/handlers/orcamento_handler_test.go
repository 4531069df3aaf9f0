package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vip_mudancas/internal/adapter/http/handlers/mocks"
	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/usecase"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newOrcamentoRouter(t *testing.T, userID string) (*gin.Engine, *mocks.MockIOrcamentoUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIOrcamentoUseCase(ctrl)
	h := NewOrcamentoHandler(uc)
	h.now = func() time.Time { return handlerNow }

	r := newTestRouter(userID)
	g := r.Group("/api/orcamentos")
	g.GET("", h.List)
	g.GET("/estatisticas", h.Statistics)
	g.GET("/vendedor/:vendedor_id", h.ListByVendedor)
	g.GET("/cliente/:cliente_id", h.ListByCliente)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.POST("/:id/aprovar", h.Approve)
	g.POST("/:id/rejeitar", h.Reject)
	return r, uc
}

func TestOrcamentoHandler_Create(t *testing.T) {
	t.Run("invalid numeric value", func(t *testing.T) {
		r, _ := newOrcamentoRouter(t, "u1")
		w := doRequest(r, http.MethodPost, "/api/orcamentos", `{"cliente_nome":"João","valor_total":"muito"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("required field message", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Orcamento{},
			errors.Mark(errors.New("Campo cliente_email é obrigatório"), usecase.ErrCampoObrigatorio))

		w := doRequest(r, http.MethodPost, "/api/orcamentos", `{"cliente_nome":"João"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Campo cliente_email é obrigatório" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("created with coerced values", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, actor usecase.Actor, in usecase.OrcamentoInput) (entities.Orcamento, error) {
				if actor.UserID != "u1" {
					t.Fatalf("unexpected actor %+v", actor)
				}
				if in.ValorTotal != 1200 || in.Desconto != 200 || in.TipoMudanca != "comercial" {
					t.Fatalf("unexpected input %+v", in)
				}
				validade := handlerNow.Add(24 * time.Hour)
				return entities.Orcamento{
					ID:              "orc-1",
					NumeroOrcamento: "ORC-20240310120000",
					Status:          entities.OrcamentoStatusPendente,
					ValorFinal:      1000,
					Validade:        &validade,
				}, nil
			},
		)

		w := doRequest(r, http.MethodPost, "/api/orcamentos",
			`{"cliente_nome":"João","cliente_email":"j@x.com","tipo_mudanca":"comercial","valor_total":"1200","desconto":200}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		o, _ := body["orcamento"].(map[string]any)
		if o["numero_orcamento"] != "ORC-20240310120000" || o["expirado"] != false || o["valor_final"] != 1000.0 {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestOrcamentoHandler_Routes(t *testing.T) {
	t.Run("list passes paging and status", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().List(gomock.Any(), usecase.ListOrcamentosQuery{Page: 2, PerPage: 5, Status: "aprovado"}).
			Return([]entities.Orcamento{{ID: "a"}, {ID: "b"}}, nil)

		w := doRequest(r, http.MethodGet, "/api/orcamentos?page=2&per_page=5&status=aprovado", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		list, _ := body["orcamentos"].([]any)
		if len(list) != 2 || body["page"] != 2.0 || body["per_page"] != 5.0 {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("list invalid status", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrStatusInvalido)
		w := doRequest(r, http.MethodGet, "/api/orcamentos?status=x", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("estatisticas is not an id", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().Statistics(gomock.Any()).Return(entities.NewOrcamentoEstatisticas(10, 5, 3, 2, 100), nil)

		w := doRequest(r, http.MethodGet, "/api/orcamentos/estatisticas", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		st, _ := decodeBody(t, w)["estatisticas"].(map[string]any)
		if st["taxa_conversao"] != 30.0 || st["total_orcamentos"] != 10.0 {
			t.Fatalf("unexpected stats %v", st)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Orcamento{}, usecase.ErrOrcamentoNotFound)
		w := doRequest(r, http.MethodGet, "/api/orcamentos/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update forwards only present fields", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().Update(gomock.Any(), gomock.Any(), "orc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ usecase.Actor, id string, p usecase.OrcamentoPatch) (entities.Orcamento, error) {
				if p.Desconto == nil || *p.Desconto != 50 || p.ValorTotal != nil || p.ClienteNome != nil {
					t.Fatalf("unexpected patch %+v", p)
				}
				return entities.Orcamento{ID: id}, nil
			},
		)
		w := doRequest(r, http.MethodPut, "/api/orcamentos/orc-1", `{"desconto":"50","valor_final":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete forbidden", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u2")
		uc.EXPECT().Delete(gomock.Any(), gomock.Any(), "orc-1").Return(entities.Orcamento{}, usecase.ErrSemPermissao)
		w := doRequest(r, http.MethodDelete, "/api/orcamentos/orc-1", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("reject with motivo", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().Reject(gomock.Any(), gomock.Any(), "orc-1", "Preço alto").
			Return(entities.Orcamento{ID: "orc-1", Status: entities.OrcamentoStatusRejeitado}, nil)
		w := doRequest(r, http.MethodPost, "/api/orcamentos/orc-1/rejeitar", `{"motivo":"Preço alto"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject without body", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().Reject(gomock.Any(), gomock.Any(), "orc-1", "").
			Return(entities.Orcamento{ID: "orc-1", Status: entities.OrcamentoStatusRejeitado}, nil)
		w := doRequest(r, http.MethodPost, "/api/orcamentos/orc-1/rejeitar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject with empty chunked body", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().Reject(gomock.Any(), gomock.Any(), "orc-1", "").
			Return(entities.Orcamento{ID: "orc-1", Status: entities.OrcamentoStatusRejeitado}, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/orcamentos/orc-1/rejeitar", io.NopCloser(strings.NewReader("")))
		req.TransferEncoding = []string{"chunked"}
		req.Header.Set("Content-Type", "application/json")
		if req.ContentLength != -1 {
			t.Fatalf("expected unknown content length, got %d", req.ContentLength)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("reject with malformed body", func(t *testing.T) {
		r, _ := newOrcamentoRouter(t, "u1")
		w := doRequest(r, http.MethodPost, "/api/orcamentos/orc-1/rejeitar", `{"motivo":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve without body", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().Approve(gomock.Any(), gomock.Any(), "orc-1").
			Return(entities.Orcamento{ID: "orc-1", Status: entities.OrcamentoStatusAprovado}, nil)
		w := doRequest(r, http.MethodPost, "/api/orcamentos/orc-1/aprovar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("by vendedor", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().ListByVendedor(gomock.Any(), "v1").Return([]entities.Orcamento{{ID: "a"}}, nil)
		w := doRequest(r, http.MethodGet, "/api/orcamentos/vendedor/v1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure surfaces message", func(t *testing.T) {
		r, uc := newOrcamentoRouter(t, "u1")
		uc.EXPECT().ListByCliente(gomock.Any(), "c1").Return(nil, errors.New("dynamodb unavailable"))
		w := doRequest(r, http.MethodGet, "/api/orcamentos/cliente/c1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "dynamodb unavailable" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}
