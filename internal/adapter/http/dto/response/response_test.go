package response

import (
	"encoding/json"
	"testing"
	"time"

	"vip_mudancas/internal/domain/entities"
)

func TestFromOrcamento(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	o := entities.Orcamento{ID: "orc-1", Status: entities.OrcamentoStatusPendente, Validade: &past}

	res := FromOrcamento(o, now)
	if !res.Expirado {
		t.Fatalf("expected expired quote")
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["id"] != "orc-1" || m["expirado"] != true || m["status"] != "pendente" {
		t.Fatalf("unexpected payload %s", b)
	}

	o.Status = entities.OrcamentoStatusAprovado
	if FromOrcamento(o, now).Expirado {
		t.Fatalf("approved quotes never expire")
	}
}

func TestFromUserDetail(t *testing.T) {
	u := entities.User{ID: "u1", CPF: "12345678901", Name: "Ana", Role: entities.UserRoleAdmin, Active: true, PasswordHash: "secret"}
	b, err := json.Marshal(FromUserDetail(u))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["id"] != "u1" || m["role"] != "admin" || m["active"] != true {
		t.Fatalf("unexpected payload %s", b)
	}
	if _, ok := m["password_hash"]; ok {
		t.Fatalf("password hash leaked")
	}
}
