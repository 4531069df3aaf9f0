package request

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`1500.5`, 1500.5},
		{`"1500.5"`, 1500.5},
		{`" 200 "`, 200},
		{`""`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var n Number
		if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if float64(n) != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.in, tc.want, float64(n))
		}
	}

	var n Number
	if err := json.Unmarshal([]byte(`"mil reais"`), &n); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestOrcamentoPatchRequest_ToPatch(t *testing.T) {
	var r OrcamentoPatchRequest
	body := `{"desconto":"50","status":"aprovado","valor_final":1,"numero_orcamento":"ORC-X"}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := r.ToPatch()
	if p.ValorTotal != nil {
		t.Fatalf("valor_total should be absent")
	}
	if p.Desconto == nil || *p.Desconto != 50 {
		t.Fatalf("unexpected desconto %v", p.Desconto)
	}
	if p.Status == nil || *p.Status != "aprovado" {
		t.Fatalf("unexpected status %v", p.Status)
	}
}

func TestOrcamentoRequest_ToInput(t *testing.T) {
	var r OrcamentoRequest
	body := `{"cliente_nome":"João","valor_total":"1000","desconto":150.5,"itens":[{"nome":"sofá"}]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()
	if in.ValorTotal != 1000 || in.Desconto != 150.5 || len(in.Itens) != 1 {
		t.Fatalf("unexpected input %+v", in)
	}
}
