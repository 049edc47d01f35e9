package jsonrepair_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/Feghellere/memoreasy/internal/jsonrepair"
)

func mustParse(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("resultado do Repair não parseia como JSON: %v\ntexto: %s", err, s)
	}
	return v
}

func TestRepairProsaEnvolvendoObjeto(t *testing.T) {
	embedded := `{"questions": [{"prompt": "Qual é a capital do Brasil?", "correctIndex": 1}]}`
	input := "Claro! Aqui está o quiz que você pediu:\n\n" + embedded + "\n\nEspero que ajude!"

	got := mustParse(t, jsonrepair.Repair(input))
	want := mustParse(t, embedded)

	if !reflect.DeepEqual(got, want) {
		t.Errorf("objeto extraído difere do objeto embutido.\nEsperado: %#v\nRecebido: %#v", want, got)
	}
}

func TestRepairIdempotenteEmJSONValido(t *testing.T) {
	cases := []string{
		`{"a": 1, "b": [true, false, null], "c": "texto com { e :"}`,
		`{"questions": []}`,
		`{"vazio": ""}`,
		`  {"com": "espaços"}  `,
	}

	for _, c := range cases {
		if got := jsonrepair.Repair(c); got != c {
			t.Errorf("Repair alterou JSON já válido.\nEntrada:  %q\nRecebido: %q", c, got)
		}
	}
}

func TestRepairVirgulasSobrando(t *testing.T) {
	input := `{"a": 1,, "b": 2, }`
	v := mustParse(t, jsonrepair.Repair(input))

	m, ok := v.(map[string]interface{})
	if !ok || m["a"] != float64(1) || m["b"] != float64(2) {
		t.Errorf("vírgulas duplicadas/penduradas não foram corrigidas: %#v", v)
	}
}

func TestRepairChavesSemAspas(t *testing.T) {
	input := `{prompt: "Verdadeiro ou falso?", correctIndex: 0}`
	v := mustParse(t, jsonrepair.Repair(input))

	m := v.(map[string]interface{})
	if m["prompt"] != "Verdadeiro ou falso?" {
		t.Errorf("chave sem aspas não foi normalizada: %#v", m)
	}
}

func TestRepairValorPalavraSemAspas(t *testing.T) {
	input := `{"dificuldade": facil, "ok": true}`
	v := mustParse(t, jsonrepair.Repair(input))

	m := v.(map[string]interface{})
	if m["dificuldade"] != "facil" {
		t.Errorf("valor sem aspas não foi citado: %#v", m)
	}
	if m["ok"] != true {
		t.Errorf("literal JSON não deveria ganhar aspas: %#v", m)
	}
}

func TestRepairBalanceamento(t *testing.T) {
	t.Run("FechamentosFaltando", func(t *testing.T) {
		input := `{"questions": [{"prompt": "Pergunta truncada"`
		mustParse(t, jsonrepair.Repair(input))
	})

	t.Run("FechamentosSobrando", func(t *testing.T) {
		input := `{"a": 1}}]`
		got := jsonrepair.Repair(input)
		if !json.Valid([]byte(got)) {
			t.Errorf("fechamentos excedentes não foram aparados: %q", got)
		}
	})
}

func TestRepairNuncaEntraEmPanico(t *testing.T) {
	inputs := []string{
		"",
		"}{",
		"]]]]",
		strings.Repeat("{", 500),
		"\x00\x01\x02",
		`{"incompleto": "sem fim`,
	}

	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Repair entrou em pânico com entrada %q: %v", in, r)
				}
			}()
			_ = jsonrepair.Repair(in)
		}()
	}
}
