package catalog

import (
	"strings"
	"testing"
)

func TestParseImport(t *testing.T) {
	raw := []byte(`{
		"units": [
			{
				"subjectKey": "matematica",
				"title": "Porcentagem",
				"description": "Cálculo de porcentagens no dia a dia.",
				"topics": [
					{"title": "Desconto e acréscimo"},
					{"title": "Juros simples", "description": "Capital, taxa e tempo."}
				]
			}
		]
	}`)

	units, err := ParseImport(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 1 {
		t.Fatalf("got %d units", len(units))
	}
	u := units[0]
	if u.Title != "Porcentagem" || u.SubjectKey != "matematica" {
		t.Errorf("unit = %+v", u)
	}
	if len(u.Topics) != 2 || u.Topics[1].Description == "" {
		t.Errorf("topics = %+v", u.Topics)
	}
}

func TestParseImportRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"not json", `{broken`, "invalid JSON"},
		{"missing units", `{}`, "rejected"},
		{"empty units", `{"units": []}`, "rejected"},
		{"missing title", `{"units": [{"subjectKey": "matematica"}]}`, "rejected"},
		{"extra field", `{"units": [{"subjectKey": "matematica", "title": "X", "grade": 9}]}`, "rejected"},
		{"unknown subject", `{"units": [{"subjectKey": "historia", "title": "Idade Média"}]}`, "unknown subject"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImport([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want substring %q", err, tt.want)
			}
		})
	}
}
