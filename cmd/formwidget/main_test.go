package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"FORMWIDGET_CONFIG", "FORMWIDGET_OPENAPI", "FORMWIDGET_SCHEMA", "FORMWIDGET_LOCALE", "FORMWIDGET_OUTPUT_FORMAT"} {
		t.Setenv(key, "")
	}
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheck_Accepted(t *testing.T) {
	out, err := run(t, "check", "--form", "fr",
		"--set", "nom=Dupont", "--set", "prenom= Jean ", "--set", "email=jean@example.com")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := strings.TrimSpace(out); got != `{"nom":"Dupont","prenom":"Jean","email":"jean@example.com"}` {
		t.Fatalf("unexpected output %s", got)
	}
}

func TestCheck_RejectedPrintsErrors(t *testing.T) {
	out, err := run(t, "check", "--locale", "en", "--set", "last_name=Smith", "--set", "email=nope")
	if !errors.Is(err, errRejected) {
		t.Fatalf("expected errRejected, got %v", err)
	}

	var report checkReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	var labels []string
	for _, failure := range report.Errors {
		labels = append(labels, failure.Label)
	}
	if report.Form != "en" {
		t.Fatalf("form = %q", report.Form)
	}
	if diff := cmp.Diff([]string{"first_name", "email"}, labels); diff != "" {
		t.Fatalf("error labels mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_PrettyFormat(t *testing.T) {
	out, err := run(t, "check", "--form", "en", "--format", "pretty",
		"--set", "last_name=Smith", "--set", "first_name=John", "--set", "email=john@example.com")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	want := "last_name=Smith\nfirst_name=John\nemail=john@example.com\n\n"
	if out != want {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCheck_InputErrors(t *testing.T) {
	cases := [][]string{
		{"check", "--set", "nom"},
		{"check", "--set", "unknown=x"},
		{"check", "--form", "de"},
		{"check", "--locale", "de"},
		{"check", "--format", "xml"},
	}
	for _, args := range cases {
		if _, err := run(t, args...); err == nil || errors.Is(err, errRejected) {
			t.Fatalf("%v: expected usage error, got %v", args, err)
		}
	}
}

func TestRender_WritesPage(t *testing.T) {
	out, err := run(t, "render")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{`id="form"`, `id="display-en"`, "Envoyer", "Submit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("page missing %q", want)
		}
	}

	path := filepath.Join(t.TempDir(), "page.html")
	if _, err := run(t, "render", "--output", path); err != nil {
		t.Fatalf("render to file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `id="form-en"`) {
		t.Fatalf("file output missing english form")
	}
}

func TestRender_OpenAPI(t *testing.T) {
	dir := t.TempDir()
	specPath := filepath.Join(dir, "contact.yaml")
	spec := `openapi: 3.0.3
info: {title: Contact, version: "1"}
paths: {}
components:
  schemas:
    Contact:
      type: object
      required: [societe]
      properties:
        societe: {type: string}
        courriel: {type: string, format: email}
`
	if err := os.WriteFile(specPath, []byte(spec), 0o600); err != nil {
		t.Fatalf("write spec: %v", err)
	}

	out, err := run(t, "check", "--openapi", specPath, "--schema", "Contact", "--form", "fr",
		"--set", "societe=ACME", "--set", "courriel=contact@acme.test")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := strings.TrimSpace(out); got != `{"societe":"ACME","courriel":"contact@acme.test"}` {
		t.Fatalf("unexpected output %s", got)
	}

	if _, err := run(t, "render", "--openapi", specPath); err == nil {
		t.Fatalf("expected error without --schema")
	}
}

func TestRender_CustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forms.yaml")
	cfg := `title: Newsletter
forms:
  - name: news
    locale: en
    form_container: signup
    display_container: signup-result
    submit_label: Join
    fields:
      - label: email
        kind: email
`
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := run(t, "render", "--config", path)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<title>Newsletter</title>", `id="signup"`, ">Join<"} {
		if !strings.Contains(out, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestPrompt_RequiresTerminal(t *testing.T) {
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		t.Skip("running in a terminal")
	}
	if _, err := run(t, "prompt"); err == nil {
		t.Fatalf("expected terminal error")
	}
}
