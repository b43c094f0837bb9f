package domainfn_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fnlab/domainfn"
)

func TestSuccessHasEmptyErrorChannels(t *testing.T) {
	r := domainfn.Success("data")
	if !assertSuccessInvariant(r) {
		t.Fatalf("success invariant violated: %+v", r)
	}
	if r.Errors == nil || r.InputErrors == nil || r.EnvironmentErrors == nil {
		t.Fatal("error channels must be empty slices, not nil")
	}
}

func TestFailNormalizesNilChannels(t *testing.T) {
	r := domainfn.Fail[string](domainfn.Failure{
		InputErrors: []domainfn.SchemaError{{Path: []string{"x"}, Message: "bad"}},
	})
	if r.Success {
		t.Fatal("expected failure")
	}
	if r.Errors == nil || r.EnvironmentErrors == nil {
		t.Fatal("untouched channels must still be empty slices")
	}
	if r.Data != "" {
		t.Fatalf("failure must carry zero data, got %q", r.Data)
	}
}

func TestResultSerializesCollectionsAsArrays(t *testing.T) {
	b, err := json.Marshal(domainfn.Success(1))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"errors":[]`, `"inputErrors":[]`, `"environmentErrors":[]`} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in %s", want, s)
		}
	}
}

func TestFailureOmitsDataField(t *testing.T) {
	type account struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	b, err := json.Marshal(domainfn.InputErrorResult[account](
		domainfn.SchemaError{Path: []string{"email"}, Message: "taken"},
	))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), `"data"`) {
		t.Fatalf("failure must serialize without a data field, got %s", b)
	}
	if !strings.Contains(string(b), `"inputErrors":[{"path":["email"],"message":"taken"}]`) {
		t.Fatalf("expected input errors preserved, got %s", b)
	}

	b, err = json.Marshal(domainfn.Success(account{ID: 1, Name: "ada"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"data":{"id":1,"name":"ada"}`) {
		t.Fatalf("success must keep its data field, got %s", b)
	}
}

func TestFailureEmpty(t *testing.T) {
	if !(domainfn.Failure{}).Empty() {
		t.Fatal("zero Failure must be empty")
	}
	f := domainfn.Failure{Errors: []domainfn.Error{{Message: "x"}}}
	if f.Empty() {
		t.Fatal("populated Failure must not be empty")
	}
}

func TestNormalizeErrorSynthesizesMessage(t *testing.T) {
	if got := domainfn.NormalizeError(nil).Message; got != "unknown error" {
		t.Fatalf("expected synthesized message, got %q", got)
	}
	if got := domainfn.NormalizeError(blankError{}).Message; got != "unknown error" {
		t.Fatalf("expected synthesized message for blank error, got %q", got)
	}
	cause := errors.New("boom")
	norm := domainfn.NormalizeError(cause)
	if norm.Message != "boom" || !errors.Is(norm.Err, cause) {
		t.Fatalf("expected cause retained, got %+v", norm)
	}
}

type blankError struct{}

func (blankError) Error() string { return "" }
