// Package gqltesting runs GraphQL operations against a schema and compares
// the results with expected JSON.
package gqltesting

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"testing"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/errors"
	"github.com/nsf/jsondiff"
)

// Test is a GraphQL test case to be used with RunTest(s).
type Test struct {
	Context        context.Context
	Schema         *graphql.Schema
	Query          string
	OperationName  string
	Variables      map[string]interface{}
	ExpectedResult string
	ExpectedErrors []*Error
}

// Error is an expected query error. Only the members that are set are
// compared; Message matches as a substring.
type Error struct {
	Message string
	Path    []interface{}
	Code    string
}

// RunTests runs the given GraphQL test cases as subtests.
func RunTests(t *testing.T, tests []*Test) {
	t.Helper()
	if len(tests) == 1 {
		RunTest(t, tests[0])
		return
	}

	for i, test := range tests {
		t.Run(strconv.Itoa(i+1), func(t *testing.T) {
			t.Helper()
			RunTest(t, test)
		})
	}
}

// RunTest runs a single GraphQL test case.
func RunTest(t *testing.T, test *Test) {
	t.Helper()
	if test.Context == nil {
		test.Context = context.Background()
	}
	result := test.Schema.Exec(test.Context, test.Query, test.OperationName, test.Variables)

	checkErrors(t, test.ExpectedErrors, result.Errors)

	if test.ExpectedResult == "" {
		return
	}

	opts := jsondiff.Options{
		Added:   jsondiff.Tag{Begin: "+++", End: "+++"},
		Removed: jsondiff.Tag{Begin: "---", End: "---"},
		Changed: jsondiff.Tag{Begin: "|||", End: "|||"},
		Indent:  "    ",
	}
	diff, output := jsondiff.Compare([]byte(test.ExpectedResult), result.Data, &opts)
	if diff != jsondiff.FullMatch {
		t.Log("Did not get expected result:\n", output)
		t.Log("Got:", string(result.Data))
		t.Fail()
	}
}

func checkErrors(t *testing.T, want []*Error, got []*errors.QueryError) {
	t.Helper()
	sortErrors(got)
	sort.Slice(want, func(i, j int) bool {
		return fmt.Sprintf("%s", want[i].Path) < fmt.Sprintf("%s", want[j].Path)
	})

	if len(got) != len(want) {
		t.Fatalf("got %d errors, want %d:\n%s", len(got), len(want), formatErrors(got))
	}
	for i, w := range want {
		g := got[i]
		if w.Message != "" && !strings.Contains(g.Message, w.Message) {
			t.Errorf("error %d: message %q does not contain %q", i, g.Message, w.Message)
		}
		if w.Path != nil && fmt.Sprint(g.Path) != fmt.Sprint(w.Path) {
			t.Errorf("error %d: got path %v, want %v", i, g.Path, w.Path)
		}
		if w.Code != "" && g.Extensions["code"] != w.Code {
			t.Errorf("error %d: got code %v, want %s", i, g.Extensions["code"], w.Code)
		}
	}
}

func formatErrors(errs []*errors.QueryError) string {
	var b strings.Builder
	for _, err := range errs {
		if err == nil {
			b.WriteString("(nil)\n")
			continue
		}
		fmt.Fprintf(&b, "%s\nPath: %v\nExtensions: %+v\n", err.Error(), err.Path, err.Extensions)
	}
	return b.String()
}

func sortErrors(errors []*errors.QueryError) {
	if len(errors) <= 1 {
		return
	}
	sort.Slice(errors, func(i, j int) bool {
		return fmt.Sprintf("%s", errors[i].Path) < fmt.Sprintf("%s", errors[j].Path)
	})
}
