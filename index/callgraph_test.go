package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleoca/ucn/model"
)

func newIndexWithUncertainCall(callee string) *Index {
	idx := newTestIndex()
	helperRec := model.SymbolRecord{Name: "Helper", File: "sample.go", StartLine: 3, EndLine: 5}
	helperSym := &Symbol{Record: helperRec, Fn: &model.Function{Name: "Helper", StartLine: 3, EndLine: 5}}
	idx.names["Helper"] = []*Symbol{helperSym}

	idx.files["sample.go"] = &model.FileRecord{
		Calls: []model.Call{
			{
				Callee:    callee,
				Receiver:  "obj",
				IsMethod:  true,
				Enclosing: &model.EnclosingFunction{Name: "Run", StartLine: 8, EndLine: 10},
			},
		},
	}
	return idx
}

func TestCallersIncludeUncertainMatchesExactCase(t *testing.T) {
	idx := newIndexWithUncertainCall("Helper")
	target := idx.names["Helper"][0]

	callers := idx.Callers(target, ResolveOptions{IncludeMethods: true, IncludeUncertain: true})
	require.Len(t, callers, 1)
	assert.Nil(t, callers[0].Target) // uncertain: recorded without a resolved target
}

func TestCallersIncludeUncertainDoesNotMatchDifferingCase(t *testing.T) {
	idx := newIndexWithUncertainCall("helper")
	target := idx.names["Helper"][0]

	callers := idx.Callers(target, ResolveOptions{IncludeMethods: true, IncludeUncertain: true})
	assert.Empty(t, callers)
}

func TestCallersWithoutIncludeUncertainOmitsUnresolvedCalls(t *testing.T) {
	idx := newIndexWithUncertainCall("Helper")
	target := idx.names["Helper"][0]

	callers := idx.Callers(target, ResolveOptions{IncludeMethods: true})
	assert.Empty(t, callers)
}
