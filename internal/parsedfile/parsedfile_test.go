package parsedfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Songmu/javaimports/internal/common"
)

const source = `package com.example;

import java.util.Objects;

class Greeter {
  String greet(String name) {
    return Helper.wrap(name);
  }
}
`

func TestParse(t *testing.T) {
	pf, err := Parse(context.Background(), "Greeter.java", []byte(source))
	require.NoError(t, err)

	assert.True(t, pf.HasPackage)
	assert.Equal(t, "com.example", pf.Package.String())
	require.Len(t, pf.Imports, 1)
	assert.True(t, pf.HasExistingImport(common.ParseSelector("java.util.Objects")))
	assert.False(t, pf.HasExistingImport(common.ParseSelector("java.util.List")))

	assert.Contains(t, pf.Unresolved, "Helper")
	assert.False(t, pf.IsComplete())
}

func TestAllUnresolved_IncludesOrphanPending(t *testing.T) {
	src := `class Child extends Unknown {
  void m() { helper(); }
}
`
	pf, err := Parse(context.Background(), "Child.java", []byte(src))
	require.NoError(t, err)

	require.Len(t, pf.Orphans, 1)
	all := pf.AllUnresolved()
	assert.Contains(t, all, "helper")
}
