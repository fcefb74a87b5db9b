package rewriter

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/Songmu/javaimports/internal/common"
)

func TestRewrite_InsertsAfterExistingImportBlock(t *testing.T) {
	src := []byte("package com.example;\n\nimport java.util.Objects;\n\nclass Greeter {\n}\n")
	fixes := []common.Import{common.NewImport("java.util.List", false)}

	out := Rewrite(src, nil, fixes)

	g := goldie.New(t)
	g.Assert(t, t.Name(), out)
}

func TestRewrite_InsertsAfterPackageWhenNoExistingImports(t *testing.T) {
	src := []byte("package com.example;\n\nclass Greeter {\n}\n")
	fixes := []common.Import{common.NewImport("java.util.List", false)}

	out := Rewrite(src, nil, fixes)

	g := goldie.New(t)
	g.Assert(t, t.Name(), out)
}

func TestRewrite_InsertsAtTopWhenNoPackageDeclaration(t *testing.T) {
	src := []byte("class Greeter {\n}\n")
	fixes := []common.Import{common.NewImport("java.util.List", false)}

	out := Rewrite(src, nil, fixes)

	g := goldie.New(t)
	g.Assert(t, t.Name(), out)
}

func TestRewrite_GroupsRegularBeforeStaticAndSortsEach(t *testing.T) {
	src := []byte("package com.example;\n\nclass Greeter {\n}\n")
	fixes := []common.Import{
		common.NewImport("org.junit.Assert.assertTrue", true),
		common.NewImport("java.util.List", false),
		common.NewImport("java.util.ArrayList", false),
		common.NewImport("org.junit.Assert.assertFalse", true),
	}

	out := Rewrite(src, nil, fixes)

	g := goldie.New(t)
	g.Assert(t, t.Name(), out)
}

func TestRewrite_SkipsFixesAlreadyPresentAsExistingImports(t *testing.T) {
	src := []byte("package com.example;\n\nimport java.util.List;\n\nclass Greeter {\n}\n")
	existing := []common.Import{common.NewImport("java.util.List", false)}
	fixes := []common.Import{
		common.NewImport("java.util.List", false),
		common.NewImport("java.util.Map", false),
	}

	out := Rewrite(src, existing, fixes)

	g := goldie.New(t)
	g.Assert(t, t.Name(), out)
}

func TestRewrite_NoFixesReturnsSourceUnchanged(t *testing.T) {
	src := []byte("package com.example;\n\nclass Greeter {\n}\n")

	out := Rewrite(src, nil, nil)

	if string(out) != string(src) {
		t.Fatalf("expected unchanged source, got %q", out)
	}
}
