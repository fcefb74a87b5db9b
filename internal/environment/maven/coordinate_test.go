package maven

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_FillsDefaults(t *testing.T) {
	c := Coordinate{GroupID: "com.example", ArtifactID: "lib", Version: "1.0"}.normalize()
	assert.Equal(t, "jar", c.Type)
	assert.Equal(t, "compile", c.Scope)
}

func TestIsResolved(t *testing.T) {
	assert.True(t, Coordinate{Version: "1.0"}.IsResolved())
	assert.False(t, Coordinate{Version: ""}.IsResolved())
	assert.False(t, Coordinate{Version: "${v}"}.IsResolved())
}

func TestManagementKey_DefaultsTypeToJar(t *testing.T) {
	a := Coordinate{GroupID: "com.example", ArtifactID: "lib"}
	b := Coordinate{GroupID: "com.example", ArtifactID: "lib", Type: "jar"}
	assert.Equal(t, a.managementKey(), b.managementKey())
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{GroupID: "com.example", ArtifactID: "lib", Version: "1.2.3"}
	assert.Equal(t, "com.example:lib:1.2.3", c.String())
}
