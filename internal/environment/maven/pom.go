package maven

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/viant/afs"
)

// pomXML is the subset of a Maven POM's shape this tool needs: its own
// dependencies, its dependencyManagement block, its properties, and its
// parent reference. encoding/xml is the standard library's; no third-party
// XML library was available to reach for instead.
type pomXML struct {
	XMLName    xml.Name       `xml:"project"`
	Parent     *pomParentXML  `xml:"parent"`
	Properties pomPropsXML    `xml:"properties"`
	Deps       []pomDepXML    `xml:"dependencies>dependency"`
	DepMgmt    []pomDepXML    `xml:"dependencyManagement>dependencies>dependency"`
}

type pomParentXML struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`

	// RelativePath distinguishes "absent" (nil: the implicit "../pom.xml"
	// default applies) from "present but empty" (non-nil *string pointing
	// at "": explicitly no parent on disk) — a plain string field could
	// not tell those two cases apart.
	RelativePath *string `xml:"relativePath"`
}

type pomDepXML struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
	Type       string `xml:"type"`
	Classifier string `xml:"classifier"`
	Scope      string `xml:"scope"`
	Optional   bool   `xml:"optional"`
}

// pomPropsXML captures an arbitrary set of <properties> children: Maven
// properties are free-form element names, which xml.Unmarshal can only
// reach generically.
type pomPropsXML struct {
	Entries []pomPropEntry `xml:",any"`
}

type pomPropEntry struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

func (p pomPropsXML) toMap() map[string]string {
	out := make(map[string]string, len(p.Entries))
	for _, e := range p.Entries {
		out[e.XMLName.Local] = e.Value
	}
	return out
}

func (d pomDepXML) toCoordinate() Coordinate {
	return Coordinate{
		GroupID:    d.GroupID,
		ArtifactID: d.ArtifactID,
		Version:    d.Version,
		Type:       d.Type,
		Classifier: d.Classifier,
		Scope:      d.Scope,
		Optional:   d.Optional,
	}.normalize()
}

// loadPOM downloads and parses the POM at url using fs.
func loadPOM(ctx context.Context, fs afs.Service, url string) (*pomXML, error) {
	content, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("maven: read %s: %w", url, err)
	}

	var p pomXML
	if err := xml.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("maven: parse %s: %w", url, err)
	}
	return &p, nil
}

// toFlatPom projects the raw XML shape into the FlatPom the builder and
// merge logic operate on.
func (p *pomXML) toFlatPom() *FlatPom {
	b := NewFlatPomBuilder()

	deps := make([]Coordinate, 0, len(p.Deps))
	for _, d := range p.Deps {
		deps = append(deps, d.toCoordinate())
	}
	mgmt := make([]Coordinate, 0, len(p.DepMgmt))
	for _, d := range p.DepMgmt {
		mgmt = append(mgmt, d.toCoordinate())
	}

	b.WithDeclaredDependencies(deps)
	b.WithManagedDependencies(mgmt)
	b.WithProperties(p.Properties.toMap())
	if p.Parent != nil {
		if path, hasParent := parentPOMPath(*p.Parent); hasParent {
			b.WithParentPath(path)
		}
	}

	return b.Build()
}

// parentPOMPath resolves a <parent>'s location the way Maven does: an
// absent relativePath element defaults to "../pom.xml"; an explicitly empty
// one means the parent has no locally resolvable path; any other value
// names either a pom.xml directly or a directory containing one (the
// directory case is completed by resolveParentPath, which appends
// "pom.xml" when the path doesn't already end in it).
func parentPOMPath(parent pomParentXML) (string, bool) {
	if parent.RelativePath == nil {
		return "../pom.xml", true
	}
	if *parent.RelativePath == "" {
		return "", false
	}
	return *parent.RelativePath, true
}
