package depmodel

import (
	"testing"

	"github.com/reachlab/depscan"
)

func findDep(t *testing.T, deps []depscan.Dependency, name string) depscan.Dependency {
	t.Helper()
	for _, d := range deps {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("dependency %q not found in %v", name, deps)
	return depscan.Dependency{}
}

func TestExtractNpmPackageJSON(t *testing.T) {
	content := []byte(`{
		"name": "app",
		"dependencies": {"left-pad": "^1.3.0", "express": "4.18.2"},
		"devDependencies": {"jest": "~29.0.0"}
	}`)
	deps, err := extractNpmPackageJSON("package.json", content)
	if err != nil {
		t.Fatalf("extractNpmPackageJSON: %v", err)
	}
	if len(deps) != 3 {
		t.Fatalf("want 3 deps, got %d: %v", len(deps), deps)
	}
	if got := findDep(t, deps, "left-pad").Version; got != "1.3.0" {
		t.Errorf("left-pad version = %q, want 1.3.0", got)
	}
	if got := findDep(t, deps, "jest"); got.Version != "29.0.0" {
		t.Errorf("jest version = %q, want 29.0.0", got.Version)
	}
}

func TestExtractNpmLockV2(t *testing.T) {
	content := []byte(`{
		"lockfileVersion": 3,
		"packages": {
			"": {"name": "app", "version": "1.0.0"},
			"node_modules/left-pad": {"version": "1.3.0"}
		}
	}`)
	deps, err := extractNpmLock("package-lock.json", content)
	if err != nil {
		t.Fatalf("extractNpmLock: %v", err)
	}
	if len(deps) != 1 {
		t.Fatalf("want 1 dep, got %d: %v", len(deps), deps)
	}
	if !deps[0].Transitive {
		t.Errorf("lockfile dependency should be marked transitive")
	}
}

func TestExtractGoMod(t *testing.T) {
	content := []byte(`module example.com/foo

go 1.23

require (
	github.com/pkg/errors v0.9.1
	golang.org/x/mod v0.33.0 // indirect
)
`)
	deps, err := extractGoMod("go.mod", content)
	if err != nil {
		t.Fatalf("extractGoMod: %v", err)
	}
	if len(deps) != 2 {
		t.Fatalf("want 2 deps, got %d: %v", len(deps), deps)
	}
	indirect := findDep(t, deps, "golang.org/x/mod")
	if !indirect.Transitive {
		t.Errorf("indirect requirement should be marked transitive")
	}
}

func TestExtractGoSumDedupesModAndZipHash(t *testing.T) {
	content := []byte(`github.com/pkg/errors v0.9.1 h1:abc=
github.com/pkg/errors v0.9.1/go.mod h1:def=
`)
	deps, err := extractGoSum("go.sum", content)
	if err != nil {
		t.Fatalf("extractGoSum: %v", err)
	}
	if len(deps) != 1 {
		t.Fatalf("want 1 deduped dep, got %d: %v", len(deps), deps)
	}
	if deps[0].Version != "v0.9.1" {
		t.Errorf("version = %q, want v0.9.1", deps[0].Version)
	}
}

func TestExtractPyProjectSkipsPythonPseudoPackage(t *testing.T) {
	content := []byte(`
[project]
dependencies = ["requests==2.31.0", "click>=8.0"]

[tool.poetry.dependencies]
python = "^3.10"
`)
	deps, err := extractPyProject("pyproject.toml", content)
	if err != nil {
		t.Fatalf("extractPyProject: %v", err)
	}
	for _, d := range deps {
		if d.Name == "python" {
			t.Errorf("python pseudo-package should be skipped, got %+v", d)
		}
	}
	requests := findDep(t, deps, "requests")
	if requests.Version != "2.31.0" {
		t.Errorf("requests version = %q, want 2.31.0", requests.Version)
	}
	click := findDep(t, deps, "click")
	if click.Version != "" {
		t.Errorf("click should have no resolved version for a >= constraint, got %q", click.Version)
	}
}

func TestExtractRequirementsTxtSkipsComments(t *testing.T) {
	content := []byte("# comment\nFlask==2.3.2\n-e ./local-pkg\n\nrequests>=2.0\n")
	deps, err := extractRequirementsTxt("requirements.txt", content)
	if err != nil {
		t.Fatalf("extractRequirementsTxt: %v", err)
	}
	if len(deps) != 2 {
		t.Fatalf("want 2 deps, got %d: %v", len(deps), deps)
	}
}

func TestExtractCargoToml(t *testing.T) {
	content := []byte(`
[dependencies]
serde = { version = "1.0", features = ["derive"] }
libc = "0.2"
`)
	deps, err := extractCargoToml("Cargo.toml", content)
	if err != nil {
		t.Fatalf("extractCargoToml: %v", err)
	}
	if got := findDep(t, deps, "serde").Version; got != "1.0" {
		t.Errorf("serde version = %q, want 1.0", got)
	}
	if got := findDep(t, deps, "libc").Version; got != "0.2" {
		t.Errorf("libc version = %q, want 0.2", got)
	}
}

func TestExtractPomXMLResolvesProperty(t *testing.T) {
	content := []byte(`<project>
  <properties><guava.version>32.1.2-jre</guava.version></properties>
  <dependencies>
    <dependency>
      <groupId>com.google.guava</groupId>
      <artifactId>guava</artifactId>
      <version>${guava.version}</version>
    </dependency>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13.2</version>
      <scope>test</scope>
    </dependency>
  </dependencies>
</project>`)
	deps, err := extractPomXML("pom.xml", content)
	if err != nil {
		t.Fatalf("extractPomXML: %v", err)
	}
	if len(deps) != 1 {
		t.Fatalf("want 1 dep (test scope excluded), got %d: %v", len(deps), deps)
	}
	if deps[0].Version != "32.1.2-jre" {
		t.Errorf("version = %q, want 32.1.2-jre", deps[0].Version)
	}
}

func TestProbeXMLRejectsMalformed(t *testing.T) {
	if err := probeXML([]byte("<project><unterminated>")); err == nil {
		t.Error("expected error for malformed XML")
	}
	if err := probeXML([]byte("<project></project>")); err != nil {
		t.Errorf("unexpected error for well-formed XML: %v", err)
	}
}
