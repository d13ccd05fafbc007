package pbxproj

import "path"

// SourceFile is one discovered source file and its two objects: the file
// reference and the build file that puts it in the Sources phase.
type SourceFile struct {
	Path      string // slash-separated, relative to the project root
	Name      string // base name, used in comments
	FileRef   string
	BuildFile string
}

// IDs are the fixed structural objects every project has.
type IDs struct {
	Project           string
	MainGroup         string
	ProductsGroup     string
	NativeTarget      string
	ProjectConfigList string
	TargetConfigList  string
	ProjectDebug      string
	ProjectRelease    string
	TargetDebug       string
	TargetRelease     string
	SourcesPhase      string
	FrameworksPhase   string
	ResourcesPhase    string
	ProductRef        string
	AssetsRef         string
	AssetsBuild       string
	InfoPlistRef      string
}

// Graph is the in-memory project: one application target named Name
// whose Sources phase holds Files.
type Graph struct {
	Name  string
	Files []SourceFile
	IDs   IDs
}

// NewGraph mints identifiers for every file in files and for the fixed
// structural objects.
func NewGraph(name string, files []string, m *Minter) (*Graph, error) {
	g := &Graph{Name: name, Files: make([]SourceFile, 0, len(files))}
	for _, f := range files {
		sf := SourceFile{Path: f, Name: path.Base(f)}
		var err error
		if sf.FileRef, err = m.Next(); err != nil {
			return nil, err
		}
		if sf.BuildFile, err = m.Next(); err != nil {
			return nil, err
		}
		g.Files = append(g.Files, sf)
	}

	for _, id := range g.IDs.fields() {
		var err error
		if *id, err = m.Next(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (ids *IDs) fields() []*string {
	return []*string{
		&ids.Project, &ids.MainGroup, &ids.ProductsGroup, &ids.NativeTarget,
		&ids.ProjectConfigList, &ids.TargetConfigList,
		&ids.ProjectDebug, &ids.ProjectRelease, &ids.TargetDebug, &ids.TargetRelease,
		&ids.SourcesPhase, &ids.FrameworksPhase, &ids.ResourcesPhase,
		&ids.ProductRef, &ids.AssetsRef, &ids.AssetsBuild, &ids.InfoPlistRef,
	}
}

// AllIDs returns every identifier in the graph, files first.
func (g *Graph) AllIDs() []string {
	out := make([]string, 0, 2*len(g.Files)+len(g.IDs.fields()))
	for _, f := range g.Files {
		out = append(out, f.FileRef, f.BuildFile)
	}
	for _, id := range g.IDs.fields() {
		out = append(out, *id)
	}
	return out
}
