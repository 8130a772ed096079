// Package formats lists the file formats assimp can import and the
// extensions that select them.
//
// The tables are static and describe the upstream feature list. Whether a
// given libassimp build actually includes an importer is a runtime question
// answered by assimp.IsExtensionSupported.
package formats

import (
	"path/filepath"
	"slices"
	"strings"
)

// Category groups formats the way the assimp feature list does.
type Category uint8

const (
	CategoryInterchange Category = iota + 1
	CategoryMotionCapture
	CategoryEngine
	CategoryGame
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryInterchange:
		return "common interchange"
	case CategoryMotionCapture:
		return "motion capture"
	case CategoryEngine:
		return "graphics engine"
	case CategoryGame:
		return "game"
	case CategoryOther:
		return "other"
	default:
		return "unknown"
	}
}

// Format describes one importable file format.
type Format struct {
	Name       string
	Extensions []string
	Category   Category
	// Partial marks formats assimp only partially supports.
	Partial bool
}

var importFormats = []Format{
	{Name: "Autodesk", Extensions: []string{"fbx"}, Category: CategoryInterchange},
	{Name: "Collada", Extensions: []string{"dae"}, Category: CategoryInterchange},
	{Name: "glTF", Extensions: []string{"gltf", "glb"}, Category: CategoryInterchange},
	{Name: "Blender 3D", Extensions: []string{"blend"}, Category: CategoryInterchange},
	{Name: "3ds Max 3DS", Extensions: []string{"3ds"}, Category: CategoryInterchange},
	{Name: "3ds Max ASE", Extensions: []string{"ase"}, Category: CategoryInterchange},
	{Name: "Wavefront Object", Extensions: []string{"obj"}, Category: CategoryInterchange},
	{Name: "Industry Foundation Classes (IFC/Step)", Extensions: []string{"ifc"}, Category: CategoryInterchange},
	{Name: "XGL", Extensions: []string{"xgl", "zgl"}, Category: CategoryInterchange},
	{Name: "Stanford Polygon Library", Extensions: []string{"ply"}, Category: CategoryInterchange},
	{Name: "AutoCAD DXF", Extensions: []string{"dxf"}, Category: CategoryInterchange, Partial: true},
	{Name: "LightWave", Extensions: []string{"lwo"}, Category: CategoryInterchange},
	{Name: "LightWave Scene", Extensions: []string{"lws"}, Category: CategoryInterchange},
	{Name: "Modo", Extensions: []string{"lxo"}, Category: CategoryInterchange},
	{Name: "Stereolithography", Extensions: []string{"stl"}, Category: CategoryInterchange},
	{Name: "DirectX X", Extensions: []string{"x"}, Category: CategoryInterchange},
	{Name: "AC3D", Extensions: []string{"ac"}, Category: CategoryInterchange},
	{Name: "Milkshape 3D", Extensions: []string{"ms3d"}, Category: CategoryInterchange},
	{Name: "TrueSpace", Extensions: []string{"cob", "scn"}, Category: CategoryInterchange, Partial: true},

	{Name: "Biovision BVH", Extensions: []string{"bvh"}, Category: CategoryMotionCapture},
	{Name: "CharacterStudio Motion", Extensions: []string{"csm"}, Category: CategoryMotionCapture, Partial: true},

	{Name: "Ogre XML", Extensions: []string{"xml"}, Category: CategoryEngine},
	{Name: "Irrlicht Mesh", Extensions: []string{"irrmesh"}, Category: CategoryEngine},
	{Name: "Irrlicht Scene", Extensions: []string{"irr"}, Category: CategoryEngine, Partial: true},

	{Name: "Quake I", Extensions: []string{"mdl"}, Category: CategoryGame},
	{Name: "Quake II", Extensions: []string{"md2"}, Category: CategoryGame},
	{Name: "Quake III Mesh", Extensions: []string{"md3"}, Category: CategoryGame},
	{Name: "Quake III Map/BSP", Extensions: []string{"pk3"}, Category: CategoryGame},
	{Name: "Return to Castle Wolfenstein", Extensions: []string{"mdc"}, Category: CategoryGame, Partial: true},
	{Name: "Doom 3", Extensions: []string{"md5mesh", "md5anim"}, Category: CategoryGame},
	{Name: "Valve Model", Extensions: []string{"smd", "vta"}, Category: CategoryGame, Partial: true},
	{Name: "Open Game Engine Exchange", Extensions: []string{"ogex"}, Category: CategoryGame, Partial: true},
	{Name: "Unreal", Extensions: []string{"3d"}, Category: CategoryGame, Partial: true},

	{Name: "BlitzBasic 3D", Extensions: []string{"b3d"}, Category: CategoryOther},
	{Name: "Quick3D", Extensions: []string{"q3d", "q3s"}, Category: CategoryOther},
	{Name: "Neutral File Format", Extensions: []string{"nff"}, Category: CategoryOther},
	{Name: "Sense8 WorldToolKit", Extensions: []string{"nff"}, Category: CategoryOther},
	{Name: "Object File Format", Extensions: []string{"off"}, Category: CategoryOther},
	{Name: "PovRAY Raw", Extensions: []string{"raw"}, Category: CategoryOther},
	{Name: "Terragen Terrain", Extensions: []string{"ter"}, Category: CategoryOther},
	{Name: "3D GameStudio (3DGS)", Extensions: []string{"mdl"}, Category: CategoryOther},
	{Name: "3D GameStudio (3DGS) Terrain", Extensions: []string{"hmp"}, Category: CategoryOther},
	{Name: "Izware Nendo", Extensions: []string{"ndo"}, Category: CategoryOther},
}

var (
	byName      = map[string]int{}
	byExtension = map[string][]int{}
	extensions  []string
)

func init() {
	for i, f := range importFormats {
		byName[f.Name] = i
		for _, ext := range f.Extensions {
			if _, seen := byExtension[ext]; !seen {
				extensions = append(extensions, ext)
			}
			byExtension[ext] = append(byExtension[ext], i)
		}
	}
	slices.Sort(extensions)
}

// normalize turns ".OBJ", "obj" and "Obj" into "obj".
func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ImportFormats returns every format in feature-list order.
func ImportFormats() []Format {
	return slices.Clone(importFormats)
}

// Lookup finds a format by its exact name.
func Lookup(name string) (Format, bool) {
	i, ok := byName[name]
	if !ok {
		return Format{}, false
	}
	return importFormats[i], true
}

// Extensions returns every importable extension, sorted, without dots.
func Extensions() []string {
	return slices.Clone(extensions)
}

// ByExtension returns the formats an extension may select. Some
// extensions (mdl, nff) are shared by more than one format.
func ByExtension(ext string) []Format {
	idx := byExtension[normalize(ext)]
	out := make([]Format, 0, len(idx))
	for _, i := range idx {
		out = append(out, importFormats[i])
	}
	return out
}

// ForPath returns the formats a file name's extension may select.
func ForPath(path string) []Format {
	return ByExtension(filepath.Ext(path))
}

// Known reports whether ext appears in the tables.
func Known(ext string) bool {
	_, ok := byExtension[normalize(ext)]
	return ok
}

// Partial reports whether any format selected by ext is only partially supported.
func Partial(ext string) bool {
	for _, i := range byExtension[normalize(ext)] {
		if importFormats[i].Partial {
			return true
		}
	}
	return false
}
