package assimp

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/wippyai/assimp/errors"
)

// PostProcess is a set of aiPostProcessSteps flags.
type PostProcess uint32

const (
	CalcTangentSpace         PostProcess = 0x1
	JoinIdenticalVertices    PostProcess = 0x2
	MakeLeftHanded           PostProcess = 0x4
	Triangulate              PostProcess = 0x8
	RemoveComponent          PostProcess = 0x10
	GenNormals               PostProcess = 0x20
	GenSmoothNormals         PostProcess = 0x40
	SplitLargeMeshes         PostProcess = 0x80
	PreTransformVertices     PostProcess = 0x100
	LimitBoneWeights         PostProcess = 0x200
	ValidateDataStructure    PostProcess = 0x400
	ImproveCacheLocality     PostProcess = 0x800
	RemoveRedundantMaterials PostProcess = 0x1000
	FixInfacingNormals       PostProcess = 0x2000
	PopulateArmatureData     PostProcess = 0x4000
	SortByPType              PostProcess = 0x8000
	FindDegenerates          PostProcess = 0x10000
	FindInvalidData          PostProcess = 0x20000
	GenUVCoords              PostProcess = 0x40000
	TransformUVCoords        PostProcess = 0x80000
	FindInstances            PostProcess = 0x100000
	OptimizeMeshes           PostProcess = 0x200000
	OptimizeGraph            PostProcess = 0x400000
	FlipUVs                  PostProcess = 0x800000
	FlipWindingOrder         PostProcess = 0x1000000
	SplitByBoneCount         PostProcess = 0x2000000
	Debone                   PostProcess = 0x4000000
	GlobalScale              PostProcess = 0x8000000
	EmbedTextures            PostProcess = 0x10000000
	ForceGenNormals          PostProcess = 0x20000000
	DropNormals              PostProcess = 0x40000000
	GenBoundingBoxes         PostProcess = 0x80000000
)

// Presets.
const (
	ConvertToLeftHanded = MakeLeftHanded | FlipUVs | FlipWindingOrder

	TargetRealtimeFast = CalcTangentSpace | GenNormals | JoinIdenticalVertices |
		Triangulate | GenUVCoords | SortByPType

	TargetRealtimeQuality = CalcTangentSpace | GenSmoothNormals | JoinIdenticalVertices |
		ImproveCacheLocality | LimitBoneWeights | RemoveRedundantMaterials |
		SplitLargeMeshes | Triangulate | GenUVCoords | SortByPType |
		FindDegenerates | FindInvalidData

	TargetRealtimeMaxQuality = TargetRealtimeQuality | FindInstances |
		ValidateDataStructure | OptimizeMeshes
)

var stepNames = map[PostProcess]string{
	CalcTangentSpace:         "CalcTangentSpace",
	JoinIdenticalVertices:    "JoinIdenticalVertices",
	MakeLeftHanded:           "MakeLeftHanded",
	Triangulate:              "Triangulate",
	RemoveComponent:          "RemoveComponent",
	GenNormals:               "GenNormals",
	GenSmoothNormals:         "GenSmoothNormals",
	SplitLargeMeshes:         "SplitLargeMeshes",
	PreTransformVertices:     "PreTransformVertices",
	LimitBoneWeights:         "LimitBoneWeights",
	ValidateDataStructure:    "ValidateDataStructure",
	ImproveCacheLocality:     "ImproveCacheLocality",
	RemoveRedundantMaterials: "RemoveRedundantMaterials",
	FixInfacingNormals:       "FixInfacingNormals",
	PopulateArmatureData:     "PopulateArmatureData",
	SortByPType:              "SortByPType",
	FindDegenerates:          "FindDegenerates",
	FindInvalidData:          "FindInvalidData",
	GenUVCoords:              "GenUVCoords",
	TransformUVCoords:        "TransformUVCoords",
	FindInstances:            "FindInstances",
	OptimizeMeshes:           "OptimizeMeshes",
	OptimizeGraph:            "OptimizeGraph",
	FlipUVs:                  "FlipUVs",
	FlipWindingOrder:         "FlipWindingOrder",
	SplitByBoneCount:         "SplitByBoneCount",
	Debone:                   "Debone",
	GlobalScale:              "GlobalScale",
	EmbedTextures:            "EmbedTextures",
	ForceGenNormals:          "ForceGenNormals",
	DropNormals:              "DropNormals",
	GenBoundingBoxes:         "GenBoundingBoxes",
}

var stepsByName = func() map[string]PostProcess {
	m := make(map[string]PostProcess, len(stepNames))
	for f, name := range stepNames {
		m[strings.ToLower(name)] = f
	}
	return m
}()

// Set returns p with flag turned on or off.
func (p PostProcess) Set(flag PostProcess, on bool) PostProcess {
	if on {
		return p | flag
	}
	return p &^ flag
}

// Has reports whether every bit of flag is set.
func (p PostProcess) Has(flag PostProcess) bool {
	return p&flag == flag
}

// Steps splits p into its single-bit flags, lowest first.
func (p PostProcess) Steps() []PostProcess {
	out := make([]PostProcess, 0, bits.OnesCount32(uint32(p)))
	for v := uint32(p); v != 0; v &= v - 1 {
		out = append(out, PostProcess(v&-v))
	}
	return out
}

func (p PostProcess) String() string {
	if p == 0 {
		return "none"
	}
	names := make([]string, 0, bits.OnesCount32(uint32(p)))
	for _, step := range p.Steps() {
		if name, ok := stepNames[step]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("0x%x", uint32(step)))
		}
	}
	return strings.Join(names, "|")
}

var presets = map[string]PostProcess{
	"converttolefthanded":      ConvertToLeftHanded,
	"targetrealtimefast":       TargetRealtimeFast,
	"targetrealtimequality":    TargetRealtimeQuality,
	"targetrealtimemaxquality": TargetRealtimeMaxQuality,
	"none":                     0,
}

// ParsePostProcess parses a "|" or "," separated list of step or preset
// names, case-insensitively. "Triangulate|GenNormals" and
// "TargetRealtimeFast,FlipUVs" are both accepted.
func ParsePostProcess(s string) (PostProcess, error) {
	var p PostProcess
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ','
	})
	for _, field := range fields {
		name := strings.ToLower(strings.TrimSpace(field))
		if name == "" {
			continue
		}
		if f, ok := stepsByName[name]; ok {
			p |= f
			continue
		}
		if f, ok := presets[name]; ok {
			p |= f
			continue
		}
		return 0, errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("unknown post-process step %q", strings.TrimSpace(field)))
	}
	return p, nil
}
