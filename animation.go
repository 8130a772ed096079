package assimp

/*
#include <assimp/anim.h>
*/
import "C"

import (
	"github.com/wippyai/assimp/geom"
)

// Animation is a view over one aiAnimation.
type Animation struct {
	raw *C.struct_aiAnimation
}

func newAnimation(p *C.struct_aiAnimation) *Animation {
	return &Animation{raw: p}
}

func (a *Animation) Name() string { return goString(&a.raw.mName) }

// Duration is in ticks.
func (a *Animation) Duration() float64 { return float64(a.raw.mDuration) }

// TicksPerSecond is 0 when the file did not specify it.
func (a *Animation) TicksPerSecond() float64 { return float64(a.raw.mTicksPerSecond) }

// Seconds converts Duration to seconds, assuming 25 ticks per second when
// the file left the rate unset.
func (a *Animation) Seconds() float64 {
	tps := a.TicksPerSecond()
	if tps == 0 {
		tps = 25
	}
	return a.Duration() / tps
}

// NodeChannels returns the per-node transform tracks.
func (a *Animation) NodeChannels() []*NodeAnimation {
	return wrap(slice[*C.struct_aiNodeAnim](a.raw.mChannels, a.raw.mNumChannels), newNodeAnimation)
}

// MeshChannels returns the vertex-animation tracks.
func (a *Animation) MeshChannels() []*MeshAnimation {
	return wrap(slice[*C.struct_aiMeshAnim](a.raw.mMeshChannels, a.raw.mNumMeshChannels), newMeshAnimation)
}

// NodeAnimation animates the node named NodeName.
type NodeAnimation struct {
	raw *C.struct_aiNodeAnim
}

func newNodeAnimation(p *C.struct_aiNodeAnim) *NodeAnimation {
	return &NodeAnimation{raw: p}
}

func (n *NodeAnimation) NodeName() string { return goString(&n.raw.mNodeName) }

func (n *NodeAnimation) PositionKeys() []geom.VectorKey {
	return slice[geom.VectorKey](n.raw.mPositionKeys, n.raw.mNumPositionKeys)
}

func (n *NodeAnimation) RotationKeys() []geom.QuatKey {
	return slice[geom.QuatKey](n.raw.mRotationKeys, n.raw.mNumRotationKeys)
}

func (n *NodeAnimation) ScalingKeys() []geom.VectorKey {
	return slice[geom.VectorKey](n.raw.mScalingKeys, n.raw.mNumScalingKeys)
}

// MeshAnimation swaps the mesh named Name between anim meshes over time.
type MeshAnimation struct {
	raw *C.struct_aiMeshAnim
}

func newMeshAnimation(p *C.struct_aiMeshAnim) *MeshAnimation {
	return &MeshAnimation{raw: p}
}

func (m *MeshAnimation) Name() string { return goString(&m.raw.mName) }

func (m *MeshAnimation) Keys() []geom.MeshKey {
	return slice[geom.MeshKey](m.raw.mKeys, m.raw.mNumKeys)
}
