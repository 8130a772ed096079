package main

import (
	"fmt"
	"io"

	"cogentcore.org/core/math32"

	"github.com/wippyai/assimp"
	"github.com/wippyai/assimp/compat"
)

// sceneBounds is the world-space box around every mesh instance.
func sceneBounds(scene *assimp.Scene) (math32.Box3, bool) {
	var box math32.Box3
	box.SetEmpty()
	found := false

	root := scene.Root()
	if root == nil {
		return box, false
	}
	root.Walk(func(node *assimp.Node, _ int) bool {
		meshes := node.MeshesFrom(scene)
		if len(meshes) == 0 {
			return true
		}
		world := compat.Matrix4(node.GlobalTransformation())
		for _, m := range meshes {
			local, ok := m.Bounds()
			if !ok {
				continue
			}
			box.ExpandByBox(compat.Box3(local).MulMatrix4(&world))
			found = true
		}
		return true
	})
	return box, found
}

func printSummary(w io.Writer, scene *assimp.Scene) {
	fmt.Fprintf(w, "Scene: %s\n", scene.Path())
	fmt.Fprintf(w, "Flags: 0x%x\n", uint32(scene.Flags()))

	meshes := scene.Meshes()
	vertices, faces := 0, 0
	for _, m := range meshes {
		vertices += m.NumVertices()
		faces += m.NumFaces()
	}
	fmt.Fprintf(w, "Meshes: %d (%d vertices, %d faces)\n", len(meshes), vertices, faces)
	fmt.Fprintf(w, "Materials: %d\n", len(scene.Materials()))
	fmt.Fprintf(w, "Textures: %d embedded\n", len(scene.Textures()))
	fmt.Fprintf(w, "Cameras: %d\n", len(scene.Cameras()))
	fmt.Fprintf(w, "Lights: %d\n", len(scene.Lights()))
	fmt.Fprintf(w, "Animations: %d\n", len(scene.Animations()))

	if box, ok := sceneBounds(scene); ok {
		size := box.Size()
		center := box.Center()
		fmt.Fprintf(w, "Bounds: size (%.3g, %.3g, %.3g) center (%.3g, %.3g, %.3g)\n",
			size.X, size.Y, size.Z, center.X, center.Y, center.Z)
	}

	if len(meshes) > 0 {
		fmt.Fprintf(w, "\nMeshes:\n")
		for i, m := range meshes {
			name := m.Name()
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			fmt.Fprintf(w, "  %s: %d vertices, %d indices, %d UV channels, %s, material %d\n",
				name, m.NumVertices(), len(m.Indices()), m.UVChannels(), m.PrimitiveTypes(), m.MaterialIndex())
		}
	}

	if mats := scene.Materials(); len(mats) > 0 {
		fmt.Fprintf(w, "\nMaterials:\n")
		for i, mat := range mats {
			fmt.Fprintf(w, "  %d: %s (%d properties)", i, mat.Name(), len(mat.Properties()))
			if n := mat.TextureCount(assimp.TextureDiffuse); n > 0 {
				if p, err := mat.TexturePath(assimp.TextureDiffuse, 0); err == nil {
					fmt.Fprintf(w, " diffuse=%s", p)
				}
			}
			fmt.Fprintln(w)
		}
	}

	for _, a := range scene.Animations() {
		fmt.Fprintf(w, "\nAnimation %q: %.2fs, %d node channels, %d mesh channels\n",
			a.Name(), a.Seconds(), len(a.NodeChannels()), len(a.MeshChannels()))
	}
}
