package main

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/assimp"
	"github.com/wippyai/assimp/archive"
	"github.com/wippyai/assimp/errors"
	"github.com/wippyai/assimp/fileio"
	"github.com/wippyai/assimp/formats"
)

// source is what the importer reads: a name to import and the bridge that
// serves it, or a nil bridge for plain files.
type source struct {
	name    string
	io      fileio.IO
	closers []func() error
}

func (s *source) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func isArchive(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".7z", ".rar":
		return true
	}
	return false
}

// openSource resolves path into something Import can read. Archives are
// served through a multi-stream bridge so companion files resolve inside
// the archive; member picks the model, or the first importable member
// when empty.
func openSource(path, member string, useBridge bool, log *zap.Logger) (*source, error) {
	switch {
	case isArchive(path):
		a, err := archive.Open(path)
		if err != nil {
			return nil, err
		}
		if member == "" {
			member, err = pickMember(a.Members())
			if err != nil {
				a.Close()
				return nil, err
			}
		}
		bridge, err := a.IO()
		if err != nil {
			a.Close()
			return nil, err
		}
		log.Info("importing archive member",
			zap.String("archive", path),
			zap.Stringer("kind", a.Kind()),
			zap.String("member", member))
		return &source{name: member, io: bridge, closers: []func() error{a.Close, bridge.Close}}, nil

	case archive.Compressed(path):
		name, bridge, err := archive.OpenCompressed(path)
		if err != nil {
			return nil, err
		}
		log.Info("importing compressed asset", zap.String("path", path), zap.String("name", name))
		return &source{name: name, io: bridge, closers: []func() error{bridge.Close}}, nil

	case useBridge:
		bridge, err := fileio.NewDefaultIO()
		if err != nil {
			return nil, err
		}
		return &source{name: path, io: bridge, closers: []func() error{bridge.Close}}, nil

	default:
		return &source{name: path}, nil
	}
}

// pickMember chooses the first member whose extension an importer claims,
// preferring formats that load fully over partial ones.
func pickMember(members []string) (string, error) {
	var partial string
	for _, m := range members {
		fs := formats.ForPath(m)
		if len(fs) == 0 {
			continue
		}
		if !formats.Partial(filepath.Ext(m)) {
			return m, nil
		}
		if partial == "" {
			partial = m
		}
	}
	if partial != "" {
		return partial, nil
	}
	return "", errors.New(errors.PhaseArchive, errors.KindNotFound).
		Detail("no importable member among %d", len(members)).
		Build()
}

func (s *source) importScene(flags assimp.PostProcess) (*assimp.Scene, error) {
	if s.io == nil {
		return assimp.Import(s.name, flags)
	}
	return assimp.Import(s.name, flags, assimp.WithIO(s.io))
}
